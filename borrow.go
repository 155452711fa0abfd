package kumiki

import "github.com/rotisserie/eris"

// borrowState tracks the live borrows of one Assembly. Any number of read
// borrows may overlap; a write borrow excludes every other borrow. Storage
// changes (entity or component insertion and removal) require that no borrow
// is live at all.
type borrowState struct {
	readers int
	writing bool
}

func (b *borrowState) acquireRead(op string) {
	if b.writing {
		panic(eris.Wrapf(ErrBorrowConflict, "%s: read while a write borrow is live", op))
	}
	b.readers++
}

func (b *borrowState) releaseRead() {
	b.readers--
}

func (b *borrowState) acquireWrite(op string) {
	b.checkFree(op)
	b.writing = true
}

func (b *borrowState) releaseWrite() {
	b.writing = false
}

// checkFree panics unless no borrow is live.
func (b *borrowState) checkFree(op string) {
	switch {
	case b.writing:
		panic(eris.Wrapf(ErrBorrowConflict, "%s: a write borrow is live", op))
	case b.readers > 0:
		panic(eris.Wrapf(ErrBorrowConflict, "%s: %d read borrows are live", op, b.readers))
	}
}
