package engine

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/edwinsyarief/kumiki"
	"github.com/rotisserie/eris"
)

// DebugConsole reads lines from a stream on a background goroutine and turns
// each one into a deferred ConsoleCommand event carrying its split arguments.
//
// The reader goroutine never touches the World: it only sends completed lines
// over a bounded channel, which Update drains without blocking. The goroutine
// exits at end of input, on a read error, or once Close is called.
type DebugConsole struct {
	kumiki.NoRequirements

	lines     chan consoleLine
	done      chan struct{}
	closer    io.Closer
	closeOnce sync.Once
	wg        sync.WaitGroup
}

type consoleLine struct {
	text string
	err  error
}

// NewDebugConsole starts reading r. buffer is the capacity of the hand-off
// channel.
func NewDebugConsole(r io.Reader, buffer int) *DebugConsole {
	c := &DebugConsole{
		lines: make(chan consoleLine, max(buffer, 0)),
		done:  make(chan struct{}),
	}
	if closer, ok := r.(io.Closer); ok {
		c.closer = closer
	}
	c.wg.Add(1)
	go c.read(r)
	return c
}

func (c *DebugConsole) read(r io.Reader) {
	defer c.wg.Done()
	defer close(c.lines)
	br := bufio.NewReader(r)
	for {
		text, err := br.ReadString('\n')
		if text != "" && (err == nil || errors.Is(err, io.EOF)) {
			if !c.send(decodeLine(text)) {
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrClosedPipe) && !errors.Is(err, fs.ErrClosed) {
				c.send(consoleLine{err: eris.Wrap(err, "read console input")})
			}
			return
		}
	}
}

func decodeLine(text string) consoleLine {
	text = strings.TrimRight(text, "\r\n")
	if !utf8.ValidString(text) {
		return consoleLine{err: eris.Wrapf(ErrInvalidUTF8, "%q", text)}
	}
	return consoleLine{text: text}
}

// send reports false once the console is closed.
func (c *DebugConsole) send(l consoleLine) bool {
	select {
	case c.lines <- l:
		return true
	case <-c.done:
		return false
	}
}

func (c *DebugConsole) LoopStageFilter() kumiki.LoopStageFlag {
	return kumiki.StageUpdate
}

// Update emits one deferred ConsoleCommand per complete line received since
// the last call. Blank lines are skipped and input errors are logged.
func (c *DebugConsole) Update(_ *kumiki.Assembly, aux *kumiki.Resources, _, _ time.Duration) (immediate, deferred []Event) {
	for {
		select {
		case l, ok := <-c.lines:
			if !ok {
				c.lines = nil
				return nil, deferred
			}
			if l.err != nil {
				loggerFrom(aux).Warn().Err(l.err).Msg("console input dropped")
				continue
			}
			if args := SplitArguments(l.text); len(args) > 0 {
				deferred = append(deferred, NewConsoleCommand(args...))
			}
		default:
			return nil, deferred
		}
	}
}

// Close stops the reader goroutine. If the stream is an io.Closer it is closed
// too, which unblocks a pending read.
func (c *DebugConsole) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		if c.closer != nil {
			err = c.closer.Close()
		}
	})
	return err
}

// Wait blocks until the reader goroutine has exited.
func (c *DebugConsole) Wait() {
	c.wg.Wait()
}
