package kumiki

import (
	"math/bits"
	"strconv"
	"strings"
)

// EventFlag is a set of event bits. Every concrete event type assigns exactly
// one bit to each of its variants; a system's event filter is the union of the
// bits it wants to see.
type EventFlag uint64

const (
	// NoEvents is the empty set.
	NoEvents EventFlag = 0
	// AllEvents has every bit set.
	AllEvents EventFlag = ^EventFlag(0)
)

// Union returns the bits set in f or o.
func (f EventFlag) Union(o EventFlag) EventFlag {
	return f | o
}

// Intersect returns the bits set in both f and o.
func (f EventFlag) Intersect(o EventFlag) EventFlag {
	return f & o
}

// Without returns f with the bits of o cleared.
func (f EventFlag) Without(o EventFlag) EventFlag {
	return f &^ o
}

// Contains reports whether every bit of sub is set in f.
//
// Parameters:
//   - sub: The bits to test for.
//
// Returns:
//   - true if f is a superset of sub.
func (f EventFlag) Contains(sub EventFlag) bool {
	return f&sub == sub
}

// Empty reports whether no bit is set.
func (f EventFlag) Empty() bool {
	return f == NoEvents
}

// Len returns the number of bits set.
func (f EventFlag) Len() int {
	return bits.OnesCount64(uint64(f))
}

func (f EventFlag) String() string {
	switch f {
	case NoEvents:
		return "NoEvents"
	case AllEvents:
		return "AllEvents"
	}
	return "0x" + strconv.FormatUint(uint64(f), 16)
}

// LoopStageFlag is a set of loop stages.
type LoopStageFlag uint8

const (
	StageHandleEvent LoopStageFlag = 1 << iota
	StageUpdate
	StageDynamicUpdate
	StageRender

	// NoStages subscribes to nothing.
	NoStages LoopStageFlag = 0
	// AllStages has every bit set, including bits no stage uses yet.
	AllStages LoopStageFlag = 0xFF

	knownStages = StageHandleEvent | StageUpdate | StageDynamicUpdate | StageRender
)

// Union returns the stages set in f or o.
func (f LoopStageFlag) Union(o LoopStageFlag) LoopStageFlag {
	return f | o
}

// Without returns f with the stages of o cleared.
func (f LoopStageFlag) Without(o LoopStageFlag) LoopStageFlag {
	return f &^ o
}

// Contains reports whether every stage of sub is set in f.
func (f LoopStageFlag) Contains(sub LoopStageFlag) bool {
	return f&sub == sub
}

func (f LoopStageFlag) String() string {
	if f&knownStages == 0 {
		return "NoStages"
	}
	var names []string
	for _, s := range loopStages {
		if f.Contains(s.Flag()) {
			names = append(names, s.String())
		}
	}
	return strings.Join(names, "|")
}
