package kumiki

// LoopStage is one phase of the per-frame protocol.
type LoopStage uint8

const (
	HandleEventStage LoopStage = iota
	UpdateStage
	DynamicUpdateStage
	RenderStage
)

var loopStages = [...]LoopStage{HandleEventStage, UpdateStage, DynamicUpdateStage, RenderStage}

// Flag returns the single bit that stands for s.
func (s LoopStage) Flag() LoopStageFlag {
	return 1 << s
}

// MatchFilter reports whether filter subscribes to s.
func (s LoopStage) MatchFilter(filter LoopStageFlag) bool {
	return filter.Contains(s.Flag())
}

func (s LoopStage) String() string {
	switch s {
	case HandleEventStage:
		return "HandleEvent"
	case UpdateStage:
		return "Update"
	case DynamicUpdateStage:
		return "DynamicUpdate"
	case RenderStage:
		return "Render"
	}
	return "LoopStage(?)"
}
