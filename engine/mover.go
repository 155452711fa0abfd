package engine

import (
	"math"
	"time"

	"github.com/edwinsyarief/kumiki"
	"github.com/rotisserie/eris"
)

// DebugMover moves the entity described as TargetName around a circle in the
// XY plane. It requires exactly one such entity with a Position when it is
// added to the World.
type DebugMover struct {
	TargetName   string
	Radius       float32
	AngularSpeed float64 // radians per second
}

func NewDebugMover(target string, radius float32, angularSpeed float64) *DebugMover {
	return &DebugMover{TargetName: target, Radius: radius, AngularSpeed: angularSpeed}
}

func (m *DebugMover) byName(r kumiki.Row2[Description, Position]) bool {
	return r.C1.Name == m.TargetName
}

func (m *DebugMover) VerifyRequirements(v kumiki.View) bool {
	_, err := kumiki.RSF2(v, m.byName)
	return err == nil
}

func (m *DebugMover) LoopStageFilter() kumiki.LoopStageFlag { return kumiki.StageUpdate }

func (m *DebugMover) Update(a *kumiki.Assembly, aux *kumiki.Resources, t, _ time.Duration) ([]Event, []Event) {
	row, err := kumiki.RSF2(a, m.byName)
	if err != nil {
		err = eris.Wrapf(ErrTargetNotFound, "%q: %v", m.TargetName, err)
		loggerFrom(aux).Warn().Err(err).Msg("mover target unavailable")
		return nil, nil
	}
	angle := m.AngularSpeed * t.Seconds()
	x := m.Radius * float32(math.Cos(angle))
	y := m.Radius * float32(math.Sin(angle))
	err = kumiki.BorrowComponentMut(a, row.Entity, func(p *Position) {
		p.X, p.Y = x, y
	})
	if err != nil {
		loggerFrom(aux).Warn().Err(err).Msg("move target")
	}
	return nil, nil
}
