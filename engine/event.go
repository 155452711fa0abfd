package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/edwinsyarief/kumiki"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// EventKind identifies the variant of an Event.
type EventKind uint8

const (
	Shutdown EventKind = iota
	ImmediateShutdown
	Ready
	Suspend
	RendererReady
	ConsoleCommand
	ResizeWindow
	CursorPosition
	ReloadResources
	SpeechBubble
	MouseInput
	MouseInputFlank

	numKinds
)

// One bit per kind. The values are part of the filter contract and must not
// be reordered.
const (
	ShutdownFlag kumiki.EventFlag = 1 << iota
	ImmediateShutdownFlag
	ReadyFlag
	SuspendFlag
	RendererReadyFlag
	ConsoleCommandFlag
	ResizeWindowFlag
	CursorPositionFlag
	ReloadResourcesFlag
	SpeechBubbleFlag
	MouseInputFlag
	MouseInputFlankFlag

	// AllEvents selects every engine event.
	AllEvents = kumiki.AllEvents
)

var kindNames = [numKinds]string{
	Shutdown:          "Shutdown",
	ImmediateShutdown: "ImmediateShutdown",
	Ready:             "Ready",
	Suspend:           "Suspend",
	RendererReady:     "RendererReady",
	ConsoleCommand:    "ConsoleCommand",
	ResizeWindow:      "ResizeWindow",
	CursorPosition:    "CursorPosition",
	ReloadResources:   "ReloadResources",
	SpeechBubble:      "SpeechBubble",
	MouseInput:        "MouseInput",
	MouseInputFlank:   "MouseInputFlank",
}

func (k EventKind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Flag returns the filter bit of k.
func (k EventKind) Flag() kumiki.EventFlag {
	return 1 << kumiki.EventFlag(k)
}

// ParseEventKind resolves a kind by name, ignoring case. Kebab-case names
// such as "reload-resources" are accepted too.
func ParseEventKind(name string) (EventKind, error) {
	folded := strings.ReplaceAll(name, "-", "")
	for k, n := range kindNames {
		if strings.EqualFold(n, folded) {
			return EventKind(k), nil
		}
	}
	return 0, eris.Wrapf(ErrUnknownEvent, "%q", name)
}

// WindowSize is the payload of ResizeWindow.
type WindowSize struct {
	Width, Height uint32
}

// Point is the payload of CursorPosition.
type Point struct {
	X, Y float64
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	LeftButton MouseButton = iota
	RightButton
	MiddleButton

	numButtons
)

func (b MouseButton) String() string {
	switch b {
	case LeftButton:
		return "Left"
	case RightButton:
		return "Right"
	case MiddleButton:
		return "Middle"
	}
	return fmt.Sprintf("MouseButton(%d)", uint8(b))
}

// ButtonState is the state of a mouse button. The zero value is Released.
type ButtonState uint8

const (
	Released ButtonState = iota
	Pressed
)

func (s ButtonState) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}

// FlankDirection tells a press (Down) from a release (Up).
type FlankDirection uint8

const (
	FlankDown FlankDirection = iota
	FlankUp
)

func (d FlankDirection) String() string {
	if d == FlankUp {
		return "Up"
	}
	return "Down"
}

// ButtonInput is the payload of MouseInput.
type ButtonInput struct {
	Button MouseButton
	State  ButtonState
}

// Flank is the payload of MouseInputFlank.
type Flank struct {
	Button    MouseButton
	Direction FlankDirection
}

// Bubble is the payload of SpeechBubble.
type Bubble struct {
	Target   string
	Text     string
	Lifetime time.Duration
}

// Event is the concrete event type of the engine. Payload holds the data of
// the variants that carry any; use the typed accessors to read it.
type Event struct {
	Kind    EventKind
	Payload any
}

func NewShutdown() Event          { return Event{Kind: Shutdown} }
func NewImmediateShutdown() Event { return Event{Kind: ImmediateShutdown} }
func NewReady() Event             { return Event{Kind: Ready} }
func NewRendererReady() Event     { return Event{Kind: RendererReady} }

func NewSuspend(suspended bool) Event {
	return Event{Kind: Suspend, Payload: suspended}
}

func NewConsoleCommand(args ...string) Event {
	return Event{Kind: ConsoleCommand, Payload: args}
}

func NewResizeWindow(width, height uint32) Event {
	return Event{Kind: ResizeWindow, Payload: WindowSize{Width: width, Height: height}}
}

func NewCursorPosition(x, y float64) Event {
	return Event{Kind: CursorPosition, Payload: Point{X: x, Y: y}}
}

// NewReloadResources requests a reload of path, or of every resource when
// path is empty.
func NewReloadResources(path string) Event {
	return Event{Kind: ReloadResources, Payload: path}
}

func NewSpeechBubble(target, text string, lifetime time.Duration) Event {
	return Event{Kind: SpeechBubble, Payload: Bubble{Target: target, Text: text, Lifetime: lifetime}}
}

func NewMouseInput(button MouseButton, state ButtonState) Event {
	return Event{Kind: MouseInput, Payload: ButtonInput{Button: button, State: state}}
}

func NewMouseInputFlank(button MouseButton, direction FlankDirection) Event {
	return Event{Kind: MouseInputFlank, Payload: Flank{Button: button, Direction: direction}}
}

// NewEvent builds a payload-free event of kind k. Kinds that need a payload
// get its zero value.
func NewEvent(k EventKind) Event {
	switch k {
	case Suspend:
		return NewSuspend(false)
	case ConsoleCommand:
		return NewConsoleCommand()
	case ResizeWindow:
		return NewResizeWindow(0, 0)
	case CursorPosition:
		return NewCursorPosition(0, 0)
	case ReloadResources:
		return NewReloadResources("")
	case SpeechBubble:
		return NewSpeechBubble("", "", 0)
	case MouseInput:
		return NewMouseInput(LeftButton, Released)
	case MouseInputFlank:
		return NewMouseInputFlank(LeftButton, FlankDown)
	}
	return Event{Kind: k}
}

// Suspended returns the payload of a Suspend event.
func (e Event) Suspended() bool {
	v, _ := e.Payload.(bool)
	return v
}

// Args returns the payload of a ConsoleCommand event.
func (e Event) Args() []string {
	v, _ := e.Payload.([]string)
	return v
}

// WindowSize returns the payload of a ResizeWindow event.
func (e Event) WindowSize() WindowSize {
	v, _ := e.Payload.(WindowSize)
	return v
}

// Cursor returns the payload of a CursorPosition event.
func (e Event) Cursor() Point {
	v, _ := e.Payload.(Point)
	return v
}

// Path returns the payload of a ReloadResources event.
func (e Event) Path() string {
	v, _ := e.Payload.(string)
	return v
}

// Bubble returns the payload of a SpeechBubble event.
func (e Event) Bubble() Bubble {
	v, _ := e.Payload.(Bubble)
	return v
}

// ButtonInput returns the payload of a MouseInput event.
func (e Event) ButtonInput() ButtonInput {
	v, _ := e.Payload.(ButtonInput)
	return v
}

// Flank returns the payload of a MouseInputFlank event.
func (e Event) Flank() Flank {
	v, _ := e.Payload.(Flank)
	return v
}

// Flag implements kumiki.Event.
func (e Event) Flag() kumiki.EventFlag {
	return e.Kind.Flag()
}

// Core implements kumiki.Event.
func (e Event) Core() (kumiki.CoreEvent, bool) {
	switch e.Kind {
	case Ready:
		return kumiki.CoreReady, true
	case Shutdown:
		return kumiki.CoreShutdown, true
	case ImmediateShutdown:
		return kumiki.CoreImmediateShutdown, true
	}
	return 0, false
}

// FromCore implements kumiki.EventType.
func (Event) FromCore(c kumiki.CoreEvent) Event {
	switch c {
	case kumiki.CoreReady:
		return NewReady()
	case kumiki.CoreShutdown:
		return NewShutdown()
	}
	return NewImmediateShutdown()
}

func (e Event) String() string {
	if e.Payload == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s(%v)", e.Kind, e.Payload)
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (e Event) MarshalZerologObject(ev *zerolog.Event) {
	ev.Stringer("kind", e.Kind)
	switch p := e.Payload.(type) {
	case nil:
	case bool:
		ev.Bool("suspended", p)
	case []string:
		ev.Strs("args", p)
	case WindowSize:
		ev.Uint32("width", p.Width).Uint32("height", p.Height)
	case Point:
		ev.Float64("x", p.X).Float64("y", p.Y)
	case string:
		ev.Str("path", p)
	case ButtonInput:
		ev.Stringer("button", p.Button).Stringer("state", p.State)
	case Flank:
		ev.Stringer("button", p.Button).Stringer("direction", p.Direction)
	case Bubble:
		ev.Str("target", p.Target).Str("text", p.Text).Dur("lifetime", p.Lifetime)
	default:
		ev.Interface("payload", p)
	}
}

type (
	// World is the ECS world of the engine.
	World = kumiki.World[Event, kumiki.Resources]
	// System is a system of the engine.
	System = kumiki.System[Event, kumiki.Resources]
)

// NewWorld creates an engine World with an empty Resources store as its
// auxiliary context.
func NewWorld(opts ...kumiki.WorldOption) *World {
	return kumiki.NewWorld[Event](kumiki.Resources{}, opts...)
}
