// Package spinbutton implements a numeric spinbutton: a value stepped by
// keys or buttons between optional bounds.
package spinbutton

import (
	"fmt"
	"math"

	"github.com/jask/ariakit/events"
	"github.com/jask/ariakit/signal"
)

const (
	DefaultStep     = 1.0
	DefaultPageStep = 10.0
)

// Inputs configure a spinbutton. A nil Min or Max leaves that side open.
type Inputs struct {
	ID       string
	Value    *signal.Writable[float64]
	Min      signal.Signal[*float64]
	Max      signal.Signal[*float64]
	Step     signal.Signal[float64] // default 1
	PageStep signal.Signal[float64] // default 10
	Wrap     signal.Signal[bool]    // step past one bound lands on the other
	Disabled signal.Signal[bool]
	Readonly signal.Signal[bool]

	Increment events.Element // optional increment button
	Decrement events.Element // optional decrement button
}

// Spinbutton holds the stepping rules.
type Spinbutton struct {
	in Inputs
}

// Bound is a convenience for Min and Max inputs.
func Bound(v float64) signal.Signal[*float64] {
	return signal.Const(&v)
}

// New creates a spinbutton. A missing Value cell starts at 0.
func New(in Inputs) *Spinbutton {
	if in.Value == nil {
		in.Value = signal.New(0.0)
	}
	var open *float64
	in.Min = signal.Or(in.Min, open)
	in.Max = signal.Or(in.Max, open)
	in.Step = signal.Or(in.Step, DefaultStep)
	in.PageStep = signal.Or(in.PageStep, DefaultPageStep)
	in.Wrap = signal.Or(in.Wrap, false)
	in.Disabled = signal.Or(in.Disabled, false)
	in.Readonly = signal.Or(in.Readonly, false)
	return &Spinbutton{in: in}
}

func (s *Spinbutton) ID() string { return s.in.ID }

// Value is aria-valuenow.
func (s *Spinbutton) Value() float64 { return s.in.Value.Get() }

// ValueCell exposes the value for subscriptions.
func (s *Spinbutton) ValueCell() *signal.Writable[float64] { return s.in.Value }

// Min is aria-valuemin, or nil.
func (s *Spinbutton) Min() *float64 { return s.in.Min.Get() }

// Max is aria-valuemax, or nil.
func (s *Spinbutton) Max() *float64 { return s.in.Max.Get() }

func (s *Spinbutton) Disabled() bool { return s.in.Disabled.Get() }
func (s *Spinbutton) Readonly() bool { return s.in.Readonly.Get() }

// TabIndex is -1 while disabled.
func (s *Spinbutton) TabIndex() int {
	if s.Disabled() {
		return -1
	}
	return 0
}

func (s *Spinbutton) editable() bool { return !s.Disabled() && !s.Readonly() }

// clamp keeps v inside the bounds. Contradictory bounds leave v alone; they
// are reported by Validate.
func (s *Spinbutton) clamp(v float64) float64 {
	lo, hi := s.Min(), s.Max()
	if lo != nil && hi != nil && *lo > *hi {
		return v
	}
	if lo != nil && v < *lo {
		v = *lo
	}
	if hi != nil && v > *hi {
		v = *hi
	}
	return v
}

// SetValue stores v clamped to the bounds. Disabled and readonly
// spinbuttons ignore it.
func (s *Spinbutton) SetValue(v float64) {
	if !s.editable() || math.IsNaN(v) {
		return
	}
	s.in.Value.Set(s.clamp(v))
}

// step adds delta, wrapping to the opposite bound when wrapping is on and
// the value already sits on the bound being crossed.
func (s *Spinbutton) step(delta float64) {
	if !s.editable() || delta == 0 || math.IsNaN(delta) {
		return
	}
	cur := s.Value()
	lo, hi := s.Min(), s.Max()
	if s.in.Wrap.Get() && lo != nil && hi != nil && *lo <= *hi {
		if delta > 0 && cur >= *hi {
			s.in.Value.Set(*lo)
			return
		}
		if delta < 0 && cur <= *lo {
			s.in.Value.Set(*hi)
			return
		}
	}
	s.in.Value.Set(s.clamp(round(cur + delta)))
}

// round drops the float noise that repeated fractional steps accumulate.
func round(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

func (s *Spinbutton) Increment()    { s.step(s.in.Step.Get()) }
func (s *Spinbutton) Decrement()    { s.step(-s.in.Step.Get()) }
func (s *Spinbutton) IncrementBig() { s.step(s.in.PageStep.Get()) }
func (s *Spinbutton) DecrementBig() { s.step(-s.in.PageStep.Get()) }

// ToMin moves to the minimum when there is one.
func (s *Spinbutton) ToMin() {
	if lo := s.Min(); lo != nil {
		s.SetValue(*lo)
	}
}

// ToMax moves to the maximum when there is one.
func (s *Spinbutton) ToMax() {
	if hi := s.Max(); hi != nil {
		s.SetValue(*hi)
	}
}

// Keydown builds the key rules. Home and End are only claimed when the
// matching bound exists, so an unbounded field keeps them for caret moves.
func (s *Spinbutton) Keydown() *events.KeyboardEventManager {
	km := events.NewKeyboardEventManager().
		On(events.Key(events.KeyArrowUp), func(*events.KeyboardEvent) { s.Increment() }).
		On(events.Key(events.KeyArrowDown), func(*events.KeyboardEvent) { s.Decrement() }).
		On(events.Key(events.KeyPageUp), func(*events.KeyboardEvent) { s.IncrementBig() }).
		On(events.Key(events.KeyPageDown), func(*events.KeyboardEvent) { s.DecrementBig() })
	if s.Min() != nil {
		km.On(events.Key(events.KeyHome), func(*events.KeyboardEvent) { s.ToMin() })
	}
	if s.Max() != nil {
		km.On(events.Key(events.KeyEnd), func(*events.KeyboardEvent) { s.ToMax() })
	}
	return km
}

// OnKeydown routes a key press.
func (s *Spinbutton) OnKeydown(e *events.KeyboardEvent) {
	if !s.editable() {
		return
	}
	s.Keydown().Handle(e)
}

// OnPointerdown steps when one of the buttons is pressed.
func (s *Spinbutton) OnPointerdown(e *events.PointerEvent) {
	if !s.editable() {
		return
	}
	var fn func()
	switch {
	case events.Within(s.in.Increment, e.Target):
		fn = s.Increment
	case events.Within(s.in.Decrement, e.Target):
		fn = s.Decrement
	default:
		return
	}
	events.NewPointerEventManager().
		On(events.Pointer(), func(*events.PointerEvent) { fn() }).
		Handle(e)
}

// Validate lists contradictions in the current configuration. It never
// panics; an empty result means the spinbutton is consistent.
func (s *Spinbutton) Validate() []string {
	var out []string
	v, lo, hi := s.Value(), s.Min(), s.Max()
	if math.IsNaN(v) {
		out = append(out, "value is not a number")
	}
	if lo != nil && hi != nil && *lo > *hi {
		out = append(out, fmt.Sprintf("minimum %g is greater than maximum %g", *lo, *hi))
	}
	if lo != nil && v < *lo {
		out = append(out, fmt.Sprintf("value %g is below the minimum %g", v, *lo))
	}
	if hi != nil && v > *hi {
		out = append(out, fmt.Sprintf("value %g is above the maximum %g", v, *hi))
	}
	if st := s.in.Step.Get(); !(st > 0) {
		out = append(out, fmt.Sprintf("step %g must be positive", st))
	}
	if ps := s.in.PageStep.Get(); !(ps > 0) {
		out = append(out, fmt.Sprintf("page step %g must be positive", ps))
	}
	return out
}
