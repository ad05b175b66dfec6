package events

import "github.com/jask/ariakit/signal"

// RuleOption tweaks a registered rule.
type RuleOption func(*ruleOptions)

type ruleOptions struct {
	allowDefault bool
}

// AllowDefault keeps the event's default action when the rule matches.
func AllowDefault() RuleOption {
	return func(o *ruleOptions) { o.allowDefault = true }
}

type keyRule struct {
	pattern Pattern
	handler func(*KeyboardEvent)
	opts    ruleOptions
}

// KeyboardEventManager holds ordered key rules. The first matching rule wins.
type KeyboardEventManager struct {
	rules []keyRule
}

// NewKeyboardEventManager creates an empty manager.
func NewKeyboardEventManager() *KeyboardEventManager {
	return &KeyboardEventManager{}
}

// On appends a rule. Rules match in registration order.
func (m *KeyboardEventManager) On(p Pattern, handler func(*KeyboardEvent), opts ...RuleOption) *KeyboardEventManager {
	r := keyRule{pattern: p, handler: handler}
	for _, opt := range opts {
		opt(&r.opts)
	}
	m.rules = append(m.rules, r)
	return m
}

// Handle runs the first matching rule. It reports whether a rule matched.
func (m *KeyboardEventManager) Handle(e *KeyboardEvent) bool {
	if m == nil || e == nil {
		return false
	}
	for i := range m.rules {
		r := &m.rules[i]
		if !r.pattern.Matches(e) {
			continue
		}
		signal.Batch(func() { r.handler(e) })
		if !r.opts.allowDefault {
			e.PreventDefault()
		}
		return true
	}
	return false
}

// Len returns the number of registered rules.
func (m *KeyboardEventManager) Len() int { return len(m.rules) }

// PointerPattern identifies which pointer events a rule accepts.
type PointerPattern struct {
	Masks   []Modifier
	AnyMod  bool
	Buttons []Button // empty accepts the primary button only
}

// Pointer matches a primary-button press with no modifiers.
func Pointer() PointerPattern { return PointerPattern{} }

// With replaces the accepted modifier masks.
func (p PointerPattern) With(masks ...Modifier) PointerPattern {
	p.Masks = append([]Modifier(nil), masks...)
	p.AnyMod = false
	return p
}

// AnyModifier makes the pattern ignore modifier state.
func (p PointerPattern) AnyModifier() PointerPattern {
	p.AnyMod = true
	p.Masks = nil
	return p
}

// Matches reports whether e satisfies p.
func (p PointerPattern) Matches(e *PointerEvent) bool {
	buttons := p.Buttons
	if len(buttons) == 0 {
		buttons = []Button{ButtonPrimary}
	}
	okButton := false
	for _, b := range buttons {
		if b == e.Button {
			okButton = true
			break
		}
	}
	if !okButton {
		return false
	}
	return Pattern{Masks: p.Masks, AnyMod: p.AnyMod}.modMatches(e.Mod)
}

type pointerRule struct {
	pattern PointerPattern
	handler func(*PointerEvent)
	opts    ruleOptions
}

// PointerEventManager holds ordered pointer rules keyed on modifier state.
type PointerEventManager struct {
	rules []pointerRule
}

// NewPointerEventManager creates an empty manager.
func NewPointerEventManager() *PointerEventManager {
	return &PointerEventManager{}
}

// On appends a rule.
func (m *PointerEventManager) On(p PointerPattern, handler func(*PointerEvent), opts ...RuleOption) *PointerEventManager {
	r := pointerRule{pattern: p, handler: handler}
	for _, opt := range opts {
		opt(&r.opts)
	}
	m.rules = append(m.rules, r)
	return m
}

// Handle runs the first matching rule. It reports whether a rule matched.
func (m *PointerEventManager) Handle(e *PointerEvent) bool {
	if m == nil || e == nil {
		return false
	}
	for i := range m.rules {
		r := &m.rules[i]
		if !r.pattern.Matches(e) {
			continue
		}
		signal.Batch(func() { r.handler(e) })
		if !r.opts.allowDefault {
			e.PreventDefault()
		}
		return true
	}
	return false
}
