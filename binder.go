package smartmask

import (
	"context"
	"errors"
	"time"
)

// DefaultAttribute is the markup attribute Discover looks for.
const DefaultAttribute = "data-custom-mask"

// Option configures a Binder.
type Option func(*Binder)

// WithMasker replaces the rule used for name.
// Unknown names are ignored so the rule table stays closed.
func WithMasker(name MaskName, m Masker) Option {
	return func(b *Binder) {
		if IsValidMaskName(name) && m != nil {
			b.maskers[name] = m
		}
	}
}

// WithCursorStrategy selects how the caret is restored on keyup.
func WithCursorStrategy(s CursorStrategy) Option {
	return func(b *Binder) {
		b.cursor = s
	}
}

// WithAttribute changes the attribute Discover reads mask names from.
func WithAttribute(attr string) Option {
	return func(b *Binder) {
		if attr != "" {
			b.attribute = attr
		}
	}
}

// Binder attaches mask rules to elements.
//
// The rule table is fixed at construction and only read afterwards, so one
// Binder may serve any number of elements. Each Binding is driven by its
// host's event loop and must not receive events concurrently.
type Binder struct {
	maskers   map[MaskName]Masker
	cursor    CursorStrategy
	attribute string
}

// NewBinder creates a Binder with the built-in rules.
func NewBinder(opts ...Option) *Binder {
	b := &Binder{
		maskers:   builtinMaskers(),
		cursor:    CursorDiff,
		attribute: DefaultAttribute,
	}
	for _, opt := range opts {
		opt(b)
	}
	emitBinderCreated(context.Background(), len(b.maskers))
	return b
}

// Declaration pairs a host element with the mask name it declares.
type Declaration struct {
	Handle any
	Mask   string
}

// Bind resolves the mask and element, normalizes the current text once and
// registers change, keydown and keyup handlers when the host is an
// EventTarget. Hosts without listener support forward events to
// Binding.Handle themselves.
//
// Failures are returned as *BindError wrapping ErrUnknownMaskName or
// ErrMalformedElement; nothing is attached in that case.
func (b *Binder) Bind(ctx context.Context, handle any, mask string) (*Binding, error) {
	element := describe(handle)

	name, err := ParseMaskName(mask)
	if err != nil {
		bindErr := newBindError(ErrUnknownMaskName, element, mask)
		emitBindingFailed(ctx, element, mask, bindErr)
		return nil, bindErr
	}

	el, err := Resolve(handle)
	if err != nil {
		bindErr := newBindError(ErrMalformedElement, element, mask)
		emitBindingFailed(ctx, element, mask, bindErr)
		return nil, bindErr
	}

	binding := &Binding{
		element: el,
		masker:  b.maskers[name],
		mask:    name,
		name:    element,
		cursor:  b.cursor,
	}
	binding.Apply()

	if target, ok := handle.(EventTarget); ok {
		target.AddEventListener(EventChange, binding.Handle)
		target.AddEventListener(EventKeyDown, binding.Handle)
		target.AddEventListener(EventKeyUp, binding.Handle)
	}

	emitBindingCreated(ctx, element, name)
	return binding, nil
}

// BindAll binds every declaration. A failing element does not stop the
// others; its error is joined into the returned error.
func (b *Binder) BindAll(ctx context.Context, decls []Declaration) ([]*Binding, error) {
	start := time.Now()

	bindings := make([]*Binding, 0, len(decls))
	var errs []error
	for _, d := range decls {
		binding, err := b.Bind(ctx, d.Handle, d.Mask)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		bindings = append(bindings, binding)
	}

	emitBindAllComplete(ctx, len(bindings), len(errs), time.Since(start))
	return bindings, errors.Join(errs...)
}

// BindDocument discovers and binds every tagged element of doc.
func (b *Binder) BindDocument(ctx context.Context, doc Document) ([]*Binding, error) {
	return b.BindAll(ctx, b.Discover(doc))
}

// Binding is the live association between one element and one rule.
type Binding struct {
	element Element
	masker  Masker
	mask    MaskName
	name    string
	cursor  CursorStrategy

	downCursor int
}

// Mask returns the rule name this binding applies.
func (b *Binding) Mask() MaskName {
	return b.mask
}

// Element returns the bound element.
func (b *Binding) Element() Element {
	return b.element
}

// Apply reformats the element's current text and returns the result.
func (b *Binding) Apply() string {
	formatted, _ := b.write(EventChange)
	return formatted
}

// Handle reacts to a host event. Unknown event types are ignored.
func (b *Binding) Handle(ev Event) {
	switch ev.Type {
	case EventChange:
		b.write(EventChange)
	case EventKeyDown:
		b.downCursor = b.element.Cursor()
		b.write(EventKeyDown)
	case EventKeyUp:
		ks := keystroke{
			downCursor: b.downCursor,
			key:        ev.Key,
			raw:        b.element.Text(),
			rawCursor:  b.element.Cursor(),
		}
		formatted, _ := b.write(EventKeyUp)
		pos := b.cursor.position(b.masker, ks, formatted)
		b.element.SetCursor(pos)
	}
}

// write formats the current text and stores it when it changed.
func (b *Binding) write(event EventType) (string, bool) {
	current := b.element.Text()
	formatted := b.masker.Mask(current)
	if formatted == current {
		return formatted, false
	}
	b.element.SetText(formatted)
	emitElementMasked(context.Background(), b.name, b.mask, event, b.element.Cursor())
	return formatted, true
}
