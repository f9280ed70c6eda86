package smartmask

import (
	"fmt"
	"unicode/utf8"
)

// Element is the capability contract the binder needs from a UI element.
// Cursor positions are rune offsets into Text.
type Element interface {
	Text() string
	SetText(text string)
	Cursor() int
	SetCursor(pos int)
}

// ValueHolder is a host element with an editable value (inputs, textareas).
type ValueHolder interface {
	Value() string
	SetValue(value string)
}

// ContentHolder is a host element that only exposes its text content.
type ContentHolder interface {
	TextContent() string
	SetTextContent(text string)
}

// Selectable is implemented by value holders that expose a caret.
type Selectable interface {
	SelectionStart() int
	SetSelectionRange(start, end int)
}

// Identified lets hosts give elements a readable name for errors and events.
type Identified interface {
	ID() string
}

// EventType names the element events a binding reacts to.
type EventType string

const (
	EventChange  EventType = "change"
	EventKeyDown EventType = "keydown"
	EventKeyUp   EventType = "keyup"
)

// Event is delivered by the host for a bound element.
// Key holds the text of the pressed key ("a", "7") or its name
// ("Backspace") for keys that produce no single character.
type Event struct {
	Type EventType
	Key  string
}

// EventTarget is implemented by hosts that accept listeners.
type EventTarget interface {
	AddEventListener(t EventType, fn func(Event))
}

// Resolve adapts a host handle to an Element.
// Elements are used as is; otherwise an editable value takes precedence
// over text content. Handles exposing neither yield ErrMalformedElement.
func Resolve(handle any) (Element, error) {
	switch h := handle.(type) {
	case Element:
		return h, nil
	case ValueHolder:
		return &valueElement{holder: h}, nil
	case ContentHolder:
		return &contentElement{holder: h}, nil
	default:
		return nil, ErrMalformedElement
	}
}

// valueElement adapts a ValueHolder, with a caret when it is Selectable.
type valueElement struct {
	holder ValueHolder
}

func (e *valueElement) Text() string        { return e.holder.Value() }
func (e *valueElement) SetText(text string) { e.holder.SetValue(text) }

func (e *valueElement) Cursor() int {
	if s, ok := e.holder.(Selectable); ok {
		return s.SelectionStart()
	}
	return utf8.RuneCountInString(e.holder.Value())
}

func (e *valueElement) SetCursor(pos int) {
	if s, ok := e.holder.(Selectable); ok {
		s.SetSelectionRange(pos, pos)
	}
}

// contentElement adapts a ContentHolder. It has no caret; the cursor
// always sits at the end of the text.
type contentElement struct {
	holder ContentHolder
}

func (e *contentElement) Text() string        { return e.holder.TextContent() }
func (e *contentElement) SetText(text string) { e.holder.SetTextContent(text) }
func (e *contentElement) Cursor() int         { return utf8.RuneCountInString(e.holder.TextContent()) }
func (e *contentElement) SetCursor(int)       {}

// describe names a handle for errors and events.
func describe(handle any) string {
	if id, ok := handle.(Identified); ok && id.ID() != "" {
		return id.ID()
	}
	return fmt.Sprintf("%T", handle)
}
