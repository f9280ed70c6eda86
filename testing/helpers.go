// Package testing provides fake host elements for exercising smartmask
// bindings without a browser.
package testing

import (
	"github.com/zoobzio/smartmask"
)

// Field is an editable input: it has a value, a caret and listeners.
// Setting a different value moves the caret to the end, as browsers do.
type Field struct {
	id        string
	attrs     map[string]string
	value     []rune
	cursor    int
	listeners map[smartmask.EventType][]func(smartmask.Event)
}

// NewField returns an empty field declaring mask through the default attribute.
// An empty mask leaves the attribute off.
func NewField(id, mask string) *Field {
	f := &Field{
		id:        id,
		attrs:     map[string]string{},
		listeners: map[smartmask.EventType][]func(smartmask.Event){},
	}
	if mask != "" {
		f.attrs[smartmask.DefaultAttribute] = mask
	}
	return f
}

// WithValue sets the initial value with the caret at its end.
func (f *Field) WithValue(v string) *Field {
	f.value = []rune(v)
	f.cursor = len(f.value)
	return f
}

func (f *Field) ID() string { return f.id }

func (f *Field) Attribute(name string) (string, bool) {
	v, ok := f.attrs[name]
	return v, ok
}

func (f *Field) Value() string { return string(f.value) }

func (f *Field) SetValue(v string) {
	if v == string(f.value) {
		return
	}
	f.value = []rune(v)
	f.cursor = len(f.value)
}

func (f *Field) SelectionStart() int { return f.cursor }

func (f *Field) SetSelectionRange(start, _ int) {
	if start < 0 {
		start = 0
	}
	if start > len(f.value) {
		start = len(f.value)
	}
	f.cursor = start
}

func (f *Field) AddEventListener(t smartmask.EventType, fn func(smartmask.Event)) {
	f.listeners[t] = append(f.listeners[t], fn)
}

// Listeners reports how many handlers are registered for t.
func (f *Field) Listeners(t smartmask.EventType) int {
	return len(f.listeners[t])
}

// Type presses one key per rune of s: keydown, insertion at the caret, keyup.
func (f *Field) Type(s string) {
	for _, r := range s {
		key := string(r)
		f.dispatch(smartmask.Event{Type: smartmask.EventKeyDown, Key: key})
		f.insert([]rune{r})
		f.dispatch(smartmask.Event{Type: smartmask.EventKeyUp, Key: key})
	}
}

// Backspace deletes the rune before the caret.
func (f *Field) Backspace() {
	ev := smartmask.Event{Key: "Backspace"}
	ev.Type = smartmask.EventKeyDown
	f.dispatch(ev)
	if f.cursor > 0 {
		f.value = append(f.value[:f.cursor-1], f.value[f.cursor:]...)
		f.cursor--
	}
	ev.Type = smartmask.EventKeyUp
	f.dispatch(ev)
}

// MoveCursor places the caret, clamped to the value.
func (f *Field) MoveCursor(pos int) {
	f.SetSelectionRange(pos, pos)
}

// Paste inserts s at the caret and commits the field.
func (f *Field) Paste(s string) {
	f.insert([]rune(s))
	f.Commit()
}

// Commit fires a change event.
func (f *Field) Commit() {
	f.dispatch(smartmask.Event{Type: smartmask.EventChange})
}

func (f *Field) insert(rs []rune) {
	out := make([]rune, 0, len(f.value)+len(rs))
	out = append(out, f.value[:f.cursor]...)
	out = append(out, rs...)
	out = append(out, f.value[f.cursor:]...)
	f.value = out
	f.cursor += len(rs)
}

func (f *Field) dispatch(ev smartmask.Event) {
	for _, fn := range f.listeners[ev.Type] {
		fn(ev)
	}
}

// Label is a read-only element that only has text content.
type Label struct {
	id    string
	attrs map[string]string
	text  string
}

// NewLabel returns a label with text declaring mask through the default attribute.
func NewLabel(id, mask, text string) *Label {
	return &Label{
		id:    id,
		attrs: map[string]string{smartmask.DefaultAttribute: mask},
		text:  text,
	}
}

func (l *Label) ID() string                           { return l.id }
func (l *Label) Attribute(name string) (string, bool) { v, ok := l.attrs[name]; return v, ok }
func (l *Label) TextContent() string                  { return l.text }
func (l *Label) SetTextContent(text string)           { l.text = text }

// Opaque is an element with attributes but no text surface.
type Opaque struct {
	id    string
	attrs map[string]string
}

// NewOpaque returns an element that cannot be bound.
func NewOpaque(id, mask string) *Opaque {
	return &Opaque{id: id, attrs: map[string]string{smartmask.DefaultAttribute: mask}}
}

func (o *Opaque) ID() string                           { return o.id }
func (o *Opaque) Attribute(name string) (string, bool) { v, ok := o.attrs[name]; return v, ok }

// Document is an ordered set of elements.
type Document struct {
	elements []any
}

// NewDocument returns a document holding elements in order.
func NewDocument(elements ...any) *Document {
	return &Document{elements: elements}
}

// ElementsWithAttribute returns the elements carrying attr.
func (d *Document) ElementsWithAttribute(attr string) []any {
	var out []any
	for _, el := range d.elements {
		a, ok := el.(smartmask.Attributed)
		if !ok {
			continue
		}
		if _, ok := a.Attribute(attr); ok {
			out = append(out, el)
		}
	}
	return out
}

// Lookup finds an element by id, for manifest resolution.
func (d *Document) Lookup(id string) (any, bool) {
	for _, el := range d.elements {
		if i, ok := el.(smartmask.Identified); ok && i.ID() == id {
			return el, true
		}
	}
	return nil, false
}

// Signup is a form type with mask tags for processor tests.
type Signup struct {
	Name     string   `json:"name" xml:"name" yaml:"name" msgpack:"name" bson:"name" mask:"letters-only"`
	TaxID    string   `json:"tax_id" xml:"tax_id" yaml:"tax_id" msgpack:"tax_id" bson:"tax_id" mask:"national-id"`
	Phone    string   `json:"phone" xml:"phone" yaml:"phone" msgpack:"phone" bson:"phone" mask:"phone"`
	Zip      string   `json:"zip" xml:"zip" yaml:"zip" msgpack:"zip" bson:"zip" mask:"cep"`
	Birthday string   `json:"birthday" xml:"birthday" yaml:"birthday" msgpack:"birthday" bson:"birthday" mask:"date"`
	Note     string   `json:"note" xml:"note" yaml:"note" msgpack:"note" bson:"note"`
	Alt      []string `json:"alt" xml:"alt" yaml:"alt" msgpack:"alt" bson:"alt" mask:"phone"`
}

// Clone implements smartmask.Cloner[Signup].
func (s Signup) Clone() Signup {
	clone := s
	if s.Alt != nil {
		clone.Alt = make([]string, len(s.Alt))
		copy(clone.Alt, s.Alt)
	}
	return clone
}
