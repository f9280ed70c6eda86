package testing

import (
	"testing"

	"github.com/zoobzio/smartmask"
)

func TestField_Type(t *testing.T) {
	f := NewField("f", "")
	f.Type("abc")

	if f.Value() != "abc" {
		t.Errorf("Value() = %q, want %q", f.Value(), "abc")
	}
	if f.SelectionStart() != 3 {
		t.Errorf("SelectionStart() = %d, want 3", f.SelectionStart())
	}
}

func TestField_TypeAtCursor(t *testing.T) {
	f := NewField("f", "").WithValue("ac")
	f.MoveCursor(1)
	f.Type("b")

	if f.Value() != "abc" {
		t.Errorf("Value() = %q, want %q", f.Value(), "abc")
	}
	if f.SelectionStart() != 2 {
		t.Errorf("SelectionStart() = %d, want 2", f.SelectionStart())
	}
}

func TestField_Backspace(t *testing.T) {
	f := NewField("f", "").WithValue("abc")
	f.Backspace()

	if f.Value() != "ab" {
		t.Errorf("Value() = %q, want %q", f.Value(), "ab")
	}

	f.MoveCursor(0)
	f.Backspace()
	if f.Value() != "ab" {
		t.Errorf("Backspace at start changed value to %q", f.Value())
	}
}

func TestField_SetValueMovesCursor(t *testing.T) {
	f := NewField("f", "").WithValue("abc")
	f.MoveCursor(1)

	f.SetValue("abc")
	if f.SelectionStart() != 1 {
		t.Errorf("unchanged SetValue moved caret to %d", f.SelectionStart())
	}

	f.SetValue("abcd")
	if f.SelectionStart() != 4 {
		t.Errorf("SelectionStart() = %d, want 4", f.SelectionStart())
	}
}

func TestField_Dispatch(t *testing.T) {
	f := NewField("f", "")
	var got []smartmask.EventType
	for _, et := range []smartmask.EventType{smartmask.EventChange, smartmask.EventKeyDown, smartmask.EventKeyUp} {
		f.AddEventListener(et, func(ev smartmask.Event) { got = append(got, ev.Type) })
	}

	f.Type("x")
	f.Commit()

	want := []smartmask.EventType{smartmask.EventKeyDown, smartmask.EventKeyUp, smartmask.EventChange}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDocument(t *testing.T) {
	zip := NewField("zip", "cep")
	plain := NewField("plain", "")
	label := NewLabel("lbl", "date", "")
	doc := NewDocument(zip, plain, label, "not an element")

	tagged := doc.ElementsWithAttribute(smartmask.DefaultAttribute)
	if len(tagged) != 2 {
		t.Fatalf("ElementsWithAttribute() returned %d elements, want 2", len(tagged))
	}

	if el, ok := doc.Lookup("plain"); !ok || el != plain {
		t.Error("Lookup(plain) should find the field")
	}
	if _, ok := doc.Lookup("missing"); ok {
		t.Error("Lookup(missing) should fail")
	}
}

func TestSignup_Clone(t *testing.T) {
	original := Signup{Name: "Ana", Alt: []string{"11987654321"}}
	cloned := original.Clone()

	cloned.Alt[0] = "changed"
	if original.Alt[0] != "11987654321" {
		t.Error("Clone() should copy Alt")
	}
}
