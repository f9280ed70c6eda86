package xml

import (
	"errors"
	"reflect"
	"testing"

	"github.com/zoobzio/smartmask"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/xml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/xml")
	}
}

func TestDecodeManifest(t *testing.T) {
	m, err := smartmask.DecodeManifest(New(), []byte(`<manifest><field id="zip" mask="postal-code"></field><field id="doc" mask="cpf"></field></manifest>`))
	if err != nil {
		t.Fatalf("DecodeManifest() error: %v", err)
	}

	want := []smartmask.ManifestField{
		{ID: "zip", Mask: "postal-code"},
		{ID: "doc", Mask: "cpf"},
	}
	if !reflect.DeepEqual(m.Fields, want) {
		t.Errorf("Fields = %+v, want %+v", m.Fields, want)
	}
}

func TestManifestRoundTrip(t *testing.T) {
	c := New()

	original := &smartmask.Manifest{
		Fields: []smartmask.ManifestField{
			{ID: "phone", Mask: "phone"},
			{ID: "born", Mask: "date"},
		},
	}

	data, err := smartmask.EncodeManifest(c, original)
	if err != nil {
		t.Fatalf("EncodeManifest() error: %v", err)
	}

	restored, err := smartmask.DecodeManifest(c, data)
	if err != nil {
		t.Fatalf("DecodeManifest() error: %v", err)
	}

	if !reflect.DeepEqual(restored.Fields, original.Fields) {
		t.Errorf("round-trip failed: got %+v, want %+v", restored.Fields, original.Fields)
	}
}

func TestDecodeManifest_Invalid(t *testing.T) {
	_, err := smartmask.DecodeManifest(New(), []byte("<manifest><field"))
	if err == nil {
		t.Fatal("DecodeManifest(invalid) should return error")
	}
	if !errors.Is(err, smartmask.ErrUnmarshal) {
		t.Errorf("error should wrap ErrUnmarshal, got %v", err)
	}
}
