package integration

import (
	"context"
	"errors"
	"testing"

	"github.com/zoobzio/smartmask"
	"github.com/zoobzio/smartmask/bson"
	"github.com/zoobzio/smartmask/json"
	"github.com/zoobzio/smartmask/msgpack"
	masktest "github.com/zoobzio/smartmask/testing"
	"github.com/zoobzio/smartmask/xml"
	"github.com/zoobzio/smartmask/yaml"
)

func TestProcessor_SendReceive_JSON(t *testing.T) {
	testSendReceive(t, json.New())
}

func TestProcessor_SendReceive_XML(t *testing.T) {
	testSendReceive(t, xml.New())
}

func TestProcessor_SendReceive_YAML(t *testing.T) {
	testSendReceive(t, yaml.New())
}

func TestProcessor_SendReceive_MessagePack(t *testing.T) {
	testSendReceive(t, msgpack.New())
}

func TestProcessor_SendReceive_BSON(t *testing.T) {
	testSendReceive(t, bson.New())
}

func testSendReceive(t *testing.T, c smartmask.Codec) {
	t.Helper()

	proc, err := smartmask.NewProcessor[masktest.Signup](c)
	if err != nil {
		t.Fatalf("NewProcessor error: %v", err)
	}

	raw := &masktest.Signup{
		Name:     "Ana 2",
		TaxID:    "11144477735",
		Phone:    "11 98765 4321",
		Zip:      "01310100",
		Birthday: "25122024",
		Note:     "call after 18:00",
		Alt:      []string{"1198765432199"},
	}

	data, err := proc.Send(context.Background(), raw)
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}

	// Send formats a clone
	if raw.TaxID != "11144477735" {
		t.Errorf("Send modified original TaxID: %q", raw.TaxID)
	}

	// Receive re-applies the rules to already formatted text
	got, err := proc.Receive(context.Background(), data)
	if err != nil {
		t.Fatalf("Receive error: %v", err)
	}

	want := masktest.Signup{
		Name:     "Ana ",
		TaxID:    "111.444.777-35",
		Phone:    "(11) 98765-4321",
		Zip:      "01310-100",
		Birthday: "25/12/2024",
		Note:     "call after 18:00",
		Alt:      []string{"(11) 98765-4321"},
	}
	assertSignup(t, got, want)
}

func assertSignup(t *testing.T, got *masktest.Signup, want masktest.Signup) {
	t.Helper()
	if got.Name != want.Name {
		t.Errorf("Name = %q, want %q", got.Name, want.Name)
	}
	if got.TaxID != want.TaxID {
		t.Errorf("TaxID = %q, want %q", got.TaxID, want.TaxID)
	}
	if got.Phone != want.Phone {
		t.Errorf("Phone = %q, want %q", got.Phone, want.Phone)
	}
	if got.Zip != want.Zip {
		t.Errorf("Zip = %q, want %q", got.Zip, want.Zip)
	}
	if got.Birthday != want.Birthday {
		t.Errorf("Birthday = %q, want %q", got.Birthday, want.Birthday)
	}
	if got.Note != want.Note {
		t.Errorf("Note = %q, want %q", got.Note, want.Note)
	}
	if len(got.Alt) != len(want.Alt) || (len(want.Alt) > 0 && got.Alt[0] != want.Alt[0]) {
		t.Errorf("Alt = %v, want %v", got.Alt, want.Alt)
	}
}

func TestBindDocument_TypingScenario(t *testing.T) {
	zip := masktest.NewField("zip", "postal-code")
	phone := masktest.NewField("phone", "phone")
	doc := masktest.NewDocument(zip, phone)

	bindings, err := smartmask.NewBinder().BindDocument(context.Background(), doc)
	if err != nil {
		t.Fatalf("BindDocument error: %v", err)
	}
	if len(bindings) != 2 {
		t.Fatalf("got %d bindings, want 2", len(bindings))
	}

	zip.Type("01310100")
	if zip.Value() != "01310-100" {
		t.Errorf("zip = %q, want %q", zip.Value(), "01310-100")
	}
	if zip.SelectionStart() != len("01310-100") {
		t.Errorf("zip caret = %d, want %d", zip.SelectionStart(), len("01310-100"))
	}

	phone.Type("11987654321")
	if phone.Value() != "(11) 98765-4321" {
		t.Errorf("phone = %q, want %q", phone.Value(), "(11) 98765-4321")
	}
}

func TestBindDocument_IsolatesFailures(t *testing.T) {
	good := masktest.NewField("good", "cpf").WithValue("11144477735")
	unknown := masktest.NewField("unknown", "passport")
	opaque := masktest.NewOpaque("opaque", "date")
	label := masktest.NewLabel("label", "date", "25122024")
	doc := masktest.NewDocument(good, unknown, opaque, label)

	bindings, err := smartmask.NewBinder().BindDocument(context.Background(), doc)
	if len(bindings) != 2 {
		t.Fatalf("got %d bindings, want 2", len(bindings))
	}
	if !errors.Is(err, smartmask.ErrUnknownMaskName) {
		t.Errorf("error should include ErrUnknownMaskName, got %v", err)
	}
	if !errors.Is(err, smartmask.ErrMalformedElement) {
		t.Errorf("error should include ErrMalformedElement, got %v", err)
	}

	if good.Value() != "111.444.777-35" {
		t.Errorf("good = %q, want initial normalization", good.Value())
	}
	if label.TextContent() != "25/12/2024" {
		t.Errorf("label = %q, want %q", label.TextContent(), "25/12/2024")
	}
}

func TestManifest_BindsByID(t *testing.T) {
	zip := masktest.NewField("zip", "")
	born := masktest.NewField("born", "")
	doc := masktest.NewDocument(zip, born)

	manifest, err := smartmask.DecodeManifest(yaml.New(), []byte(
		"fields:\n  - id: zip\n    mask: postal-code\n  - id: born\n    mask: date\n  - id: gone\n    mask: phone\n"))
	if err != nil {
		t.Fatalf("DecodeManifest error: %v", err)
	}

	decls, err := manifest.Declarations(doc.Lookup)
	if !errors.Is(err, smartmask.ErrUnknownElement) {
		t.Errorf("missing id should report ErrUnknownElement, got %v", err)
	}

	if _, err := smartmask.NewBinder().BindAll(context.Background(), decls); err != nil {
		t.Fatalf("BindAll error: %v", err)
	}

	born.Type("2512")
	if born.Value() != "25/12" {
		t.Errorf("born = %q, want %q", born.Value(), "25/12")
	}
	zip.Paste("01310-100 ext 9")
	if zip.Value() != "01310-100" {
		t.Errorf("zip = %q, want %q", zip.Value(), "01310-100")
	}
}
