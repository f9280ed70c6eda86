// Package smartmask formats user-entered text into fixed patterns as it is
// typed and keeps input elements in sync with those patterns.
//
// # Rules
//
// Every rule is a pure, total Masker. Grouped rules extract the digits of
// their input, drop digits beyond capacity and insert separators
// progressively, so a partial entry shows only the separators reached so far:
//
//   - national-id: 11144477735 → 111.444.777-35
//   - business-id: 11222333000181 → 11.222.333/0001-81
//   - phone: 11987654321 → (11) 98765-4321
//   - postal-code: 01310100 → 01310-100
//   - date: 25122024 → 25/12/2024
//
// Filters remove characters instead:
//
//   - digits-only: a1b2c3 → 123
//   - letters-only: a1b2c3 → abc
//   - non-special: a.b_c-1 → abc
//
// Re-applying a rule to its own output returns the same text.
//
//	out, _ := smartmask.Apply(smartmask.MaskPhone, "11987654321")
//
// # Binding
//
// A Binder attaches rules to host elements. Hosts adapt their widgets to
// Element, or expose ValueHolder / ContentHolder and let Resolve adapt them:
//
//	binder := smartmask.NewBinder()
//	bindings, err := binder.BindAll(ctx, []smartmask.Declaration{
//	    {Handle: zipInput, Mask: "postal-code"},
//	    {Handle: phoneInput, Mask: "phone"},
//	})
//
// Each binding reformats on change, keydown and keyup and restores the
// caret after keyup. Elements with unknown mask names or no text surface are
// skipped with a *BindError; the rest still bind.
//
// Elements can also be found through a Document (attribute
// data-custom-mask, as in existing markup) or listed in a Manifest decoded
// with any Codec.
//
// # Struct Formatting
//
// Processor applies the same rules to struct fields tagged with mask:
//
//	type Signup struct {
//	    Name  string `json:"name" mask:"letters-only"`
//	    Phone string `json:"phone" mask:"phone"`
//	}
//
//	func (s Signup) Clone() Signup { return s }
//
//	proc, _ := smartmask.NewProcessor[Signup](json.New())
//	signup, _ := proc.Receive(ctx, body)
//
// # Codec Providers
//
// The following codec implementations are available as submodules:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// # Events
//
// Binder and Processor report through capitan signals (SignalBindingCreated,
// SignalBindingFailed, SignalElementMasked and others).
package smartmask
