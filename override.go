package smartmask

// Formattable bypasses reflection for mask tags.
// When a type implements it, Processor calls Format instead of walking
// struct fields, which suits hot paths and generated code.
type Formattable interface {
	// Format rewrites the receiver's fields in place.
	// The maskers map holds every registered rule keyed by name.
	// The receiver is a clone, so mutations are safe.
	Format(maskers map[MaskName]Masker) error
}
