package smartmask

// Document is the host's element tree, as far as discovery needs it.
type Document interface {
	// ElementsWithAttribute returns every element carrying attr, in
	// document order.
	ElementsWithAttribute(attr string) []any
}

// Attributed is implemented by elements that expose their attributes.
type Attributed interface {
	Attribute(name string) (string, bool)
}

// Discover lists the elements of doc tagged with the binder's attribute and
// the mask name each one declares. Names are not checked here; Bind rejects
// unknown ones per element.
func (b *Binder) Discover(doc Document) []Declaration {
	if doc == nil {
		return nil
	}
	handles := doc.ElementsWithAttribute(b.attribute)
	decls := make([]Declaration, 0, len(handles))
	for _, h := range handles {
		var mask string
		if a, ok := h.(Attributed); ok {
			mask, _ = a.Attribute(b.attribute)
		}
		decls = append(decls, Declaration{Handle: h, Mask: mask})
	}
	return decls
}
