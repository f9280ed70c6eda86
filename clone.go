package smartmask

// Cloner allows types to provide deep copy logic.
// Processor formats a clone so the caller's value is never modified.
//
// Value types with no pointers, slices or maps can return the receiver:
//
//	func (f SignupForm) Clone() SignupForm { return f }
//
// Types holding slices or maps must copy them:
//
//	func (c Contact) Clone() Contact {
//	    phones := make([]string, len(c.Phones))
//	    copy(phones, c.Phones)
//	    return Contact{Name: c.Name, Phones: phones}
//	}
type Cloner[T any] interface {
	Clone() T
}
