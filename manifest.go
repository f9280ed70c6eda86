package smartmask

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// Manifest lists element ids and the mask each should carry. It is the
// explicit alternative to attribute discovery, for hosts that describe their
// forms in a document (JSON, YAML, XML, MessagePack or BSON).
type Manifest struct {
	XMLName xml.Name        `json:"-" yaml:"-" xml:"manifest" msgpack:"-" bson:"-"`
	Fields  []ManifestField `json:"fields" yaml:"fields" xml:"field" msgpack:"fields" bson:"fields"`
}

// ManifestField declares one element.
type ManifestField struct {
	ID   string `json:"id" yaml:"id" xml:"id,attr" msgpack:"id" bson:"id"`
	Mask string `json:"mask" yaml:"mask" xml:"mask,attr" msgpack:"mask" bson:"mask"`
}

// DecodeManifest reads a manifest with the given codec.
func DecodeManifest(c Codec, data []byte) (*Manifest, error) {
	var m Manifest
	if err := c.Unmarshal(data, &m); err != nil {
		return nil, newCodecError(ErrUnmarshal, err)
	}
	return &m, nil
}

// EncodeManifest writes a manifest with the given codec.
func EncodeManifest(c Codec, m *Manifest) ([]byte, error) {
	data, err := c.Marshal(m)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// Declarations resolves manifest ids through lookup. Ids the host cannot
// find are reported with ErrUnknownElement and left out; mask names are
// checked later by Bind.
func (m *Manifest) Declarations(lookup func(id string) (any, bool)) ([]Declaration, error) {
	decls := make([]Declaration, 0, len(m.Fields))
	var errs []error
	for _, f := range m.Fields {
		handle, ok := lookup(f.ID)
		if !ok {
			errs = append(errs, fmt.Errorf("%w %q", ErrUnknownElement, f.ID))
			continue
		}
		decls = append(decls, Declaration{Handle: handle, Mask: f.Mask})
	}
	return decls, errors.Join(errs...)
}
