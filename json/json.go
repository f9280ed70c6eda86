// Package json provides an JSON codec for smartmask manifests and processors.
package json

import (
	"encoding/json"

	"github.com/zoobzio/smartmask"
)

// jsonCodec implements smartmask.Codec for JSON.
type jsonCodec struct{}

// New returns an JSON codec.
func New() smartmask.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
