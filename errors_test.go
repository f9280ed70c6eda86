package smartmask

import (
	"errors"
	"testing"
)

func TestBindError_Is(t *testing.T) {
	err := newBindError(ErrUnknownMaskName, "zip", "passport")

	if !errors.Is(err, ErrUnknownMaskName) {
		t.Error("BindError should unwrap to ErrUnknownMaskName")
	}
	if errors.Is(err, ErrMalformedElement) {
		t.Error("BindError should not match ErrMalformedElement")
	}

	var bindErr *BindError
	if !errors.As(err, &bindErr) {
		t.Fatal("errors.As should find *BindError")
	}
	if bindErr.Element != "zip" || bindErr.Mask != "passport" {
		t.Errorf("BindError = %+v", bindErr)
	}
}

func TestBindError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "with mask",
			err:  newBindError(ErrUnknownMaskName, "zip", "passport"),
			want: `bind zip (mask "passport"): unknown mask name`,
		},
		{
			name: "without mask",
			err:  &BindError{Err: ErrMalformedElement, Element: "*main.Div"},
			want: `bind *main.Div: malformed element`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigError_Is(t *testing.T) {
	err := newConfigError(ErrInvalidTag, "passport", "Document")

	if !errors.Is(err, ErrInvalidTag) {
		t.Error("ConfigError should unwrap to ErrInvalidTag")
	}
	if errors.Is(err, ErrMissingMasker) {
		t.Error("ConfigError should not match ErrMissingMasker")
	}
}

func TestConfigError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "full context",
			err:  newConfigError(ErrMissingMasker, "phone", "Phone"),
			want: `missing masker for mask "phone" (field Phone)`,
		},
		{
			name: "mask only",
			err:  &ConfigError{Err: ErrInvalidTag, Mask: "passport"},
			want: `invalid tag for mask "passport"`,
		},
		{
			name: "field only",
			err:  &ConfigError{Err: ErrInvalidTag, Field: "Phone"},
			want: `invalid tag (field Phone)`,
		},
		{
			name: "no context",
			err:  &ConfigError{Err: ErrInvalidTag},
			want: `invalid tag`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodecError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := newCodecError(ErrUnmarshal, cause)

	if !errors.Is(err, ErrUnmarshal) {
		t.Error("CodecError should unwrap to ErrUnmarshal")
	}
	if got, want := err.Error(), "unmarshal failed: unexpected EOF"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := &CodecError{Err: ErrMarshal}
	if got, want := bare.Error(), "marshal failed"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
