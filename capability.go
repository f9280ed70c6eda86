package smartmask

import "fmt"

// maskNames lists every built-in rule in declaration order.
var maskNames = []MaskName{
	MaskNationalID,
	MaskBusinessID,
	MaskPhone,
	MaskPostalCode,
	MaskDate,
	MaskDigitsOnly,
	MaskLettersOnly,
	MaskNonSpecial,
}

// validMaskNames contains all valid mask names for attribute and tag validation.
var validMaskNames = map[MaskName]bool{
	MaskNationalID:  true,
	MaskBusinessID:  true,
	MaskPhone:       true,
	MaskPostalCode:  true,
	MaskDate:        true,
	MaskDigitsOnly:  true,
	MaskLettersOnly: true,
	MaskNonSpecial:  true,
}

// legacyAliases maps the attribute values used by existing markup
// (data-custom-mask="cpf" and friends) to canonical names.
var legacyAliases = map[string]MaskName{
	"cpf":                    MaskNationalID,
	"cnpj":                   MaskBusinessID,
	"cep":                    MaskPostalCode,
	"numbers":                MaskDigitsOnly,
	"characters":             MaskLettersOnly,
	"non-special-characters": MaskNonSpecial,
}

// IsValidMaskName returns true if name is a known canonical mask name.
func IsValidMaskName(name MaskName) bool {
	return validMaskNames[name]
}

// ParseMaskName resolves a declared attribute or tag value to a MaskName.
// Canonical names and legacy aliases are accepted; matching is case-sensitive.
func ParseMaskName(s string) (MaskName, error) {
	if name := MaskName(s); validMaskNames[name] {
		return name, nil
	}
	if name, ok := legacyAliases[s]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownMaskName, s)
}

// MaskNames returns all canonical mask names.
func MaskNames() []MaskName {
	out := make([]MaskName, len(maskNames))
	copy(out, maskNames)
	return out
}
