package smartmask

import (
	"fmt"
	"regexp"
	"strings"
)

// MaskName identifies one of the built-in formatting rules.
type MaskName string

const (
	MaskNationalID  MaskName = "national-id"  // 11144477735 -> 111.444.777-35
	MaskBusinessID  MaskName = "business-id"  // 11222333000181 -> 11.222.333/0001-81
	MaskPhone       MaskName = "phone"        // 11987654321 -> (11) 98765-4321
	MaskPostalCode  MaskName = "postal-code"  // 01310100 -> 01310-100
	MaskDate        MaskName = "date"         // 25122024 -> 25/12/2024
	MaskDigitsOnly  MaskName = "digits-only"  // a1b2c3 -> 123
	MaskLettersOnly MaskName = "letters-only" // a1b2c3 -> abc
	MaskNonSpecial  MaskName = "non-special"  // a.b-1! -> ab
)

// Masker formats raw text into its display form.
type Masker interface {
	// Mask returns the formatted text. It never fails.
	Mask(text string) string
}

// Keeper is implemented by maskers that can tell which runes of the raw text
// survive formatting. The binder uses it to restore the cursor.
type Keeper interface {
	Keeps(r rune) bool
}

// step inserts separators around the first match of pattern.
type step struct {
	pattern  *regexp.Regexp
	template string
}

func newStep(pattern, template string) step {
	return step{pattern: regexp.MustCompile(pattern), template: template}
}

// apply replaces only the first match, leaving later groups for later steps.
func (s step) apply(text string) string {
	m := s.pattern.FindStringSubmatchIndex(text)
	if m == nil {
		return text
	}
	expanded := s.pattern.ExpandString(nil, s.template, text, m)
	return text[:m[0]] + string(expanded) + text[m[1]:]
}

// groupedMasker formats the digit sequence of its input into fixed groups.
type groupedMasker struct {
	capacity int
	steps    []step
}

func (m *groupedMasker) Mask(text string) string {
	digits := extractDigits(text)
	if len(digits) > m.capacity {
		digits = digits[:m.capacity]
	}
	for _, s := range m.steps {
		digits = s.apply(digits)
	}
	return digits
}

func (m *groupedMasker) Keeps(r rune) bool {
	return isDigit(r)
}

var (
	nationalID = &groupedMasker{
		capacity: 11,
		steps: []step{
			newStep(`(\d{3})(\d)`, "${1}.${2}"),
			newStep(`(\d{3})(\d)`, "${1}.${2}"),
			newStep(`(\d{3})(\d{1,2})`, "${1}-${2}"),
		},
	}
	businessID = &groupedMasker{
		capacity: 14,
		steps: []step{
			newStep(`(\d{2})(\d)`, "${1}.${2}"),
			newStep(`(\d{3})(\d)`, "${1}.${2}"),
			newStep(`(\d{3})(\d)`, "${1}/${2}"),
			newStep(`(\d{4})(\d)`, "${1}-${2}"),
		},
	}
	phone = &groupedMasker{
		capacity: 11,
		steps: []step{
			newStep(`^(\d{2})(\d)`, "(${1}) ${2}"),
			newStep(`(\d{5})(\d)`, "${1}-${2}"),
		},
	}
	postalCode = &groupedMasker{
		capacity: 8,
		steps: []step{
			newStep(`(\d{5})(\d)`, "${1}-${2}"),
		},
	}
	date = &groupedMasker{
		capacity: 8,
		steps: []step{
			newStep(`(\d{2})(\d)`, "${1}/${2}"),
			newStep(`(\d{2})(\d)`, "${1}/${2}"),
		},
	}
)

// NationalIDMasker returns the 000.000.000-00 rule.
func NationalIDMasker() Masker { return nationalID }

// BusinessIDMasker returns the 00.000.000/0000-00 rule.
func BusinessIDMasker() Masker { return businessID }

// PhoneMasker returns the (00) 00000-0000 rule.
func PhoneMasker() Masker { return phone }

// PostalCodeMasker returns the 00000-000 rule.
func PostalCodeMasker() Masker { return postalCode }

// DateMasker returns the DD/MM/YYYY rule.
// Digits are grouped only; calendar values are not checked.
func DateMasker() Masker { return date }

// filterMasker drops every rune its keep func rejects.
type filterMasker struct {
	keep func(r rune) bool
}

func (m *filterMasker) Mask(text string) string {
	return strings.Map(func(r rune) rune {
		if m.keep(r) {
			return r
		}
		return -1
	}, text)
}

func (m *filterMasker) Keeps(r rune) bool {
	return m.keep(r)
}

// specialChars are removed by the non-special rule in addition to digits.
const specialChars = "!@#¨$%^&*)(+=._-"

var (
	digitsOnly  = &filterMasker{keep: isDigit}
	lettersOnly = &filterMasker{keep: func(r rune) bool { return !isDigit(r) }}
	nonSpecial  = &filterMasker{keep: func(r rune) bool {
		return !isDigit(r) && !strings.ContainsRune(specialChars, r)
	}}
)

// DigitsOnlyMasker returns a rule that removes every non-digit character.
func DigitsOnlyMasker() Masker { return digitsOnly }

// LettersOnlyMasker returns a rule that removes digit characters.
// Punctuation is kept.
func LettersOnlyMasker() Masker { return lettersOnly }

// NonSpecialMasker returns a rule that removes digits and common
// punctuation.
func NonSpecialMasker() Masker { return nonSpecial }

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// extractDigits returns only the ASCII digits of s, in order.
func extractDigits(s string) string {
	var digits strings.Builder
	for _, r := range s {
		if isDigit(r) {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}

// MaskerFor resolves a name to its built-in rule.
func MaskerFor(name MaskName) (Masker, error) {
	switch name {
	case MaskNationalID:
		return nationalID, nil
	case MaskBusinessID:
		return businessID, nil
	case MaskPhone:
		return phone, nil
	case MaskPostalCode:
		return postalCode, nil
	case MaskDate:
		return date, nil
	case MaskDigitsOnly:
		return digitsOnly, nil
	case MaskLettersOnly:
		return lettersOnly, nil
	case MaskNonSpecial:
		return nonSpecial, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownMaskName, name)
	}
}

// Apply formats text with the named built-in rule.
func Apply(name MaskName, text string) (string, error) {
	m, err := MaskerFor(name)
	if err != nil {
		return "", err
	}
	return m.Mask(text), nil
}

// Capacity returns how many digits the named rule holds before truncating.
// Filters and unknown names report 0.
func Capacity(name MaskName) int {
	m, err := MaskerFor(name)
	if err != nil {
		return 0
	}
	if g, ok := m.(*groupedMasker); ok {
		return g.capacity
	}
	return 0
}

// builtinMaskers returns the default rule table.
func builtinMaskers() map[MaskName]Masker {
	table := make(map[MaskName]Masker, len(maskNames))
	for _, name := range maskNames {
		m, _ := MaskerFor(name)
		table[name] = m
	}
	return table
}
