package smartmask

import "unicode/utf8"

// CursorStrategy decides where the caret goes after a keystroke reformat.
type CursorStrategy int

const (
	// CursorDiff places the caret after the same number of kept runes that
	// preceded it in the raw text. Rules that do not implement Keeper fall
	// back to CursorHeuristic.
	CursorDiff CursorStrategy = iota

	// CursorHeuristic advances the keydown caret by one when the key
	// produced a single character and leaves it unchanged otherwise.
	// Paste, deletion and composed input land in the wrong place.
	CursorHeuristic
)

func (s CursorStrategy) String() string {
	switch s {
	case CursorDiff:
		return "diff"
	case CursorHeuristic:
		return "heuristic"
	default:
		return "unknown"
	}
}

// keystroke captures what the binder saw across one keydown/keyup pair.
type keystroke struct {
	downCursor int    // caret at keydown
	key        string // key text from the keyup event
	raw        string // text at keyup, before formatting
	rawCursor  int    // caret at keyup, before formatting
}

// position returns the caret for formatted, clamped to its length.
func (s CursorStrategy) position(m Masker, ks keystroke, formatted string) int {
	var pos int
	if k, ok := m.(Keeper); ok && s == CursorDiff {
		pos = diffPosition(k, ks.raw, ks.rawCursor, formatted)
	} else {
		pos = ks.downCursor
		if utf8.RuneCountInString(ks.key) == 1 {
			pos++
		}
	}
	return clamp(pos, 0, utf8.RuneCountInString(formatted))
}

// diffPosition maps a caret in raw onto formatted by counting kept runes.
func diffPosition(k Keeper, raw string, rawCursor int, formatted string) int {
	rawRunes := []rune(raw)
	rawCursor = clamp(rawCursor, 0, len(rawRunes))

	want := 0
	for _, r := range rawRunes[:rawCursor] {
		if k.Keeps(r) {
			want++
		}
	}
	if want == 0 {
		return 0
	}

	pos, seen := 0, 0
	for i, r := range []rune(formatted) {
		pos = i + 1
		if k.Keeps(r) {
			seen++
			if seen == want {
				break
			}
		}
	}
	return pos
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
