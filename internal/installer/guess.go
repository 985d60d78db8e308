package installer

import "strings"

// GuessQuality ranks where a guessed value came from. Higher wins.
type GuessQuality int

const (
	GuessInvalid GuessQuality = iota
	GuessFallback
	GuessGood
	GuessMeta
	GuessPreset
	GuessUser
)

// String returns a lower-case label for q.
func (q GuessQuality) String() string {
	switch q {
	case GuessInvalid:
		return "invalid"
	case GuessFallback:
		return "fallback"
	case GuessGood:
		return "good"
	case GuessMeta:
		return "meta"
	case GuessPreset:
		return "preset"
	case GuessUser:
		return "user"
	default:
		return "unknown"
	}
}

// GuessedValue is the best-so-far mod name together with its provenance.
// The zero value holds no guess.
type GuessedValue struct {
	value    string
	quality  GuessQuality
	variants []string
}

// NewGuessedValue starts a guess at the given quality.
func NewGuessedValue(value string, quality GuessQuality) *GuessedValue {
	g := &GuessedValue{}
	g.Update(value, quality)
	return g
}

// Update offers a new candidate. Blank candidates are ignored; otherwise the
// candidate is recorded as a variant and becomes the value when its quality
// is at least the current one. It reports whether the value changed.
func (g *GuessedValue) Update(value string, quality GuessQuality) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	g.addVariant(value)
	if quality < g.quality {
		return false
	}
	changed := g.value != value || g.quality != quality
	g.value = value
	g.quality = quality
	return changed
}

// Value returns the current best guess.
func (g *GuessedValue) Value() string {
	return g.value
}

// Quality returns the provenance of the current value.
func (g *GuessedValue) Quality() GuessQuality {
	return g.quality
}

// Variants returns every distinct candidate offered so far, oldest first.
func (g *GuessedValue) Variants() []string {
	out := make([]string, len(g.variants))
	copy(out, g.variants)
	return out
}

func (g *GuessedValue) addVariant(value string) {
	for _, existing := range g.variants {
		if existing == value {
			return
		}
	}
	g.variants = append(g.variants, value)
}
