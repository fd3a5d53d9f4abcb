package hangul

import (
	"fmt"
	"unicode/utf8"
)

const (
	// SyllableStart is the first precomposed syllable, '가'.
	SyllableStart rune = 0xAC00

	// SyllableEnd is the last precomposed syllable, '힣'.
	SyllableEnd rune = 0xD7A3

	// PerChosung is the number of syllables sharing a leading consonant:
	// 21 medial vowels times 28 final consonant slots (one of them empty).
	PerChosung = 588
)

// Jamo lists all 19 leading consonants (as compatibility jamo) in syllable
// block order. A consonant's position in this list is its slot.
var Jamo = []rune{
	'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ',
	'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

// Base lists the 14 consonants that may be used as an index letter.
var Base = []rune{
	'ㄱ', 'ㄴ', 'ㄷ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅅ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

// families maps each base consonant to the consonants it covers in merged
// mode. The base consonant always comes first.
var families = map[rune][]rune{
	'ㄱ': {'ㄱ', 'ㄲ'},
	'ㄴ': {'ㄴ'},
	'ㄷ': {'ㄷ', 'ㄸ'},
	'ㄹ': {'ㄹ'},
	'ㅁ': {'ㅁ'},
	'ㅂ': {'ㅂ', 'ㅃ'},
	'ㅅ': {'ㅅ', 'ㅆ'},
	'ㅇ': {'ㅇ'},
	'ㅈ': {'ㅈ', 'ㅉ'},
	'ㅊ': {'ㅊ'},
	'ㅋ': {'ㅋ'},
	'ㅌ': {'ㅌ'},
	'ㅍ': {'ㅍ'},
	'ㅎ': {'ㅎ'},
}

var slots = make(map[rune]int, len(Jamo))

// Letters is the ordered list of index letters offered to users: the Hangul
// base consonants followed by 'A' through 'Z'.
var Letters []string

func init() {
	for i, j := range Jamo {
		slots[j] = i
	}
	for _, b := range Base {
		Letters = append(Letters, string(b))
	}
	for c := 'A'; c <= 'Z'; c++ {
		Letters = append(Letters, string(c))
	}
}

// Mode selects how tense consonants are treated when computing ranges.
type Mode int

const (
	// Merged folds the tense variant of a base consonant into its range.
	Merged Mode = iota

	// Simple restricts each base consonant to its own slot.
	Simple
)

// Modes maps the configuration name of each mode to its value.
var Modes = map[string]Mode{
	"merged": Merged,
	"simple": Simple,
}

// ParseMode returns the mode with the given configuration name. The empty
// string is Merged.
func ParseMode(name string) (Mode, error) {
	if len(name) == 0 {
		return Merged, nil
	}
	m, ok := Modes[name]
	if !ok {
		return 0, fmt.Errorf("unknown chosung index mode '%s' "+
			"(expected 'merged' or 'simple')", name)
	}
	return m, nil
}

func (m Mode) String() string {
	switch m {
	case Merged:
		return "merged"
	case Simple:
		return "simple"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Range returns the half-open range [start, end) of syllables that begin
// with the given base consonant. Both bounds are single character strings.
// If consonant is not exactly one of the 14 base consonants, then ("", "")
// is returned.
func (m Mode) Range(consonant string) (start, end string) {
	lo, hi, ok := m.Runes(consonant)
	if !ok {
		return "", ""
	}
	return string(lo), string(hi)
}

// Runes is like Range, but returns the bounds as code points. ok is false
// when consonant is not a base consonant.
func (m Mode) Runes(consonant string) (lo, hi rune, ok bool) {
	r, size := utf8.DecodeRuneInString(consonant)
	if size == 0 || size != len(consonant) {
		return 0, 0, false
	}
	family, ok := families[r]
	if !ok {
		return 0, 0, false
	}

	first, last := slots[r], slots[r]
	if m == Merged {
		for _, j := range family {
			if s := slots[j]; s < first {
				first = s
			} else if s > last {
				last = s
			}
		}
	}
	lo = SyllableStart + rune(first*PerChosung)
	hi = SyllableStart + rune((last+1)*PerChosung)
	return lo, hi, true
}

// Range is Merged.Range.
func Range(consonant string) (start, end string) {
	return Merged.Range(consonant)
}

// IsIndex returns true if and only if s is one of the 14 base consonants.
func IsIndex(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return false
	}
	_, ok := families[r]
	return ok
}

// IsLatinIndex returns true if and only if s is a single letter from 'A'
// to 'Z'.
func IsLatinIndex(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z'
}

// Chosung returns the leading consonant of a precomposed syllable as one of
// the 19 jamo in Jamo. ok is false when r is not a Hangul syllable.
func Chosung(r rune) (c rune, ok bool) {
	if r < SyllableStart || r > SyllableEnd {
		return 0, false
	}
	return Jamo[int(r-SyllableStart)/PerChosung], true
}

// baseOf returns the base consonant whose merged range contains the given
// syllable. ok is false when r is not a Hangul syllable.
func baseOf(r rune) (b rune, ok bool) {
	c, ok := Chosung(r)
	if !ok {
		return 0, false
	}
	for base, family := range families {
		for _, j := range family {
			if j == c {
				return base, true
			}
		}
	}
	panic(fmt.Sprintf("BUG: jamo %q belongs to no family", c))
}
