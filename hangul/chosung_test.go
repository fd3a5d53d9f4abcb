package hangul

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"
)

func TestMergedRange(t *testing.T) {
	tests := []struct {
		consonant  string
		start, end string
	}{
		{"ㄱ", "가", "나"},
		{"ㄴ", "나", "다"},
		{"ㄷ", "다", "라"},
		{"ㄹ", "라", "마"},
		{"ㅁ", "마", "바"},
		{"ㅂ", "바", "사"},
		{"ㅅ", "사", "아"},
		{"ㅇ", "아", "자"},
		{"ㅈ", "자", "차"},
		{"ㅊ", "차", "카"},
		{"ㅋ", "카", "타"},
		{"ㅌ", "타", "파"},
		{"ㅍ", "파", "하"},
		{"ㅎ", "하", string(SyllableEnd + 1)},
	}
	for _, test := range tests {
		start, end := Range(test.consonant)
		assert.Equal(t, test.start, start, "start of %s", test.consonant)
		assert.Equal(t, test.end, end, "end of %s", test.consonant)
	}
}

func TestSimpleRange(t *testing.T) {
	start, end := Simple.Range("ㄱ")
	assert.Equal(t, "가", start)
	assert.Equal(t, "까", end)

	start, end = Simple.Range("ㄴ")
	assert.Equal(t, "나", start)
	assert.Equal(t, "다", end)

	for _, b := range Base {
		lo, hi, ok := Simple.Runes(string(b))
		require.True(t, ok)
		i := slots[b]
		assert.Equal(t, SyllableStart+rune(i*PerChosung), lo)
		assert.Equal(t, SyllableStart+rune((i+1)*PerChosung), hi)
	}
}

func TestMergedWidths(t *testing.T) {
	wide := map[rune]bool{'ㄱ': true, 'ㄷ': true, 'ㅂ': true, 'ㅅ': true, 'ㅈ': true}
	for _, b := range Base {
		lo, hi, ok := Merged.Runes(string(b))
		require.True(t, ok)
		if wide[b] {
			assert.Equal(t, rune(2*PerChosung), hi-lo, "%c", b)
		} else {
			assert.Equal(t, rune(PerChosung), hi-lo, "%c", b)
		}
	}
}

func TestMergedTiling(t *testing.T) {
	next := SyllableStart
	for _, b := range Base {
		lo, hi, ok := Merged.Runes(string(b))
		require.True(t, ok)
		assert.Equal(t, next, lo, "gap or overlap before %c", b)
		next = hi
	}
	assert.Equal(t, SyllableEnd+1, next)
}

func TestSimpleSkipsTense(t *testing.T) {
	for _, title := range []string{"까치", "또", "빵", "쌀", "짜장"} {
		r, _ := utf8.DecodeRuneInString(title)
		for _, b := range Base {
			lo, hi, _ := Simple.Runes(string(b))
			assert.False(t, r >= lo && r < hi,
				"%s should not be reachable from %c in simple mode", title, b)
		}
		base, ok := baseOf(r)
		require.True(t, ok)
		lo, hi, _ := Merged.Runes(string(base))
		assert.True(t, r >= lo && r < hi, "%s in merged %c", title, base)
	}
}

func TestSentinel(t *testing.T) {
	for _, in := range []string{"X", "", "ㄲ", "ㅉ", "가", "ㄱㄴ", "a", "ㅏ"} {
		for _, m := range []Mode{Merged, Simple} {
			start, end := m.Range(in)
			assert.Equal(t, "", start, "%s (%s)", in, m)
			assert.Equal(t, "", end, "%s (%s)", in, m)
		}
	}
}

// Every syllable must fall in exactly one merged range, namely the one for
// the base of its leading consonant as given by canonical decomposition.
func TestChosungMatchesDecomposition(t *testing.T) {
	for r := SyllableStart; r <= SyllableEnd; r++ {
		c, ok := Chosung(r)
		require.True(t, ok)

		lead, _ := utf8.DecodeRuneInString(norm.NFD.String(string(r)))
		require.Equal(t, int(lead-0x1100), slots[c], "%c", r)

		matches := 0
		for _, b := range Base {
			lo, hi, _ := Merged.Runes(string(b))
			if r >= lo && r < hi {
				matches++
				base, _ := baseOf(r)
				require.Equal(t, b, base, "%c", r)
			}
		}
		require.Equal(t, 1, matches, "%c", r)
	}
}

func TestChosungOutsideBlock(t *testing.T) {
	for _, r := range []rune{'A', 'ㄱ', SyllableStart - 1, SyllableEnd + 1} {
		_, ok := Chosung(r)
		assert.False(t, ok, "%U", r)
	}
}

func TestIndexLetters(t *testing.T) {
	assert.Len(t, Letters, 14+26)
	assert.Equal(t, "ㄱ", Letters[0])
	assert.Equal(t, "Z", Letters[len(Letters)-1])
	assert.True(t, IsIndex("ㅎ"))
	assert.False(t, IsIndex("ㄸ"))
	assert.True(t, IsLatinIndex("Q"))
	assert.False(t, IsLatinIndex("q"))
	assert.False(t, IsLatinIndex("QQ"))
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, Merged, m)

	m, err = ParseMode("simple")
	require.NoError(t, err)
	assert.Equal(t, Simple, m)

	_, err = ParseMode("doubled")
	assert.Error(t, err)
}
