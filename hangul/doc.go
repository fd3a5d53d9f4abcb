/*
Package hangul computes the code point ranges used to index Korean titles by
their initial consonant (chosung).

Every precomposed Hangul syllable between '가' (U+AC00) and '힣' (U+D7A3) is
laid out in blocks of 588 code points per leading consonant, in the order

	ㄱ ㄲ ㄴ ㄷ ㄸ ㄹ ㅁ ㅂ ㅃ ㅅ ㅆ ㅇ ㅈ ㅉ ㅊ ㅋ ㅌ ㅍ ㅎ

so the set of titles starting with a given consonant is a half-open range of
strings [start, end), which a relational store can answer with a '>=' and a
'<' comparison on the title column.

Only the 14 base consonants are offered as index letters. There are two ways
of dealing with the 5 tense consonants (ㄲ ㄸ ㅃ ㅆ ㅉ). Merged mode, the
default, folds each tense consonant into its base consonant, so the range for
ㄱ covers both '가' and '까'. Simple mode gives each base consonant its own
588 slot block only, which leaves titles starting with a tense consonant
unreachable from any index letter.

For anything that isn't a base consonant, Range returns the pair ("", ""),
which callers must treat as "no restriction" rather than as bounds.
*/
package hangul
