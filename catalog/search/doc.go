/*
Package search provides a convenient interface that can quickly search a movie
catalog. Each search result corresponds to exactly one movie, even when the
movie matches a filter more than once (say, two of its genres are wanted).

The search interface in this package has three forms. One of them is with
regular Go method calls:

	s := New(db).Text("괴물").Genres("드라마", "SF").Years(2000, 2010)

Another is with a special query string syntax, which is what the command line
uses:

	s, err := Query(db, "괴물 {genre:드라마,SF} {years:2000-2010}")

And the last one binds the parameters of a submitted search form:

	s, err := FromValues(db, r.Form)

All three are functionally equivalent.

Movie titles can also be restricted to an index letter with Index. For an
uppercase Latin letter, titles must start with that letter in either case. For
a Hangul consonant, titles must fall in the syllable range computed by the
hangul package, in the Mode given to IndexMode. Anything else puts no
restriction on titles.

Results are paginated. Page numbers behave leniently: a page number that
isn't an integer gives the first page, and a page number out of range gives
the last page.
*/
package search
