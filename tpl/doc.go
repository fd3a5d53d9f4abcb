/*
Package tpl provides convenience functions that are loaded into every cinedex
template, along with some functions for parsing and executing cinedex
templates.

There are two sets of templates. Text templates are used by the command line
and are given a Formatted value: the X field holds the value being shown
(a search page, a movie or the facets) and the A field holds extra options.
The HTML template "search_page" renders the web search form and its results,
and is given a SearchPage value.

Both sets are parsed with the same whitespace conventions. See ParseText.
*/
package tpl
