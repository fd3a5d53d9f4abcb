/*
Command cinedex loads a movie catalog into a relational database and
searches it from the command line or from a web search page.

Usage:

	cinedex {command} [flags] [arguments]

Use 'cinedex help {command}' for more details on {command}.

A list of the commands:

	clean           removes every movie from the catalog
	facets          show the genres, nations, types and states in use
	load            populates the database with a catalog dump
	search          search the catalog for movies
	serve           serve the search page and the JSON API over HTTP
	show            show everything known about a movie
	size            lists size of tables and total size of database
	write-config    write a default configuration

Korean titles can be listed by the initial consonant (chosung) of their first
syllable. For example, this lists the titles starting with ㄱ (including those
starting with ㄲ), ordered by year:

	cinedex search {index:ㄱ} {sort:year desc}

The configuration lives in $XDG_CONFIG_HOME/cinedex/config.toml. Use
'cinedex write-config' to create one with every option documented.
*/
package main
