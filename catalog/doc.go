/*
Package catalog provides types and functions for reading and writing a movie
catalog stored in a relational database. The catalog is made of movies, along
with their genres, production companies, nations and directors (credited
through castings).

The database can be queried with the 'database/sql' package directly, but it
is strongly recommended that you use the Open function in this package. For
SQLite and PostgreSQL, Open performs a migration on the schema of your
database to make sure it is up to date with the version of this package that
you're using. (If the migration fails, it will be rolled back and your
database will be left untouched.) For MySQL, the schema is assumed to be
managed elsewhere and is used as is.

Queries in this package are written with '?' placeholders and go through
Rebind, so that the same query text works with every supported driver.

The 'search' sub-package builds filtered, paginated queries over the catalog
and is probably what you're looking for.
*/
package catalog
