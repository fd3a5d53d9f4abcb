package catalog

import (
	"github.com/BurntSushi/migration"
)

var sqliteMigrations = []migration.Migrator{
	func(tx migration.LimitedTx) error {
		_, err := tx.Exec(`
			CREATE TABLE movie (
				mid INTEGER NOT NULL,
				movie_name TEXT NOT NULL,
				movie_engname TEXT,
				create_year INTEGER NOT NULL,
				movie_type TEXT,
				movie_state TEXT,
				PRIMARY KEY (mid)
			);
			CREATE TABLE director (
				did INTEGER NOT NULL,
				dname TEXT NOT NULL,
				PRIMARY KEY (did)
			);
			CREATE TABLE movie_genre (
				mgid INTEGER PRIMARY KEY AUTOINCREMENT,
				genre TEXT NOT NULL,
				mid INTEGER NOT NULL REFERENCES movie (mid) ON DELETE RESTRICT
			);
			CREATE TABLE movie_company (
				mcid INTEGER PRIMARY KEY AUTOINCREMENT,
				company TEXT NOT NULL,
				mid INTEGER NOT NULL REFERENCES movie (mid) ON DELETE RESTRICT
			);
			CREATE TABLE movie_nation (
				mnid INTEGER PRIMARY KEY AUTOINCREMENT,
				nation TEXT NOT NULL,
				mid INTEGER NOT NULL REFERENCES movie (mid) ON DELETE RESTRICT
			);
			CREATE TABLE casting (
				cid INTEGER PRIMARY KEY AUTOINCREMENT,
				mid INTEGER NOT NULL REFERENCES movie (mid) ON DELETE RESTRICT,
				did INTEGER NOT NULL REFERENCES director (did) ON DELETE RESTRICT
			);
			`)
		return err
	},
	func(tx migration.LimitedTx) error {
		_, err := tx.Exec(`
			CREATE INDEX movie_name_idx ON movie (movie_name);
			CREATE INDEX movie_year_idx ON movie (create_year);
			CREATE INDEX movie_genre_mid_idx ON movie_genre (mid);
			CREATE INDEX movie_company_mid_idx ON movie_company (mid);
			CREATE INDEX movie_nation_mid_idx ON movie_nation (mid);
			CREATE INDEX casting_mid_idx ON casting (mid);
			CREATE INDEX casting_did_idx ON casting (did);
			CREATE INDEX director_dname_idx ON director (dname);
			`)
		return err
	},
}

var postgresMigrations = []migration.Migrator{
	func(tx migration.LimitedTx) error {
		_, err := tx.Exec(`
			CREATE TABLE movie (
				mid INTEGER NOT NULL,
				movie_name VARCHAR(255) NOT NULL,
				movie_engname VARCHAR(255),
				create_year SMALLINT NOT NULL,
				movie_type VARCHAR(10),
				movie_state VARCHAR(10),
				PRIMARY KEY (mid)
			);
			CREATE TABLE director (
				did INTEGER NOT NULL,
				dname VARCHAR(255) NOT NULL,
				PRIMARY KEY (did)
			);
			CREATE TABLE movie_genre (
				mgid SERIAL PRIMARY KEY,
				genre VARCHAR(255) NOT NULL,
				mid INTEGER NOT NULL REFERENCES movie (mid) ON DELETE RESTRICT
			);
			CREATE TABLE movie_company (
				mcid SERIAL PRIMARY KEY,
				company VARCHAR(255) NOT NULL,
				mid INTEGER NOT NULL REFERENCES movie (mid) ON DELETE RESTRICT
			);
			CREATE TABLE movie_nation (
				mnid SERIAL PRIMARY KEY,
				nation VARCHAR(255) NOT NULL,
				mid INTEGER NOT NULL REFERENCES movie (mid) ON DELETE RESTRICT
			);
			CREATE TABLE casting (
				cid SERIAL PRIMARY KEY,
				mid INTEGER NOT NULL REFERENCES movie (mid) ON DELETE RESTRICT,
				did INTEGER NOT NULL REFERENCES director (did) ON DELETE RESTRICT
			);
			`)
		return err
	},
	func(tx migration.LimitedTx) error {
		_, err := tx.Exec(`
			CREATE INDEX movie_name_idx ON movie (movie_name COLLATE "C");
			CREATE INDEX movie_year_idx ON movie (create_year);
			CREATE INDEX movie_genre_mid_idx ON movie_genre (mid);
			CREATE INDEX movie_company_mid_idx ON movie_company (mid);
			CREATE INDEX movie_nation_mid_idx ON movie_nation (mid);
			CREATE INDEX casting_mid_idx ON casting (mid);
			CREATE INDEX casting_did_idx ON casting (did);
			CREATE INDEX director_dname_idx ON director (dname);
			`)
		return err
	},
}

// migrations maps a driver name to its schema migrations. Drivers missing
// from this map (MySQL) use a schema managed outside of this package.
var migrations = map[string][]migration.Migrator{
	"sqlite":   sqliteMigrations,
	"sqlite3":  sqliteMigrations,
	"postgres": postgresMigrations,
}
