package search

import (
	"context"
	"log"

	"github.com/BurntSushi/cinedex/catalog"
)

// Example New finds the newest dramas listed under ㄱ using methods on a
// Searcher value.
func ExampleNew() {
	var db *catalog.DB // needs to be created with catalog.Open

	s := New(db).Genres("드라마").Index("ㄱ").Sort("year", "desc")
	page, err := s.Results(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	for _, m := range page.Movies {
		log.Println(m)
	}
}

// Example Query finds the newest dramas listed under ㄱ using a query
// string.
func ExampleQuery() {
	var db *catalog.DB // needs to be created with catalog.Open

	s, err := Query(db, "{genre:드라마} {index:ㄱ} {sort:year desc}")
	if err != nil {
		log.Fatal(err)
	}

	page, err := s.Results(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	for _, m := range page.Movies {
		log.Println(m)
	}
}
