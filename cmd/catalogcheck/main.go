// Command catalogcheck loads a book dataset and reports what a lookup will
// see: how many books are dated and which years resolve to more than one book.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"

	"github.com/llehouerou/bookdate/internal/catalog"
	"github.com/llehouerou/bookdate/internal/config"
)

type summary struct {
	Path string `json:"path"`
	catalog.Stats
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("catalogcheck: ")

	asJSON := flag.Bool("json", false, "print the report as JSON")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: catalogcheck [-json] [dataset]")
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	path := cfg.ResolveDataset()
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	cat, err := catalog.LoadWith(path, catalog.LoadOptions{Comma: cfg.DelimiterRune()})
	if err != nil {
		log.Fatal(err)
	}

	s := summary{Path: path, Stats: cat.Stats()}
	if *asJSON {
		err = writeJSON(os.Stdout, s)
	} else {
		err = writeText(os.Stdout, s)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func writeJSON(w io.Writer, s summary) error {
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func writeText(w io.Writer, s summary) error {
	_, err := fmt.Fprintf(w, "%s: %s books (%s dated, %s undated)\n",
		s.Path, humanize.Comma(int64(s.Total)), humanize.Comma(int64(s.Dated)), humanize.Comma(int64(s.Undated)))
	if err != nil {
		return err
	}

	if s.Dated > 0 {
		if _, err := fmt.Fprintf(w, "years: %d to %d\n", s.MinYear, s.MaxYear); err != nil {
			return err
		}
	}

	if len(s.Duplicates) == 0 {
		_, err = fmt.Fprintln(w, "every year maps to a single book")
		return err
	}

	if _, err := fmt.Fprintf(w, "%s shared years (lookups return the first book):\n",
		humanize.Comma(int64(len(s.Duplicates)))); err != nil {
		return err
	}
	for _, d := range s.Duplicates {
		if _, err := fmt.Fprintf(w, "  %d: %s books, returns %q\n", d.Year, humanize.Comma(int64(d.Count)), d.Winner); err != nil {
			return err
		}
	}
	return nil
}
