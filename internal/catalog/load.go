package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// Required header columns.
const (
	ColumnTitle  = "Title"
	ColumnAuthor = "Author"
	ColumnDate   = "Date"
)

const bom = "\ufeff"

// LoadOptions tunes how a dataset is parsed. The zero value reads standard
// comma-separated files.
type LoadOptions struct {
	Comma   rune // field delimiter, ',' when zero
	Comment rune // lines starting with this rune are ignored, none when zero
}

// Load reads the dataset at path with default options.
func Load(path string) (*Catalog, error) {
	return LoadWith(path, LoadOptions{})
}

// LoadWith reads the dataset at path.
// All failures are returned as *DataSourceError.
func LoadWith(path string, opts LoadOptions) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %w", ErrMissingFile, err)
		}
		return nil, &DataSourceError{Path: path, Err: err}
	}
	defer f.Close()

	return Read(f, path, opts)
}

// Read parses a dataset from r. name identifies the source in errors.
func Read(r io.Reader, name string, opts LoadOptions) (*Catalog, error) {
	cr := csv.NewReader(r)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.Comment = opts.Comment
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &DataSourceError{Path: name, Err: ErrMissingHeader}
	}
	if err != nil {
		return nil, parseFailure(name, err)
	}

	cols, err := locateColumns(header)
	if err != nil {
		line, _ := cr.FieldPos(0)
		return nil, &DataSourceError{Path: name, Line: line, Err: err}
	}

	var books []Book
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, parseFailure(name, err)
		}
		books = append(books, cols.book(rec))
	}

	return &Catalog{books: books}, nil
}

type columns struct {
	title, author, date int
}

func locateColumns(header []string) (columns, error) {
	idx := map[string]int{}
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, bom)
		}
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}

	find := func(name string) (int, error) {
		i, ok := idx[strings.ToLower(name)]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		return i, nil
	}

	var cols columns
	var err error
	if cols.title, err = find(ColumnTitle); err != nil {
		return cols, err
	}
	if cols.author, err = find(ColumnAuthor); err != nil {
		return cols, err
	}
	if cols.date, err = find(ColumnDate); err != nil {
		return cols, err
	}
	return cols, nil
}

func (c columns) book(rec []string) Book {
	b := Book{
		Title:  rec[c.title],
		Author: rec[c.author],
	}
	if year, err := strconv.Atoi(strings.TrimSpace(rec[c.date])); err == nil {
		b.Date = year
		b.Dated = true
	}
	return b
}

func parseFailure(name string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &DataSourceError{Path: name, Line: pe.Line, Err: pe}
	}
	return &DataSourceError{Path: name, Err: err}
}
