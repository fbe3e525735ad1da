package catalog

import (
	"errors"
	"strconv"
	"strings"
)

var errEmptyYear = errors.New("empty input")

// ParseYear parses user text as a year. Surrounding whitespace is ignored.
func ParseYear(text string) (int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, &InputError{Input: text, Err: errEmptyYear}
	}
	year, err := strconv.Atoi(s)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &InputError{Input: text, Err: err}
	}
	return year, nil
}

// Lookup parses text as a year and asks f for the first matching book.
// It returns an *InputError for unparsable text and ErrNotFound when f has
// no book for that year.
func Lookup(f Finder, text string) (Book, error) {
	year, err := ParseYear(text)
	if err != nil {
		return Book{}, err
	}
	return f.FindByYear(year)
}
