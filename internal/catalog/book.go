// Package catalog loads a book dataset and looks books up by publication year.
package catalog

import "strconv"

// Book is one dataset entry.
type Book struct {
	Title  string
	Author string
	Date   int
	// Dated is false when the date cell was not an integer. Such a book never
	// matches a lookup.
	Dated bool
}

// DateString returns the year as text, or an empty string for undated books.
func (b Book) DateString() string {
	if !b.Dated {
		return ""
	}
	return strconv.Itoa(b.Date)
}
