package catalog

// Finder looks up the first book published in a given year.
type Finder interface {
	FindByYear(year int) (Book, error)
}

// Catalog is an immutable, ordered collection of books.
type Catalog struct {
	books []Book
}

// Verify Catalog implements Finder at compile time.
var _ Finder = (*Catalog)(nil)

// New builds a catalog from books, keeping their order.
// The slice is copied so later changes by the caller are not visible.
func New(books []Book) *Catalog {
	c := &Catalog{books: make([]Book, len(books))}
	copy(c.books, books)
	return c
}

// Len returns the number of books, undated ones included.
func (c *Catalog) Len() int {
	return len(c.books)
}

// At returns the book at position i in file order.
func (c *Catalog) At(i int) Book {
	return c.books[i]
}

// Books returns a copy of all books in file order.
func (c *Catalog) Books() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

// FindByYear returns the first book, in file order, whose date equals year.
// Undated books are skipped. Returns ErrNotFound when nothing matches.
func (c *Catalog) FindByYear(year int) (Book, error) {
	for _, b := range c.books {
		if b.Dated && b.Date == year {
			return b, nil
		}
	}
	return Book{}, ErrNotFound
}
