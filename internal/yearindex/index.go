// Package yearindex mirrors a catalog into an in-memory SQLite database and
// answers year lookups with SQL.
package yearindex

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3" // dialect registration
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/bookdate/internal/catalog"
	"github.com/llehouerou/bookdate/internal/db"
)

const (
	driverName  = "sqlite"
	dialectName = "sqlite3"

	// insertBatch keeps each INSERT well under SQLite's bound parameter limit.
	insertBatch = 500
)

// Index is a read-only SQL view of a catalog.
type Index struct {
	db      *sqlx.DB
	dialect goqu.DialectWrapper
}

// Verify Index implements catalog.Finder at compile time.
var _ catalog.Finder = (*Index)(nil)

type bookRow struct {
	Title  string        `db:"title"`
	Author string        `db:"author"`
	Date   sql.NullInt64 `db:"date"`
}

func (r bookRow) book() catalog.Book {
	return catalog.Book{
		Title:  r.Title,
		Author: r.Author,
		Date:   int(db.NullInt64Value(r.Date)),
		Dated:  r.Date.Valid,
	}
}

// Build copies every book of cat, in file order, into a fresh in-memory
// database. Undated books are stored with a NULL date.
func Build(ctx context.Context, cat *catalog.Catalog) (*Index, error) {
	conn, err := db.OpenMemory(ctx, driverName)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}

	if err := initSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create index schema: %w", err)
	}

	ix := &Index{
		db:      sqlx.NewDb(conn, driverName),
		dialect: goqu.Dialect(dialectName),
	}

	if err := ix.insertAll(ctx, cat); err != nil {
		conn.Close()
		return nil, fmt.Errorf("populate index: %w", err)
	}
	return ix, nil
}

func (ix *Index) insertAll(ctx context.Context, cat *catalog.Catalog) error {
	return db.WithTx(ctx, ix.db.DB, func(tx *sql.Tx) error {
		rows := make([]any, 0, insertBatch)
		flush := func() error {
			if len(rows) == 0 {
				return nil
			}
			query, args, err := ix.dialect.Insert(tableBooks).Prepared(true).Rows(rows...).ToSQL()
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return err
			}
			rows = rows[:0]
			return nil
		}

		for i := range cat.Len() {
			b := cat.At(i)
			rows = append(rows, goqu.Record{
				colPosition: i,
				colTitle:    b.Title,
				colAuthor:   b.Author,
				colDate:     db.IntToNull(b.Date, b.Dated),
			})
			if len(rows) == insertBatch {
				if err := flush(); err != nil {
					return err
				}
			}
		}
		return flush()
	})
}

// FindByYear implements catalog.Finder.
func (ix *Index) FindByYear(year int) (catalog.Book, error) {
	return ix.FindByYearContext(context.Background(), year)
}

// FindByYearContext returns the book with the lowest file position whose
// date equals year, or catalog.ErrNotFound.
func (ix *Index) FindByYearContext(ctx context.Context, year int) (catalog.Book, error) {
	query, args, err := ix.dialect.From(tableBooks).
		Select(colTitle, colAuthor, colDate).
		Where(goqu.C(colDate).Eq(year)).
		Order(goqu.C(colPosition).Asc()).
		Limit(1).
		Prepared(true).
		ToSQL()
	if err != nil {
		return catalog.Book{}, err
	}

	var row bookRow
	if err := ix.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Book{}, catalog.ErrNotFound
		}
		return catalog.Book{}, err
	}
	return row.book(), nil
}

// Count returns the number of indexed books, undated ones included.
func (ix *Index) Count(ctx context.Context) (int, error) {
	query, args, err := ix.dialect.From(tableBooks).
		Select(goqu.COUNT(goqu.Star())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, err
	}

	var n int
	err = ix.db.GetContext(ctx, &n, query, args...)
	return n, err
}

// Close releases the database.
func (ix *Index) Close() error {
	return ix.db.Close()
}
