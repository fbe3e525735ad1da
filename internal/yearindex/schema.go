package yearindex

import (
	"context"
	"database/sql"
)

const (
	tableBooks  = "books"
	colPosition = "position"
	colTitle    = "title"
	colAuthor   = "author"
	colDate     = "date"
)

func initSchema(ctx context.Context, conn *sql.DB) error {
	_, err := conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS books (
			position INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			author TEXT NOT NULL,
			date INTEGER
		);

		CREATE INDEX IF NOT EXISTS idx_books_date ON books(date, position);
	`)
	return err
}
