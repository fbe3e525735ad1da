package catalog

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "books.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestLoad_WellFormed(t *testing.T) {
	path := writeDataset(t, "Title,Author,Date\n1984,George Orwell,1949\nDune,Frank Herbert,1965\n")

	cat, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 2, cat.Len())

	assert.Equal(t, Book{Title: "1984", Author: "George Orwell", Date: 1949, Dated: true}, cat.At(0))
	assert.Equal(t, Book{Title: "Dune", Author: "Frank Herbert", Date: 1965, Dated: true}, cat.At(1))
}

func TestLoad_HeaderOnly(t *testing.T) {
	path := writeDataset(t, "Title,Author,Date\n")

	cat, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")

	_, err := Load(path)

	var dsErr *DataSourceError
	require.ErrorAs(t, err, &dsErr)
	assert.Equal(t, path, dsErr.Path)
	assert.ErrorIs(t, err, ErrMissingFile)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeDataset(t, "")

	_, err := Load(path)

	var dsErr *DataSourceError
	require.ErrorAs(t, err, &dsErr)
	assert.ErrorIs(t, err, ErrMissingHeader)
}

func TestLoad_MissingColumn(t *testing.T) {
	tests := []struct {
		name    string
		content string
		column  string
	}{
		{"no title", "Name,Author,Date\nx,y,1\n", ColumnTitle},
		{"no author", "Title,Writer,Date\nx,y,1\n", ColumnAuthor},
		{"no date", "Title,Author,Year\nx,y,1\n", ColumnDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeDataset(t, tt.content))

			var dsErr *DataSourceError
			require.ErrorAs(t, err, &dsErr)
			assert.ErrorIs(t, err, ErrMissingColumn)
			assert.Equal(t, 1, dsErr.Line)
			assert.Contains(t, err.Error(), tt.column)
		})
	}
}

func TestLoad_RaggedRow(t *testing.T) {
	path := writeDataset(t, "Title,Author,Date\n1984,George Orwell,1949\nBroken,1950\n")

	_, err := Load(path)

	var dsErr *DataSourceError
	require.ErrorAs(t, err, &dsErr)
	assert.Equal(t, 3, dsErr.Line)
	assert.ErrorIs(t, err, csv.ErrFieldCount)
}

func TestLoad_BadQuoting(t *testing.T) {
	path := writeDataset(t, "Title,Author,Date\n\"unterminated,George Orwell,1949\n")

	_, err := Load(path)

	var dsErr *DataSourceError
	require.ErrorAs(t, err, &dsErr)
	var pe *csv.ParseError
	assert.ErrorAs(t, err, &pe)
}

func TestRead_HeaderVariants(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"reordered", "Date,Author,Title\n1949,George Orwell,1984\n"},
		{"lowercase", "title,author,date\n1984,George Orwell,1949\n"},
		{"padded", " Title , Author , Date \n1984,George Orwell,1949\n"},
		{"byte order mark", "\ufeffTitle,Author,Date\n1984,George Orwell,1949\n"},
		{"extra columns", "Id,Title,Author,Date,Pages\n7,1984,George Orwell,1949,328\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat, err := Read(strings.NewReader(tt.content), "test", LoadOptions{})
			require.NoError(t, err)
			require.Equal(t, 1, cat.Len())
			assert.Equal(t, Book{Title: "1984", Author: "George Orwell", Date: 1949, Dated: true}, cat.At(0))
		})
	}
}

func TestRead_UnparsableDate(t *testing.T) {
	content := "Title,Author,Date\nUnknown,Anon,circa 1900\nBlank,Anon,\nPadded,Anon, 1901 \n"

	cat, err := Read(strings.NewReader(content), "test", LoadOptions{})
	require.NoError(t, err)
	require.Equal(t, 3, cat.Len())

	if cat.At(0).Dated {
		t.Error("expected 'circa 1900' to be undated")
	}
	if cat.At(1).Dated {
		t.Error("expected empty date to be undated")
	}
	if got := cat.At(2); !got.Dated || got.Date != 1901 {
		t.Errorf("padded date = %+v, want 1901", got)
	}
}

func TestRead_QuotedFields(t *testing.T) {
	content := "Title,Author,Date\n\"War and Peace, Vol. 1\",\"Tolstoy, Leo\",1869\n"

	cat, err := Read(strings.NewReader(content), "test", LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "War and Peace, Vol. 1", cat.At(0).Title)
	assert.Equal(t, "Tolstoy, Leo", cat.At(0).Author)
}

func TestRead_Options(t *testing.T) {
	content := "# exported catalog\nTitle;Author;Date\n1984;George Orwell;1949\n"

	cat, err := Read(strings.NewReader(content), "test", LoadOptions{Comma: ';', Comment: '#'})
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())
	assert.Equal(t, 1949, cat.At(0).Date)
}

func TestRead_SkipsBlankLines(t *testing.T) {
	content := "Title,Author,Date\n\n1984,George Orwell,1949\n\n"

	cat, err := Read(strings.NewReader(content), "test", LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())
}

func TestDataSourceError_Message(t *testing.T) {
	err := &DataSourceError{Path: "books.csv", Line: 4, Err: errors.New("boom")}
	if got, want := err.Error(), "dataset books.csv line 4: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = &DataSourceError{Path: "books.csv", Err: errors.New("boom")}
	if got, want := err.Error(), "dataset books.csv: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
