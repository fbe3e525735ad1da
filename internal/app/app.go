// internal/app/app.go
package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/llehouerou/bookdate/internal/catalog"
	"github.com/llehouerou/bookdate/internal/config"
	"github.com/llehouerou/bookdate/internal/errmsg"
	"github.com/llehouerou/bookdate/internal/prompt"
	"github.com/llehouerou/bookdate/internal/report"
	"github.com/llehouerou/bookdate/internal/ui/yearinput"
	"github.com/llehouerou/bookdate/internal/yearindex"
)

// Streams are the program's standard streams.
type Streams struct {
	In  io.Reader
	Out io.Writer

	// Interactive selects the terminal prompt instead of line input.
	Interactive bool
	// Plain disables styling of the result.
	Plain bool
}

// App holds the loaded catalog and everything needed to answer one lookup.
type App struct {
	Catalog *catalog.Catalog
	Session *Session

	closer io.Closer
	logger *slog.Logger
}

// New loads the dataset named by cfg and prepares the lookup backend.
// Dataset failures are returned as *Error wrapping a *catalog.DataSourceError.
func New(ctx context.Context, cfg *config.Config, streams Streams, logger *slog.Logger) (*App, error) {
	path := cfg.ResolveDataset()
	cat, err := catalog.LoadWith(path, catalog.LoadOptions{Comma: cfg.DelimiterRune()})
	if err != nil {
		return nil, &Error{Op: errmsg.OpDatasetLoad, Err: err}
	}
	logger.Debug("catalog loaded", "path", path, "books", cat.Len())

	a := &App{Catalog: cat, logger: logger}

	var finder catalog.Finder = cat
	if cfg.GetBackend() == config.BackendSQLite {
		ix, err := yearindex.Build(ctx, cat)
		if err != nil {
			return nil, &Error{Op: errmsg.OpIndexBuild, Context: path, Err: err}
		}
		finder = ix
		a.closer = ix
	}
	logger.Debug("lookup backend ready", "backend", cfg.GetBackend())

	var p prompt.Prompter
	if streams.Interactive {
		p = yearinput.NewPrompter(streams.In, streams.Out)
	} else {
		p = prompt.NewLine(streams.In, streams.Out)
	}

	rep := report.New(streams.Out)
	if streams.Plain {
		rep = report.NewPlain(streams.Out)
	}

	a.Session = &Session{
		Finder:      finder,
		Prompter:    p,
		Report:      rep,
		MaxAttempts: cfg.GetMaxAttempts(),
		Logger:      logger,
	}
	return a, nil
}

// Run performs one lookup session.
func (a *App) Run(ctx context.Context) error {
	return a.Session.Run(ctx)
}

// Close releases the lookup backend.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}
