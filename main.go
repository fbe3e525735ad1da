package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"

	"github.com/llehouerou/bookdate/internal/app"
	"github.com/llehouerou/bookdate/internal/config"
	"github.com/llehouerou/bookdate/internal/errmsg"
	"github.com/llehouerou/bookdate/internal/logging"
)

// exitInterrupted is the shell convention for termination by SIGINT.
const exitInterrupted = 130

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		// Restore default handling so a second Ctrl+C kills the process.
		<-ctx.Done()
		stop()
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpConfigLoad, err))
		return 1
	}

	logger := logging.New(os.Stderr, cfg.GetLogLevel())
	logger.Debug("configuration loaded", "sources", cfg.Sources, "dataset", cfg.Dataset)

	interactive := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())

	a, err := app.New(ctx, cfg, app.Streams{
		In:          os.Stdin,
		Out:         os.Stdout,
		Interactive: interactive,
	}, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		if ctx.Err() != nil {
			return exitInterrupted
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
