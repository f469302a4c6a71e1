package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/shandysiswandi/goatm/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goatm/internal/pkg/pkglog"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgprompt"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goatm/internal/pkg/pkguid"
)

// defaultConfig is used for every key the config file leaves out, and for
// all of them when there is no config file.
func defaultConfig() map[string]any {
	return map[string]any{
		"log.level":           "info",
		"log.output":          "stderr",
		"atm.currency":        "₹",
		"atm.initial_balance": "2607.04",
		"atm.min_deposit":     "100",
		"atm.credentials": []map[string]any{
			{"identifier": "**123", "secret": "12345"},
		},
	}
}

func (a *App) initConfig() {
	cfg, err := pkgconfig.NewViper(a.configPath, defaultConfig())
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	a.config = cfg
}

func (a *App) initLogging() {
	w, closer, err := logOutput(a.config.GetString("log.output"))
	if err != nil {
		slog.Error("failed to open log output", "error", err)
		os.Exit(1)
	}

	pkglog.InitLogging(w, pkglog.ParseLevel(a.config.GetString("log.level")))

	if closer != nil {
		a.addCloser("Log Output", func(context.Context) error { return closer.Close() })
	}
}

// logOutput resolves the log.output setting. Anything that is not a known
// stream name is treated as a file path and opened for appending.
func logOutput(target string) (io.Writer, io.Closer, error) {
	switch target {
	case "", "stderr":
		return os.Stderr, nil, nil
	case "stdout":
		return os.Stdout, nil, nil
	case "discard":
		return io.Discard, nil, nil
	}

	f, err := os.OpenFile(target, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}

	return f, f, nil
}

func (a *App) initLibraries() {
	sf, err := pkguid.NewSnowflake()
	if err != nil {
		slog.Error("failed to init snowflake", "error", err)
		os.Exit(1)
	}

	// one session goroutine at a time
	a.goroutine = pkgroutine.NewManager(1)
	a.uuid = pkguid.NewUUID()
	a.snowflake = sf
}

func (a *App) initTerminal() {
	a.router = pkgrouter.NewRouter(a.uuid)
	a.prompt = pkgprompt.New(os.Stdin, os.Stdout)
}

func (a *App) initClosers() {
	a.addCloser("Config", func(context.Context) error {
		return a.config.Close()
	})
}

func (a *App) addCloser(name string, fn func(context.Context) error) {
	if a.closerFn == nil {
		a.closerFn = map[string]func(context.Context) error{}
	}

	a.closerFn[name] = fn
}
