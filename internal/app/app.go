package app

import (
	"context"

	"github.com/shandysiswandi/goatm/internal/atm/inbound"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgprompt"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgroutine"
	"github.com/shandysiswandi/goatm/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	configPath string
	config     pkgconfig.Config

	// libraries
	uuid      pkguid.StringID
	snowflake pkguid.NumberID
	goroutine *pkgroutine.Manager

	// terminal
	router     *pkgrouter.Router
	prompt     *pkgprompt.Prompt
	controller *inbound.Controller

	//
	closerFn map[string]func(context.Context) error
}

func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:        ctx,
		cancel:     cancel,
		configPath: "./config/config.yaml",
	}

	app.initConfig()
	app.initLogging()
	app.initLibraries()
	app.initTerminal()
	app.initModules()
	app.initClosers()

	return app
}
