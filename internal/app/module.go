package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/goatm/internal/atm"
)

func (a *App) initModules() {
	controller, err := atm.New(atm.Dependency{
		Config:    a.config,
		Router:    a.router,
		Prompt:    a.prompt,
		SessionID: a.uuid,
		TxID:      a.snowflake,
	})
	if err != nil {
		slog.Error("failed to init module atm", "error", err)
		os.Exit(1)
	}

	a.controller = controller
}
