package main

import (
	"context"
	"os"
	"time"

	"github.com/shandysiswandi/goatm/internal/app"
	"github.com/shandysiswandi/goatm/internal/pkg/pkgerror"
)

func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start the session and wait for it to end or a termination signal
	<-wait

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := application.Stop(ctx); err != nil {
		cancel()
		os.Exit(pkgerror.ExitCode(err))
	}
}
