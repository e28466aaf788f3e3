// Command server runs the condoview backend.
//
// Configuration comes from CONFIG_PATH (YAML) and environment variables;
// DATABASE_DSN is required.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/condoview/condoview-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}
