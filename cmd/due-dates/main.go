// Command due-dates prints the next payment due date for every unit with
// auto-billing enabled.
//
// Usage:
//
//	due-dates
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/condoview/condoview-backend/internal/adapter/postgres"
	"github.com/condoview/condoview-backend/internal/adapter/postgres/history"
	"github.com/condoview/condoview-backend/internal/adapter/postgres/resident"
	"github.com/condoview/condoview-backend/internal/adapter/postgres/unit"
	"github.com/condoview/condoview-backend/internal/config"
	"github.com/condoview/condoview-backend/internal/service/occupancy"
)

func main() {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	svc := occupancy.NewService(
		slog.Default(),
		unit.New(pool),
		resident.New(pool),
		history.New(pool),
		postgres.NewTxManager(pool),
		config.OccupancyConfig{},
	)

	dues, err := svc.UpcomingDueDates(ctx, time.Now().UTC())
	if err != nil {
		log.Fatalf("compute due dates: %v", err)
	}

	for _, d := range dues {
		fmt.Printf("%s\tunit %s\tR$ %.2f\tdue %s\n",
			d.UnitID, d.UnitNumber, d.MonthlyAmount, d.NextDueDate.Format(time.DateOnly))
	}
	fmt.Printf("%d auto-billed units.\n", len(dues))
}
