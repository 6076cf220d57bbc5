package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/finleyross14/PeakOrderApp/internal/adapter/repo"
	"github.com/finleyross14/PeakOrderApp/internal/infra"
	"github.com/finleyross14/PeakOrderApp/internal/sqlinline"
)

// Backend tooling for the fundraiser operator: payment confirmations,
// event activation, and publishing the final number all happen here rather
// than through a web admin panel.
func main() {
	var (
		initFlag            bool
		confirmDonationFlag string
		confirmGuessFlag    string
		unpaidFlag          bool
		activateFlag        string
		finalEventFlag      string
		finalValueFlag      int64
	)

	flag.BoolVar(&initFlag, "init", false, "apply the database schema and exit")
	flag.StringVar(&confirmDonationFlag, "confirm-donation", "", "donation ID to mark paid")
	flag.StringVar(&confirmGuessFlag, "confirm-guess", "", "guess ID to mark paid")
	flag.BoolVar(&unpaidFlag, "unpaid", false, "mark the donation/guess unpaid instead of paid")
	flag.StringVar(&activateFlag, "activate", "", "event ID to activate")
	flag.StringVar(&finalEventFlag, "final-event", "", "event ID to finalize")
	flag.Int64Var(&finalValueFlag, "final-value", 0, "final peak-order number (with -final-event)")
	flag.Parse()

	_ = godotenv.Load()

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		exitWithError(errors.New("DATABASE_URL is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		exitWithError(fmt.Errorf("failed to connect database: %w", err))
	}
	defer pool.Close()

	logger := infra.NewLogger("cli").With().Str("cmd", "admin").Logger()
	runner := infra.NewSQLRunner(pool, logger)
	store := repo.NewPG(runner)

	switch {
	case initFlag:
		if _, err := runner.Exec(ctx, sqlinline.QSchema); err != nil {
			exitWithError(fmt.Errorf("failed to apply schema: %w", err))
		}
		fmt.Println("schema applied")
	case confirmDonationFlag != "":
		if err := store.SetDonationPaid(ctx, confirmDonationFlag, !unpaidFlag); err != nil {
			exitWithError(fmt.Errorf("failed to update donation: %w", err))
		}
		fmt.Printf("donation %s paid=%t\n", confirmDonationFlag, !unpaidFlag)
	case confirmGuessFlag != "":
		if err := store.SetGuessPaid(ctx, confirmGuessFlag, !unpaidFlag); err != nil {
			exitWithError(fmt.Errorf("failed to update guess: %w", err))
		}
		fmt.Printf("guess %s paid=%t\n", confirmGuessFlag, !unpaidFlag)
	case activateFlag != "":
		if err := store.ActivateEvent(ctx, activateFlag); err != nil {
			exitWithError(fmt.Errorf("failed to activate event: %w", err))
		}
		fmt.Printf("event %s activated\n", activateFlag)
	case finalEventFlag != "":
		if err := store.SetFinalPeakOrders(ctx, finalEventFlag, finalValueFlag); err != nil {
			exitWithError(fmt.Errorf("failed to set final peak orders: %w", err))
		}
		fmt.Printf("event %s final peak orders set to %d\n", finalEventFlag, finalValueFlag)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func exitWithError(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
