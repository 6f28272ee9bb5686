// The cleanup binary soft-deletes favorites older than the retention window.
// It is intended to run from cron; pass --force for non-interactive use.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/mydictionary/backend/internal/adapter/notifier"
	"github.com/mydictionary/backend/internal/adapter/postgres"
	favoriterepo "github.com/mydictionary/backend/internal/adapter/postgres/favorite"
	userrepo "github.com/mydictionary/backend/internal/adapter/postgres/user"
	"github.com/mydictionary/backend/internal/app"
	"github.com/mydictionary/backend/internal/config"
	"github.com/mydictionary/backend/internal/service/cleanup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cleanup:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		days   int
		dryRun bool
		notify bool
		force  bool
	)
	flag.IntVar(&days, "days", 0, "retention threshold in days (default from config)")
	flag.BoolVar(&dryRun, "dry-run", false, "report eligible favorites without deleting")
	flag.BoolVar(&notify, "notify", false, "send a notice to each affected owner")
	flag.BoolVar(&force, "force", false, "skip the confirmation prompt")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if days == 0 {
		days = cfg.Cleanup.RetentionDays
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	sweeper := cleanup.NewSweeper(
		logger,
		favoriterepo.New(pool),
		userrepo.New(pool),
		postgres.NewTxManager(pool),
		notifier.NewLogNotifier(logger),
		stdinConfirmer{},
	)

	report, err := sweeper.Sweep(ctx, cleanup.Options{
		ThresholdDays: days,
		DryRun:        dryRun,
		Notify:        notify,
		Force:         force,
	})
	if err != nil {
		return err
	}

	printReport(report, dryRun)

	if len(report.Errors) > 0 {
		logger.Warn("sweep finished with errors", slog.Int("count", len(report.Errors)))
	}
	return nil
}

// stdinConfirmer asks the operator on the terminal.
type stdinConfirmer struct{}

func (stdinConfirmer) Confirm(_ context.Context, question string) (bool, error) {
	fmt.Printf("%s [y/N]: ", question)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

func printReport(report *cleanup.Report, dryRun bool) {
	if report.Cancelled {
		fmt.Println("Cancelled. Nothing was deleted.")
		return
	}
	if report.TotalChecked == 0 {
		fmt.Printf("No favorites older than %s. Nothing to do.\n", report.Cutoff.Format("2006-01-02"))
		return
	}

	if dryRun {
		fmt.Printf("Dry run: %d favorites of %d users are older than %s\n\n",
			report.TotalChecked, report.AffectedOwners, report.Cutoff.Format("2006-01-02"))
		for _, g := range report.Groups {
			fmt.Printf("owner %s (%d favorites):\n", g.OwnerID, len(g.Favorites))
			for _, f := range g.Favorites {
				fmt.Printf("  %s  %-30s  created %s\n", f.ID, f.Word, f.CreatedAt.Format("2006-01-02"))
			}
		}
		return
	}

	fmt.Printf("Checked %d favorites, moved %d to trash (%d users affected).\n",
		report.TotalChecked, report.DeletedCount, report.AffectedOwners)
	for _, e := range report.Errors {
		if e.FavoriteID != uuid.Nil {
			fmt.Printf("  failed: favorite %s: %s\n", e.FavoriteID, e.Message)
		} else {
			fmt.Printf("  failed: owner %s: %s\n", e.OwnerID, e.Message)
		}
	}
}
