package main

import (
	"fmt"
	"time"

	"meeting-room-booking/internal/infra/db"
	"meeting-room-booking/internal/infra/legacy"
	sqlc "meeting-room-booking/internal/infra/sqlc/generated"
	"meeting-room-booking/internal/pkg/config"

	"github.com/spf13/cobra"
)

type Options struct {
	SQLitePath string
	TimeZone   string
	DryRun     bool
}

// NewRootCommand creates the import command. PostgreSQL settings come from the
// same DB_* environment variables the server reads.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:   "sqlite-import",
		Short: "Copy rooms, bookings and history from the legacy SQLite file",
		Long: `Copy rooms, active bookings and booking history from the legacy SQLite
database into PostgreSQL. Rows that already exist are left untouched, so the
import can be re-run safely.

Examples:
  sqlite-import --sqlite ./booking.db
  sqlite-import --sqlite ./booking.db --dry-run`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.SQLitePath, "sqlite", "booking.db", "path to the legacy SQLite database")
	cmd.Flags().StringVar(&opts.TimeZone, "timezone", "Asia/Tokyo", "zone the legacy timestamps were written in")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "read and count rows without writing")

	return cmd
}

func runImport(cmd *cobra.Command, opts *Options) error {
	ctx := cmd.Context()

	loc, err := time.LoadLocation(opts.TimeZone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", opts.TimeZone, err)
	}

	src, err := legacy.Open(opts.SQLitePath, loc)
	if err != nil {
		return err
	}
	defer src.Close()

	var importer *legacy.Importer
	if opts.DryRun {
		importer = legacy.NewImporter(src, nil, nil)
	} else {
		dbCfg, err := config.LoadDBConfig()
		if err != nil {
			return err
		}
		pool, cleanup, err := db.Connect(dbCfg)
		if err != nil {
			return err
		}
		defer cleanup()
		importer = legacy.NewImporter(src, pool, sqlc.New())
	}

	counts, err := importer.Run(ctx, opts.DryRun)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.DryRun {
		fmt.Fprintln(out, "dry run, nothing written")
	}
	fmt.Fprint(out, counts.String())
	return nil
}
