// Command almanac generates the Javanese date of every day in a Gregorian
// range and writes it to the SQLite almanac store, a YAML file, or both.
//
// Usage:
//
//	go run ./cmd/almanac -start 2024-01-01 -end 2024-12-31 -db data/almanac.db
//	go run ./cmd/almanac -start 2024-01-01 -end 2024-01-31 -db "" -yaml january.yaml
//
// Writing to the store is idempotent: rows for dates already present are
// replaced.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	cerrors "cloudeng.io/errors"
	"gopkg.in/yaml.v3"

	"github.com/zapponejosh/tanggalan-api/internal/calendar"
	"github.com/zapponejosh/tanggalan-api/internal/database"
	"github.com/zapponejosh/tanggalan-api/internal/logger"
)

// maxDays bounds a single run to a little over a century.
const maxDays = 40000

type options struct {
	start, end string
	dbPath     string
	yamlPath   string
	timezone   string
}

func main() {
	var opts options
	flag.StringVar(&opts.start, "start", "", "First Gregorian date, YYYY-MM-DD (required)")
	flag.StringVar(&opts.end, "end", "", "Last Gregorian date, YYYY-MM-DD (required)")
	flag.StringVar(&opts.dbPath, "db", "data/almanac.db", "Path to SQLite database; empty to skip")
	flag.StringVar(&opts.yamlPath, "yaml", "", "Path of a YAML file to write; - for stdout")
	flag.StringVar(&opts.timezone, "tz", "Asia/Jakarta", "Time zone the dates are taken in")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	level := "info"
	if *verbose {
		level = "debug"
	}
	log := logger.New(os.Stderr, level, "text")

	if err := run(context.Background(), opts, log); err != nil {
		log.Error("almanac failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func (o options) validate() (start, end time.Time, err error) {
	errs := cerrors.M{}
	loc, lerr := time.LoadLocation(o.timezone)
	errs.Append(lerr)
	if loc == nil {
		loc = time.UTC
	}
	start, serr := time.ParseInLocation(database.DateLayout, o.start, loc)
	if serr != nil {
		errs.Append(fmt.Errorf("-start: %w", serr))
	}
	end, eerr := time.ParseInLocation(database.DateLayout, o.end, loc)
	if eerr != nil {
		errs.Append(fmt.Errorf("-end: %w", eerr))
	}
	if serr == nil && eerr == nil {
		if end.Before(start) {
			errs.Append(fmt.Errorf("-end %s is before -start %s", o.end, o.start))
		} else if n := end.Sub(start).Hours()/24 + 1; n > maxDays {
			errs.Append(fmt.Errorf("range of %.0f days exceeds %d", n, maxDays))
		}
	}
	if o.dbPath == "" && o.yamlPath == "" {
		errs.Append(fmt.Errorf("nothing to write: set -db or -yaml"))
	}
	return start, end, errs.Err()
}

func run(ctx context.Context, opts options, log *slog.Logger) error {
	startTime := time.Now()

	start, end, err := opts.validate()
	if err != nil {
		return err
	}

	// =========================================================================
	// Step 1: Generate days
	// =========================================================================
	var days []database.AlmanacDay
	for d := range calendar.Days(start, end) {
		days = append(days, database.NewAlmanacDay(d))
		if len(days)%1000 == 0 {
			log.Debug("generate progress", slog.Int("days", len(days)))
		}
	}
	log.Info("generated days",
		slog.Int("days", len(days)),
		slog.String("first", days[0].Date),
		slog.String("last", days[len(days)-1].Date),
	)

	// =========================================================================
	// Step 2: Write to the store and/or YAML
	// =========================================================================
	if opts.dbPath != "" {
		if err := writeDB(ctx, opts.dbPath, days, log); err != nil {
			return err
		}
	}
	if opts.yamlPath != "" {
		if err := writeYAMLFile(opts.yamlPath, days); err != nil {
			return err
		}
		log.Info("wrote YAML", slog.String("path", opts.yamlPath))
	}

	log.Info("almanac complete", slog.Duration("elapsed", time.Since(startTime).Round(time.Millisecond)))
	return nil
}

func writeDB(ctx context.Context, path string, days []database.AlmanacDay, log *slog.Logger) error {
	db, err := database.Open(database.DefaultConfig(path), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	migrated, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	log.Debug("migrations complete", slog.Int("applied", migrated))

	written, err := db.UpsertDays(ctx, days)
	if err != nil {
		return fmt.Errorf("store days: %w", err)
	}

	stats, err := db.Stats(ctx)
	if err != nil {
		return fmt.Errorf("read stats: %w", err)
	}
	log.Info("almanac stored",
		slog.Int("written", written),
		slog.Int("total_days", stats.Days),
		slog.String("first", stats.First),
		slog.String("last", stats.Last),
	)
	return nil
}

// almanacFile is the YAML document layout.
type almanacFile struct {
	Generated string                `yaml:"generated"`
	Days      []database.AlmanacDay `yaml:"days"`
}

func writeYAMLFile(path string, days []database.AlmanacDay) (err error) {
	if path == "-" {
		return writeYAML(os.Stdout, days)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create YAML file: %w", err)
	}
	defer func() {
		errs := cerrors.M{}
		errs.Append(err, f.Close())
		err = errs.Err()
	}()
	return writeYAML(f, days)
}

func writeYAML(w io.Writer, days []database.AlmanacDay) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	doc := almanacFile{
		Generated: time.Now().UTC().Format(time.RFC3339),
		Days:      days,
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}
	return enc.Close()
}
