package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	cerrors "cloudeng.io/errors"
)

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Returns nil if no known format matches.
func parseTimestamp(ns sql.NullString) *time.Time {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, ns.String); err == nil {
			return &t
		}
	}
	return nil
}

const almanacColumns = `
	date, weekday,
	dina, dina_index, pasaran, pasaran_index, neptu,
	day, month, wulan, year, taun, kabisat,
	wuku, wuku_index, mongso,
	created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanDay(row scanner) (AlmanacDay, error) {
	var d AlmanacDay
	var createdAt, updatedAt sql.NullString
	err := row.Scan(
		&d.Date, &d.Weekday,
		&d.Dina, &d.DinaIndex, &d.Pasaran, &d.PasaranIndex, &d.Neptu,
		&d.Day, &d.Month, &d.Wulan, &d.Year, &d.Taun, &d.Kabisat,
		&d.Wuku, &d.WukuIndex, &d.Mongso,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return d, err
	}
	if t := parseTimestamp(createdAt); t != nil {
		d.CreatedAt = *t
	}
	if t := parseTimestamp(updatedAt); t != nil {
		d.UpdatedAt = *t
	}
	return d, nil
}

// =============================================================================
// Almanac Queries
// =============================================================================

// UpsertDays validates every day and then writes them all in a single
// transaction, replacing rows with the same date. Nothing is written if any
// day is invalid; the returned error then lists every invalid day.
//
// Returns the number of rows written.
func (db *DB) UpsertDays(ctx context.Context, days []AlmanacDay) (int, error) {
	errs := cerrors.M{}
	for _, d := range days {
		errs.Append(d.Validate())
	}
	if err := errs.Err(); err != nil {
		return 0, err
	}

	query := `
		INSERT INTO almanac_days (` + almanacColumns + `
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'), datetime('now'))
		ON CONFLICT(date) DO UPDATE SET
			weekday = excluded.weekday,
			dina = excluded.dina,
			dina_index = excluded.dina_index,
			pasaran = excluded.pasaran,
			pasaran_index = excluded.pasaran_index,
			neptu = excluded.neptu,
			day = excluded.day,
			month = excluded.month,
			wulan = excluded.wulan,
			year = excluded.year,
			taun = excluded.taun,
			kabisat = excluded.kabisat,
			wuku = excluded.wuku,
			wuku_index = excluded.wuku_index,
			mongso = excluded.mongso,
			updated_at = datetime('now')
	`

	written := 0
	err := db.WithTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return fmt.Errorf("prepare upsert: %w", err)
		}
		defer stmt.Close()

		for _, d := range days {
			_, err := stmt.ExecContext(ctx,
				d.Date, d.Weekday,
				d.Dina, d.DinaIndex, d.Pasaran, d.PasaranIndex, d.Neptu,
				d.Day, d.Month, d.Wulan, d.Year, d.Taun, d.Kabisat,
				d.Wuku, d.WukuIndex, d.Mongso,
			)
			if err != nil {
				return fmt.Errorf("upsert %s: %w", d.Date, err)
			}
			written++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	db.logger.Debug("almanac days written", "count", written)
	return written, nil
}

// GetDay retrieves the row for a Gregorian date (YYYY-MM-DD).
// Returns ErrNotFound if the date has not been generated.
func (db *DB) GetDay(ctx context.Context, date string) (*AlmanacDay, error) {
	query := `SELECT ` + almanacColumns + ` FROM almanac_days WHERE date = ?`

	d, err := scanDay(db.QueryRowContext(ctx, query, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query day %s: %w", date, err)
	}
	return &d, nil
}

// ListByWeton returns stored days with the given day name and market day,
// in date order. Names match case-insensitively. A limit <= 0 returns every
// match.
func (db *DB) ListByWeton(ctx context.Context, dina, pasaran string, limit int) ([]AlmanacDay, error) {
	query := `
		SELECT ` + almanacColumns + `
		FROM almanac_days
		WHERE dina = ? COLLATE NOCASE AND pasaran = ? COLLATE NOCASE
		ORDER BY date ASC
	`
	args := []any{strings.TrimSpace(dina), strings.TrimSpace(pasaran)}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query days by weton: %w", err)
	}
	defer rows.Close()

	var days []AlmanacDay
	for rows.Next() {
		d, err := scanDay(rows)
		if err != nil {
			return nil, fmt.Errorf("scan day row: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate day rows: %w", err)
	}
	return days, nil
}

// Stats reports how many days are stored and the first and last date.
func (db *DB) Stats(ctx context.Context) (*Stats, error) {
	var s Stats
	var first, last sql.NullString
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*), MIN(date), MAX(date) FROM almanac_days",
	).Scan(&s.Days, &first, &last)
	if err != nil {
		return nil, fmt.Errorf("query almanac stats: %w", err)
	}
	s.First = first.String
	s.Last = last.String
	return &s, nil
}
