package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/zapponejosh/tanggalan-api/internal/api"
	"github.com/zapponejosh/tanggalan-api/internal/config"
	"github.com/zapponejosh/tanggalan-api/internal/database"
)

func TestRunner_AgainstServer(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := database.Open(database.DefaultConfig(":memory:"), log)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		Env:          config.EnvStaging,
		APIKey:       "smoke-key",
		Timezone:     "Asia/Jakarta",
		MaxRangeDays: 90,
	}
	srv := httptest.NewServer(api.SetupRoutes(api.NewHandlers(db, cfg, log), cfg, log))
	defer srv.Close()

	var out bytes.Buffer
	runner := NewTestRunner(srv.URL, "smoke-key", false, &out)
	runner.Run()

	if runner.errorCount != 0 {
		t.Errorf("runner reported %d failures:\n%s", runner.errorCount, out.String())
	}
	if runner.successCount == 0 {
		t.Error("runner recorded no successes")
	}

	// Without the key every /api/v1 check fails.
	out.Reset()
	unauth := NewTestRunner(srv.URL, "", false, &out)
	unauth.Run()
	if unauth.errorCount == 0 {
		t.Error("runner without API key reported no failures")
	}
}
