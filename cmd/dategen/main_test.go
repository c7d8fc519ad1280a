package main

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	if err := generate(&buf, 2022, time.UTC); err != nil {
		t.Fatalf("generate() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"=== Javanese Calendar for 2022 ===",
		"1955 Alip     2021-08-09  Senen Pahing (355 days, kabisat)",
		"--- January 2022 ---",
		"--- December 2022 ---",
		" 1 Pahing",
		"28/5 1955",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if n := strings.Count(out, "--- "); n != 12 {
		t.Errorf("printed %d month sheets, want 12", n)
	}
}
