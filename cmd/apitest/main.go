package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/zapponejosh/tanggalan-api/internal/api"
)

// =============================================================================
// Response Types
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *api.ErrorInfo  `json:"error,omitempty"`
}

// HealthResponse is the response for /health
type HealthResponse struct {
	Status string `json:"status"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	apiKey       string
	client       *http.Client
	verbose      bool
	out          io.Writer
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL, apiKey string, verbose bool, out io.Writer) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
		out:     out,
	}
}

func (tr *TestRunner) Run() {
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintln(tr.out, "Tanggalan API Test Suite")
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "Base URL: %s\n", tr.baseURL)

	tr.testHealth()
	tr.testToday()
	tr.testKnownDates()
	tr.testWetonSearch()
	tr.testParseRoundTrip()
	tr.testRange()
	tr.testMonth()
	tr.testEdgeCases()

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	var health HealthResponse
	if err := tr.getData("/health", &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}
	if health.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testToday() {
	tr.printSection("Today")

	var d api.DateResponse
	if err := tr.getData("/api/v1/dates/today", &d); err != nil {
		tr.recordError("Today", err.Error())
		return
	}
	tr.recordSuccess(fmt.Sprintf("Today (%s): %s, %d %s %d", d.Date, d.Weton, d.Day, d.Wulan, d.Year))
	tr.printDateDetail(d)
}

func (tr *TestRunner) testKnownDates() {
	tr.printSection("Known Dates")

	testCases := []struct {
		date  string
		weton string
		javan string
	}{
		{"2022-01-01", "Setu Pahing", "28 Jumadilawal 1955"},
		{"2021-08-09", "Senen Pahing", "1 Sura 1955"},
		{"2021-08-08", "Minggu Legi", "30 Besar 1954"},
		{"2023-08-17", "Kemis Kliwon", "30 Sura 1957"},
	}

	for _, tc := range testCases {
		var d api.DateResponse
		if err := tr.getData("/api/v1/dates/"+tc.date+"?layout="+url.QueryEscape("d M yyyy"), &d); err != nil {
			tr.recordError(tc.date, err.Error())
			continue
		}
		if d.Weton == tc.weton && d.Formatted == tc.javan {
			tr.recordSuccess(fmt.Sprintf("%s: %s, %s", tc.date, d.Weton, d.Formatted))
		} else {
			tr.recordError(tc.date, fmt.Sprintf("Expected %s, %s; got %s, %s",
				tc.weton, tc.javan, d.Weton, d.Formatted))
		}
		if tr.verbose {
			tr.printDateDetail(d)
		}
	}
}

func (tr *TestRunner) testWetonSearch() {
	tr.printSection("Weton Search")

	var next api.NextResponse
	path := "/api/v1/dates/2022-01-01/next?weton=" + url.QueryEscape("Setu Pahing")
	if err := tr.getData(path, &next); err != nil {
		tr.recordError("Own weton", err.Error())
		return
	}
	if next.Days == 35 && next.Next.Date == "2022-02-05" {
		tr.recordSuccess("Own weton recurs after 35 days")
	} else {
		tr.recordError("Own weton", fmt.Sprintf("Expected 2022-02-05 after 35 days, got %s after %d", next.Next.Date, next.Days))
	}
}

func (tr *TestRunner) testParseRoundTrip() {
	tr.printSection("Parse Round Trip")

	layout := "D P, dd M yyyy"
	var d api.DateResponse
	if err := tr.getData("/api/v1/dates/2024-05-17?layout="+url.QueryEscape(layout), &d); err != nil {
		tr.recordError("Format", err.Error())
		return
	}

	var back api.DateResponse
	path := "/api/v1/parse?value=" + url.QueryEscape(d.Formatted) + "&layout=" + url.QueryEscape(layout)
	if err := tr.getData(path, &back); err != nil {
		tr.recordError("Parse", err.Error())
		return
	}
	if back.Date == "2024-05-17" {
		tr.recordSuccess(fmt.Sprintf("%q parses back to %s", d.Formatted, back.Date))
	} else {
		tr.recordError("Parse", fmt.Sprintf("%q parsed to %s, want 2024-05-17", d.Formatted, back.Date))
	}
}

func (tr *TestRunner) testRange() {
	tr.printSection("Date Range Tests")

	var rangeData api.RangeResponse
	if err := tr.getData("/api/v1/range?start=2025-12-21&end=2025-12-27", &rangeData); err != nil {
		tr.recordError("Range (week)", err.Error())
		return
	}
	if len(rangeData.Days) == 7 {
		tr.recordSuccess(fmt.Sprintf("Week range returned %d days", len(rangeData.Days)))
	} else {
		tr.recordError("Range (week)", fmt.Sprintf("Expected 7 days, got %d", len(rangeData.Days)))
	}

	tr.expectStatus("Range limit enforced", "/api/v1/range?start=2000-01-01&end=2025-12-31", http.StatusBadRequest)
	tr.expectStatus("Invalid range rejected (end before start)", "/api/v1/range?start=2025-12-31&end=2025-01-01", http.StatusBadRequest)
}

func (tr *TestRunner) testMonth() {
	tr.printSection("Month Sheet")

	var sheet api.MonthResponse
	if err := tr.getData("/api/v1/months/2026/2", &sheet); err != nil {
		tr.recordError("Month", err.Error())
		return
	}
	if len(sheet.Weeks) == 4 {
		tr.recordSuccess("February 2026 fills exactly 4 weeks")
	} else {
		tr.recordError("Month", fmt.Sprintf("Expected 4 weeks, got %d", len(sheet.Weeks)))
	}
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	tr.expectStatus("Invalid date format rejected", "/api/v1/dates/invalid", http.StatusBadRequest)
	tr.expectStatus("Unknown weton rejected", "/api/v1/dates/2022-01-01/next?weton=Sabtu+Legi", http.StatusBadRequest)
	tr.expectStatus("Market day mismatch rejected",
		"/api/v1/parse?value="+url.QueryEscape("Legi, 28 Jumadilawal 1955")+"&layout="+url.QueryEscape("P, d M yyyy"),
		http.StatusBadRequest)
	tr.expectStatus("Unknown route is 404", "/api/v1/nothing", http.StatusNotFound)
}

// =============================================================================
// Helpers
// =============================================================================

func (tr *TestRunner) getRaw(path string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, tr.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if tr.apiKey != "" {
		req.Header.Set("X-API-Key", tr.apiKey)
	}
	return tr.client.Do(req)
}

// getData fetches path and decodes the data of a successful response.
func (tr *TestRunner) getData(path string, target any) error {
	resp, err := tr.getRaw(path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("decode error (HTTP %d): %w", resp.StatusCode, err)
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return fmt.Errorf("API error (HTTP %d): %s", resp.StatusCode, errMsg)
	}

	return json.Unmarshal(apiResp.Data, target)
}

func (tr *TestRunner) expectStatus(name, path string, want int) {
	resp, err := tr.getRaw(path)
	if err != nil {
		tr.recordError(name, err.Error())
		return
	}
	resp.Body.Close()
	if resp.StatusCode == want {
		tr.recordSuccess(name)
	} else {
		tr.recordError(name, fmt.Sprintf("HTTP %d, want %d", resp.StatusCode, want))
	}
}

func (tr *TestRunner) printSection(name string) {
	fmt.Fprintf(tr.out, "\n--- %s ---\n\n", name)
}

func (tr *TestRunner) printDateDetail(d api.DateResponse) {
	fmt.Fprintf(tr.out, "    Taun: %s  Wuku: %s  Neptu: %d\n", d.Taun, d.Wuku, d.Neptu)
	fmt.Fprintf(tr.out, "    Mongso: %s  Wektu: %s\n\n", d.Mongso, d.Wektu)
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Fprintf(tr.out, "  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Fprintf(tr.out, "  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Fprintln(tr.out)
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintln(tr.out, "Summary")
	fmt.Fprintln(tr.out, "==============================================")
	fmt.Fprintf(tr.out, "  Passed: %d\n", tr.successCount)
	fmt.Fprintf(tr.out, "  Failed: %d\n\n", tr.errorCount)

	if tr.errorCount > 0 {
		fmt.Fprintln(tr.out, "Failures:")
		for _, err := range tr.errors {
			fmt.Fprintf(tr.out, "  • %s\n", err)
		}
		fmt.Fprintf(tr.out, "\nTests completed with %d failure(s)\n", tr.errorCount)
		return
	}
	fmt.Fprintln(tr.out, "All tests passed! ✓")
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	apiKey := flag.String("key", os.Getenv("API_KEY"), "X-API-Key to send")
	verbose := flag.Bool("v", false, "Verbose output (show date details)")
	flag.Parse()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	runner := NewTestRunner(*baseURL, *apiKey, *verbose, os.Stdout)
	runner.Run()

	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
