package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	ordersPerDay = 4  // Orders generated per report day
	reportDays   = 30 // Consecutive days covered by the generated report
)

var (
	products = []string{"Mug", "Shirt", "Poster", "Sticker"}
	titles   = []string{"Space Cat", "Retro Wave", "Mountain Dawn", "Pixel Skull"}
)

// ### End - fixed configs

type ingestResponse struct {
	RecordCount    int  `json:"recordCount"`
	CoercedMissing int  `json:"coercedMissing"`
	Replaced       bool `json:"replaced"`
}

type categoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type topCategoriesResponse struct {
	Categories []categoryCount `json:"categories"`
}

type seriesPoint struct {
	Period string      `json:"period"`
	Value  json.Number `json:"value"`
}

type seriesResponse struct {
	Points []seriesPoint `json:"points"`
}

// main runs the e2e scenario: 001_report_upload_insights
//
// This scenario tests the end-to-end flow of payout report ingestion and the
// insight endpoints. It uploads a deterministic CSV report (banner, header,
// data rows, summary footer) for one caller, re-uploads it to verify snapshot
// replacement, and checks the aggregation endpoints against expected results.
//
// What it tests:
//   - Report upload via POST /reports with the x-caller-id header
//   - Banner and footer trimming during normalization
//   - Snapshot replacement on re-upload (replaced flag)
//   - Top product counts via GET /insights/top-products
//   - Gap-free daily sales series via GET /insights/series/sales
//   - Missing-report handling for an unknown caller (404)
//
// Expected results:
//   - recordCount equals ordersPerDay * reportDays, replaced is false on the
//     first upload and true on the second
//   - Every product appears with reportDays orders (round-robin generation)
//   - The daily sales series has exactly reportDays points, each ordersPerDay
//   - GET /insights/earnings for a caller that never uploaded returns 404
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the payout analytics API server
	startDateUTC := "2025-06-01"       // First order date in the generated report (UTC)
	callerID := "caller-e2e"           // Caller ID to use in requests

	fmt.Println("Starting e2e scenario: 001_report_upload_insights")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("START_DATE_UTC: %s\n", startDateUTC)
	fmt.Printf("CALLER_ID: %s\n", callerID)
	fmt.Printf("ORDERS_PER_DAY: %d\n", ordersPerDay)
	fmt.Printf("REPORT_DAYS: %d\n", reportDays)
	fmt.Println()

	startDate, err := time.Parse("2006-01-02", startDateUTC)
	if err != nil {
		fail("invalid START_DATE_UTC: %v", err)
	}

	report := generateReport(startDate)
	totalOrders := ordersPerDay * reportDays
	fmt.Printf("Generated report with %d orders\n\n", totalOrders)

	// 1) First upload: stored, not a replacement
	first := uploadReport(baseURL, callerID, report)
	if first.RecordCount != totalOrders {
		fail("first upload recordCount = %d, want %d", first.RecordCount, totalOrders)
	}
	if first.Replaced {
		fail("first upload reported replaced = true")
	}
	fmt.Printf("First upload stored %d orders\n", first.RecordCount)

	// 2) Second upload: same data, must replace the snapshot
	second := uploadReport(baseURL, callerID, report)
	if !second.Replaced {
		fail("second upload reported replaced = false")
	}
	fmt.Println("Second upload replaced the snapshot")

	// 3) Top products: round-robin generation gives every product the same count
	var top topCategoriesResponse
	getJSON(baseURL+"/insights/top-products", callerID, &top)
	if len(top.Categories) != len(products) {
		fail("top-products returned %d categories, want %d", len(top.Categories), len(products))
	}
	for _, c := range top.Categories {
		if c.Count != int64(reportDays) {
			fail("product %s count = %d, want %d", c.Category, c.Count, reportDays)
		}
	}
	fmt.Printf("Top products: %d categories with %d orders each\n", len(top.Categories), reportDays)

	// 4) Daily sales series: one point per report day, no gaps
	var series seriesResponse
	getJSON(baseURL+"/insights/series/sales?granularity=day", callerID, &series)
	if len(series.Points) != reportDays {
		fail("daily sales series has %d points, want %d", len(series.Points), reportDays)
	}
	for _, p := range series.Points {
		if p.Value.String() != fmt.Sprintf("%d", ordersPerDay) {
			fail("series point %s = %s, want %d", p.Period, p.Value, ordersPerDay)
		}
	}
	fmt.Printf("Daily sales series: %d points with %d orders each\n", len(series.Points), ordersPerDay)

	// 5) Unknown caller: insights must 404
	status := getStatus(baseURL+"/insights/earnings", "caller-never-uploaded")
	if status != http.StatusNotFound {
		fail("earnings for unknown caller returned status %d, want 404", status)
	}
	fmt.Println("Unknown caller correctly returned 404")

	fmt.Println()
	fmt.Println("Scenario PASSED")
}

// generateReport builds a CSV payout report in the upstream export format:
// a two line banner, the header row, data rows, and a four row summary footer.
func generateReport(startDate time.Time) []byte {
	var b strings.Builder

	b.WriteString("Payout Report Export\n")
	b.WriteString("\n")
	b.WriteString("Order Date,Product,Title,Designer Earnings,Affiliate Earnings,Total Earnings\n")

	i := 0
	for day := 0; day < reportDays; day++ {
		date := startDate.AddDate(0, 0, day).Format("2006-01-02")
		for n := 0; n < ordersPerDay; n++ {
			fmt.Fprintf(&b, "%s,%s,%s,1.25,0.25,1.50\n", date, products[i%len(products)], titles[i%len(titles)])
			i++
		}
	}

	b.WriteString(",,,,,\n")
	b.WriteString("Totals,,,,,\n")
	fmt.Fprintf(&b, "Orders,%d,,,,\n", ordersPerDay*reportDays)
	b.WriteString("Generated by export service,,,,,\n")

	return []byte(b.String())
}

func uploadReport(baseURL, callerID string, report []byte) ingestResponse {
	req, err := http.NewRequest(http.MethodPost, baseURL+"/reports", bytes.NewReader(report))
	if err != nil {
		fail("failed to create upload request: %v", err)
	}
	req.Header.Set("x-caller-id", callerID)
	req.Header.Set("content-type", "text/csv")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fail("upload request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		fail("upload returned status %d: %s", resp.StatusCode, body)
	}

	var result ingestResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		fail("failed to decode upload response: %v", err)
	}
	return result
}

func getJSON(url, callerID string, out any) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		fail("failed to create request for %s: %v", url, err)
	}
	req.Header.Set("x-caller-id", callerID)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fail("request to %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		fail("%s returned status %d: %s", url, resp.StatusCode, body)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		fail("failed to decode response from %s: %v", url, err)
	}
}

func getStatus(url, callerID string) int {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		fail("failed to create request for %s: %v", url, err)
	}
	req.Header.Set("x-caller-id", callerID)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fail("request to %s failed: %v", url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}
