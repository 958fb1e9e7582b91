//go:build load
// +build load

package load

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	baseURL        = "http://localhost:8080"
	targetRPS      = 5
	duration       = 30 * time.Second
	maxLatencyP99  = 300 * time.Millisecond
	minSuccessRate = 0.999 // 99.9%
	// RPS tolerance: allow ±10% deviation from target
	rpsTolerance = 0.1
)

type metrics struct {
	totalRequests   int
	successRequests int
	errorRequests   int
	latencies       []time.Duration
}

func requireServer(t *testing.T) {
	client := &http.Client{Timeout: 5 * time.Second}
	healthResp, err := client.Get(baseURL + "/health")
	if err != nil {
		t.Fatalf("Server is not running at %s. Please start the server first.\nError: %v", baseURL, err)
	}
	healthResp.Body.Close()
	if healthResp.StatusCode != http.StatusOK {
		t.Fatalf("Server health check failed with status %d", healthResp.StatusCode)
	}
}

func newProjectRequest() (*http.Request, error) {
	reqBody := map[string]interface{}{
		"title":           fmt.Sprintf("Load Project %d", time.Now().UnixNano()),
		"description":     "generated during load run",
		"domain":          "web",
		"difficulty":      "medium",
		"skills_required": []string{"go", "sql"},
		"team_size":       4,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", baseURL+"/projects", bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-Id", "load-owner")
	req.Header.Set("X-User-Name", "Load Owner")
	return req, nil
}

func TestLoad_CreateProject(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping load test in short mode")
	}

	requireServer(t)

	loadClient := &http.Client{Timeout: 10 * time.Second}
	m := &metrics{latencies: make([]time.Duration, 0)}

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	interval := time.Second / time.Duration(targetRPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			goto done
		case <-ticker.C:
			reqStart := time.Now()

			req, err := newProjectRequest()
			require.NoError(t, err)

			resp, err := loadClient.Do(req)
			latency := time.Since(reqStart)
			m.latencies = append(m.latencies, latency)
			m.totalRequests++

			if err != nil {
				m.errorRequests++
				if m.errorRequests <= 3 {
					t.Logf("Request error: %v", err)
				}
				continue
			}

			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				m.successRequests++
			} else {
				m.errorRequests++
				if m.errorRequests <= 3 {
					body, _ := io.ReadAll(resp.Body)
					t.Logf("Request failed: status=%d, body=%s", resp.StatusCode, string(body))
				}
			}
			resp.Body.Close()
		}
	}

done:
	elapsed := time.Since(start)
	printMetrics(t, "CreateProject", m, elapsed)
	validateMetrics(t, m, elapsed)
}

func TestLoad_ListProjects(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping load test in short mode")
	}

	requireServer(t)

	loadClient := &http.Client{Timeout: 10 * time.Second}
	m := &metrics{latencies: make([]time.Duration, 0)}

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	interval := time.Second / time.Duration(targetRPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			goto done
		case <-ticker.C:
			reqStart := time.Now()

			req, _ := http.NewRequest("GET", baseURL+"/projects?status=approved", nil)

			resp, err := loadClient.Do(req)
			latency := time.Since(reqStart)
			m.latencies = append(m.latencies, latency)
			m.totalRequests++

			if err != nil {
				m.errorRequests++
				continue
			}

			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				m.successRequests++
			} else {
				m.errorRequests++
			}
			resp.Body.Close()
		}
	}

done:
	elapsed := time.Since(start)
	printMetrics(t, "ListProjects", m, elapsed)
	validateMetrics(t, m, elapsed)
}

func TestLoad_GetStatistics(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping load test in short mode")
	}

	requireServer(t)

	// Check if statistics endpoint exists
	client := &http.Client{Timeout: 5 * time.Second}
	statsResp, err := client.Get(baseURL + "/statistics/projects")
	if err != nil {
		t.Fatalf("Failed to reach statistics endpoint: %v", err)
	}
	statsResp.Body.Close()
	if statsResp.StatusCode == http.StatusNotFound {
		t.Fatalf("Statistics endpoint /statistics/projects not found (404). Check if endpoint is registered.")
	}

	loadClient := &http.Client{Timeout: 10 * time.Second}
	m := &metrics{latencies: make([]time.Duration, 0)}

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	defer cancel()

	interval := time.Second / time.Duration(targetRPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			goto done
		case <-ticker.C:
			reqStart := time.Now()

			req, _ := http.NewRequest("GET", baseURL+"/statistics/projects", nil)

			resp, err := loadClient.Do(req)
			latency := time.Since(reqStart)
			m.latencies = append(m.latencies, latency)
			m.totalRequests++

			if err != nil {
				m.errorRequests++
				if m.totalRequests <= 3 {
					t.Logf("Request error: %v", err)
				}
				continue
			}

			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				m.successRequests++
			} else {
				m.errorRequests++
				if m.errorRequests <= 3 {
					body, _ := io.ReadAll(resp.Body)
					t.Logf("Request failed: status=%d, body=%s", resp.StatusCode, string(body))
				}
			}
			resp.Body.Close()
		}
	}

done:
	elapsed := time.Since(start)
	printMetrics(t, "GetStatistics", m, elapsed)
	validateMetrics(t, m, elapsed)
}

func printMetrics(t *testing.T, testName string, m *metrics, elapsed time.Duration) {
	if len(m.latencies) == 0 {
		return
	}

	sorted := make([]time.Duration, len(m.latencies))
	copy(sorted, m.latencies)
	sortDurations(sorted)

	p50 := sorted[len(sorted)*50/100]
	p95 := sorted[len(sorted)*95/100]
	p99 := sorted[len(sorted)*99/100]
	p999 := sorted[len(sorted)*999/1000]

	avgLatency := time.Duration(0)
	for _, lat := range m.latencies {
		avgLatency += lat
	}
	avgLatency /= time.Duration(len(m.latencies))

	successRate := float64(m.successRequests) / float64(m.totalRequests)
	actualRPS := float64(m.totalRequests) / elapsed.Seconds()

	t.Logf("\n=== Load Test Results: %s ===", testName)
	t.Logf("Duration: %v", elapsed)
	t.Logf("Total Requests: %d", m.totalRequests)
	t.Logf("Success Requests: %d", m.successRequests)
	t.Logf("Error Requests: %d", m.errorRequests)
	t.Logf("Success Rate: %.4f%%", successRate*100)
	t.Logf("Actual RPS: %.2f", actualRPS)
	t.Logf("Average Latency: %v", avgLatency)
	t.Logf("P50 Latency: %v", p50)
	t.Logf("P95 Latency: %v", p95)
	t.Logf("P99 Latency: %v", p99)
	t.Logf("P99.9 Latency: %v", p999)
}

func validateMetrics(t *testing.T, m *metrics, elapsed time.Duration) {
	if len(m.latencies) == 0 {
		return
	}

	successRate := float64(m.successRequests) / float64(m.totalRequests)

	sorted := make([]time.Duration, len(m.latencies))
	copy(sorted, m.latencies)
	sortDurations(sorted)
	p99 := sorted[len(sorted)*99/100]

	actualRPS := float64(m.totalRequests) / elapsed.Seconds()
	minRPS := float64(targetRPS) * (1 - rpsTolerance)
	maxRPS := float64(targetRPS) * (1 + rpsTolerance)

	require.GreaterOrEqual(t, successRate, minSuccessRate,
		"Success rate %.4f%% is below required %.4f%%", successRate*100, minSuccessRate*100)

	require.LessOrEqual(t, p99, maxLatencyP99,
		"P99 latency %v exceeds maximum %v", p99, maxLatencyP99)

	require.GreaterOrEqual(t, actualRPS, minRPS,
		"Actual RPS %.2f is below minimum %.2f (target: %.2f)", actualRPS, minRPS, float64(targetRPS))

	require.LessOrEqual(t, actualRPS, maxRPS,
		"Actual RPS %.2f exceeds maximum %.2f (target: %.2f)", actualRPS, maxRPS, float64(targetRPS))
}

func sortDurations(durations []time.Duration) {
	sort.Slice(durations, func(i, j int) bool {
		return durations[i] < durations[j]
	})
}
