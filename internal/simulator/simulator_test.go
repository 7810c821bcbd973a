package simulator

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/foliokit/foliokit/config"
	"github.com/foliokit/foliokit/internal/model"
)

func testSimulator() *Simulator {
	return New(config.Default(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func pageServer(t *testing.T, robots string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/robots.txt":
			io.WriteString(w, robots)
		default:
			w.Header().Set("Content-Type", "text/html")
			io.WriteString(w, sampleHTML)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchStatic(t *testing.T) {
	srv := pageServer(t, "")
	profile, err := model.ProfileFor("OpenAI-GPT")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}

	result, err := testSimulator().fetchStatic(profile, srv.URL+"/")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if result.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", result.StatusCode)
	}
	if result.ContentLength == 0 {
		t.Error("content length should be recorded")
	}
	if result.Content.Title == "" {
		t.Error("extracted content should carry the page title")
	}
}

func TestSimulateCrawlerStaticProfile(t *testing.T) {
	srv := pageServer(t, "User-agent: *\nAllow: /\n")
	s := testSimulator()

	result, err := s.SimulateCrawler(context.Background(), "Claude", srv.URL+"/", Options{})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if result.CrawlerName != "Claude" {
		t.Errorf("crawler name: got %s", result.CrawlerName)
	}
	if result.AIVisibilityScore <= 0 || result.AIVisibilityScore > 100 {
		t.Errorf("score out of range: %d", result.AIVisibilityScore)
	}
	if result.StatusCode != http.StatusOK {
		t.Errorf("status: got %d", result.StatusCode)
	}
}

func TestSimulateCrawlerBlockedByRobots(t *testing.T) {
	srv := pageServer(t, "User-agent: ClaudeBot\nDisallow: /\n")
	s := testSimulator()

	_, err := s.SimulateCrawler(context.Background(), "Claude", srv.URL+"/", Options{})
	if err == nil {
		t.Fatal("expected a robots.txt block error")
	}
	if !strings.Contains(err.Error(), "blocked by robots.txt") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSimulateCrawlerUnknownName(t *testing.T) {
	_, err := testSimulator().SimulateCrawler(context.Background(), "Bingbot", "https://example.com", Options{})
	if err == nil {
		t.Fatal("expected an error for an unregistered crawler")
	}
}
