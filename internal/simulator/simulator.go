// Package simulator drives page fetches under simulated AI crawler profiles
// and turns them into scored crawl results.
package simulator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/foliokit/foliokit/config"
	"github.com/foliokit/foliokit/internal/model"
	"github.com/foliokit/foliokit/internal/robots"
	"github.com/foliokit/foliokit/internal/scorer"
)

// Options tune a single simulation call.
type Options struct {
	Screenshot    bool
	ScreenshotDir string
}

// Simulator owns one headless browser allocator shared by all JS-enabled
// crawler fetches. Initialize must be called before SimulateCrawler and
// Close releases the browser process.
type Simulator struct {
	cfg    *config.Config
	log    *slog.Logger
	robots *robots.Agent

	allocCtx    context.Context
	allocCancel context.CancelFunc
}

func New(cfg *config.Config, log *slog.Logger) *Simulator {
	return &Simulator{
		cfg:    cfg,
		log:    log,
		robots: robots.NewAgent(cfg.CrawlerSettings.RobotsCacheTTL, log),
	}
}

// Initialize starts the browser allocator. Calling it twice is a no-op.
func (s *Simulator) Initialize() error {
	if s.allocCtx != nil {
		return nil
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if bin := s.chromeBinary(); bin != "" {
		opts = append(opts, chromedp.ExecPath(bin))
	}

	s.allocCtx, s.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	s.log.Debug("browser allocator initialized.")

	return nil
}

// Close releases the browser process.
func (s *Simulator) Close() {
	if s.allocCancel != nil {
		s.allocCancel()
		s.allocCtx = nil
		s.allocCancel = nil
	}
}

// SimulateCrawler fetches url under the named crawler profile and returns a
// fully populated result. Navigation and robots errors propagate to the
// caller; SimulateAll absorbs them into zero-score stand-ins.
func (s *Simulator) SimulateCrawler(ctx context.Context, crawlerName, url string, opts Options) (*model.CrawlResult, error) {
	profile, err := model.ProfileFor(crawlerName)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "https://" + url
	}

	s.log.Info("simulating crawler.", slog.String("crawler", profile.Name), slog.String("url", url),
		slog.Bool("javascript", profile.ProcessJavaScript))

	if profile.RespectRobots && !s.robots.Allowed(url, profile.UserAgent) {
		return nil, fmt.Errorf("%s is blocked by robots.txt at %s", profile.Name, url)
	}

	var fetch *fetchResult
	if profile.ProcessJavaScript {
		fetch, err = s.fetchWithBrowser(ctx, profile, url, opts)
	} else {
		fetch, err = s.fetchStatic(profile, url)
	}
	if err != nil {
		return nil, fmt.Errorf("fetch %s as %s: %w", url, profile.Name, err)
	}

	score, issues := scorer.Score(fetch.Content, scorer.Metrics{
		TaskDuration: time.Duration(fetch.ResponseTime) * time.Millisecond,
	}, s.cfg.ScoringSettings)

	result := &model.CrawlResult{
		CrawlerName:       profile.Name,
		URL:               url,
		Timestamp:         time.Now().UTC(),
		ResponseTime:      fetch.ResponseTime,
		StatusCode:        fetch.StatusCode,
		ContentLength:     fetch.ContentLength,
		ExtractedContent:  fetch.Content,
		AIVisibilityScore: score,
		Issues:            issues,
		Recommendations:   scorer.Recommend(issues, profile.Name),
		Screenshot:        fetch.Screenshot,
	}

	s.log.Info("crawler simulation finished.", slog.String("crawler", profile.Name),
		slog.Int("score", score), slog.Int("issues", len(issues)))

	return result, nil
}

type fetchResult struct {
	Content       *model.ExtractedContent
	StatusCode    int
	ContentLength int
	ResponseTime  int64 // milliseconds
	Screenshot    string
}

func (s *Simulator) chromeBinary() string {
	if s.cfg.CrawlerSettings.ChromeBin != "" {
		return s.cfg.CrawlerSettings.ChromeBin
	}
	if bin := os.Getenv("CHROME_BIN"); bin != "" {
		return bin
	}
	for _, name := range []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}
	return ""
}
