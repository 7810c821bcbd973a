package simulator

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/foliokit/foliokit/internal/model"
	"github.com/kennygrant/sanitize"
)

// extractionScript is the single in-page evaluation that pulls every content
// signal the scorer inspects. It runs once per page load.
const extractionScript = `
(function() {
	var toText = function(el) { return (el.textContent || '').trim(); };

	var headings = [];
	['h1','h2','h3','h4','h5','h6'].forEach(function(tag, i) {
		var els = document.querySelectorAll(tag);
		for (var j = 0; j < els.length; j++) {
			headings.push({ level: i + 1, text: toText(els[j]) });
		}
	});

	var paragraphs = [];
	var pEls = document.querySelectorAll('p');
	for (var i = 0; i < pEls.length; i++) {
		var t = toText(pEls[i]);
		if (t) paragraphs.push(t);
	}

	var links = [];
	var aEls = document.querySelectorAll('a[href]');
	for (var i = 0; i < aEls.length; i++) {
		var a = aEls[i];
		links.push({
			url: a.href,
			text: toText(a),
			type: a.host === location.host ? 'internal' : 'external'
		});
	}

	var images = [];
	var imgEls = document.querySelectorAll('img');
	for (var i = 0; i < imgEls.length; i++) {
		images.push({
			src: imgEls[i].getAttribute('src') || '',
			alt: imgEls[i].getAttribute('alt') || '',
			title: imgEls[i].getAttribute('title') || ''
		});
	}

	var structuredData = [];
	var ldEls = document.querySelectorAll('script[type="application/ld+json"]');
	for (var i = 0; i < ldEls.length; i++) {
		try { structuredData.push(JSON.parse(ldEls[i].textContent)); } catch (e) {}
	}

	var metaEl = document.querySelector('meta[name="description"]');

	return {
		title: document.title || '',
		metaDescription: metaEl ? (metaEl.getAttribute('content') || '') : '',
		headings: headings,
		paragraphs: paragraphs,
		links: links,
		images: images,
		structuredData: structuredData
	};
})()
`

// fetchWithBrowser loads the page in headless Chrome with JavaScript enabled,
// waiting for the networkIdle lifecycle event before extraction.
func (s *Simulator) fetchWithBrowser(parentCtx context.Context, profile model.CrawlerProfile,
	url string, opts Options) (*fetchResult, error) {
	if s.allocCtx == nil {
		if err := s.Initialize(); err != nil {
			return nil, err
		}
	}

	startTime := time.Now()
	result := &fetchResult{Content: &model.ExtractedContent{}}

	ctx, cancel := chromedp.NewContext(s.allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancel()
	ctx, cancelNav := context.WithTimeout(ctx, profile.Timeout)
	defer cancelNav()
	stop := context.AfterFunc(parentCtx, cancelNav)
	defer stop()

	chromedp.ListenTarget(ctx, func(event interface{}) {
		switch ev := event.(type) {
		case *network.EventResponseReceived:
			response := ev.Response
			if response.URL == url {
				result.StatusCode = int(response.Status)
			}
		case *network.EventRequestWillBeSent:
			if ev.RedirectResponse != nil && profile.FollowRedirects {
				url = ev.Request.URL
				s.log.Debug("redirected.", slog.String("url", ev.RedirectResponse.URL))
			}
		}
	})

	var fullHTML string
	var screenshot []byte
	tasks := chromedp.Tasks{
		network.Enable(),
		network.SetExtraHTTPHeaders(map[string]interface{}{
			"User-Agent": profile.UserAgent,
		}),
		enableLifecycleEvents(),
		navigateAndWaitFor(url, "networkIdle"),
		chromedp.Evaluate(extractionScript, result.Content),
		chromedp.ActionFunc(func(ctx context.Context) error {
			rootNode, err := dom.GetDocument().Do(ctx)
			if err != nil {
				return err
			}
			fullHTML, err = dom.GetOuterHTML().WithNodeID(rootNode.NodeID).Do(ctx)
			return err
		}),
	}
	if opts.Screenshot {
		tasks = append(tasks, chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			screenshot, err = page.CaptureScreenshot().Do(ctx)
			return err
		}))
	}

	if err := chromedp.Run(ctx, tasks); err != nil {
		return nil, err
	}
	result.ResponseTime = time.Since(startTime).Milliseconds()
	result.ContentLength = len(fullHTML)
	if result.StatusCode == 0 {
		result.StatusCode = 200
	}

	if opts.Screenshot && len(screenshot) > 0 {
		path, err := s.saveScreenshot(screenshot, profile.Name, url, opts.ScreenshotDir)
		if err != nil {
			s.log.Warn("failed to save screenshot.", slog.String("err", err.Error()))
		} else {
			result.Screenshot = path
		}
	}

	return result, nil
}

func (s *Simulator) saveScreenshot(data []byte, crawlerName, url, dir string) (string, error) {
	if dir == "" {
		dir = s.cfg.OutputSettings.ScreenshotDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.png", sanitize.BaseName(url), sanitize.BaseName(crawlerName))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return filepath.Abs(path)
}

func enableLifecycleEvents() chromedp.ActionFunc {
	return func(ctx context.Context) error {
		if err := page.Enable().Do(ctx); err != nil {
			return err
		}
		return page.SetLifecycleEventsEnabled(true).Do(ctx)
	}
}

func navigateAndWaitFor(url string, eventName string) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		_, _, _, err := page.Navigate(url).Do(ctx)
		if err != nil {
			return err
		}
		return waitFor(ctx, eventName)
	}
}

func waitFor(ctx context.Context, eventName string) error {
	ch := make(chan struct{})
	cctx, cancel := context.WithCancel(ctx)
	chromedp.ListenTarget(cctx, func(ev interface{}) {
		switch e := ev.(type) {
		case *page.EventLifecycleEvent:
			if e.Name == eventName {
				cancel()
				close(ch)
			}
		}
	})
	select {
	case <-ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
