package robots

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/temoto/robotstxt"
)

// Agent evaluates robots.txt rules for simulated crawler user agents.
// Parsed rule sets are cached per host.
type Agent struct {
	client     *http.Client
	log        *slog.Logger
	localCache *cache.Cache
}

func NewAgent(ttl time.Duration, log *slog.Logger) *Agent {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Agent{
		client:     &http.Client{Timeout: 10 * time.Second},
		log:        log,
		localCache: cache.New(ttl, ttl),
	}
}

// Allowed reports whether the user agent may fetch the target URL.
// Robots fetch or parse failures fail open.
func (a *Agent) Allowed(target string, userAgent string) bool {
	u, err := url.Parse(target)
	if err != nil || !u.IsAbs() {
		return false
	}

	rules, err := a.rules(u)
	if err != nil {
		a.log.Debug("robots lookup failed, allowing fetch.", slog.String("host", u.Host),
			slog.String("err", err.Error()))
		return true
	}

	group := rules.FindGroup(productToken(userAgent))
	if group == nil {
		return true
	}
	return group.Test(u.Path)
}

func (a *Agent) rules(u *url.URL) (*robotstxt.RobotsData, error) {
	host := strings.ToLower(u.Host)
	if r, ok := a.localCache.Get(host); ok {
		return r.(*robotstxt.RobotsData), nil
	}

	robotsURL := u.Scheme + "://" + u.Host + "/robots.txt"
	resp, err := a.client.Get(robotsURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("robots.txt returned status %d", resp.StatusCode)
	}

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil, err
	}
	a.localCache.Set(host, data, cache.DefaultExpiration)

	return data, nil
}

// productToken pulls the bot token (GPTBot, ClaudeBot, ...) out of a full
// user agent string so group matching works the way real robots files expect.
func productToken(userAgent string) string {
	for _, token := range []string{"GPTBot", "Google-Extended", "ClaudeBot"} {
		if strings.Contains(userAgent, token) {
			return token
		}
	}
	return userAgent
}
