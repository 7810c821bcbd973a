package simulator

import (
	"net/http"
	"time"

	"github.com/foliokit/foliokit/internal/model"
	"github.com/gocolly/colly"
)

// fetchStatic retrieves the page without JavaScript execution, the way
// non-rendering crawlers see it.
func (s *Simulator) fetchStatic(profile model.CrawlerProfile, url string) (*fetchResult, error) {
	result := &fetchResult{}

	c := colly.NewCollector()
	c.SetRequestTimeout(profile.Timeout)
	c.UserAgent = profile.UserAgent
	if !profile.FollowRedirects {
		c.RedirectHandler = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var body []byte
	var fetchErr error
	c.OnResponse(func(resp *colly.Response) {
		body = resp.Body
		result.StatusCode = resp.StatusCode
	})
	c.OnError(func(resp *colly.Response, err error) {
		if resp != nil && resp.StatusCode != 0 {
			result.StatusCode = resp.StatusCode
		}
		fetchErr = err
	})

	t := time.Now()
	if err := c.Visit(url); err != nil && fetchErr == nil {
		fetchErr = err
	}
	result.ResponseTime = time.Since(t).Milliseconds()
	if fetchErr != nil {
		return nil, fetchErr
	}
	if result.StatusCode == 0 {
		result.StatusCode = http.StatusOK
	}
	result.ContentLength = len(body)

	content, err := Extract(body, url)
	if err != nil {
		return nil, err
	}
	result.Content = content

	return result, nil
}
