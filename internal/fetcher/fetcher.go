package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/temoto/robotstxt"
)

// UserAgents is the fixed identity table used for multi-agent fetches.
// Keys are stable names; values are the literal User-Agent strings sent.
var UserAgents = map[string]string{
	"desktop_chrome":  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"desktop_firefox": "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:121.0) Gecko/20100101 Firefox/121.0",
	"desktop_safari":  "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_1) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15",
	"mobile_chrome":   "Mozilla/5.0 (Linux; Android 13) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
	"mobile_safari":   "Mozilla/5.0 (iPhone; CPU iPhone OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1",
	"tablet_ipad":     "Mozilla/5.0 (iPad; CPU OS 17_1 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Mobile/15E148 Safari/604.1",
	"googlebot":       "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
	"bingbot":         "Mozilla/5.0 (compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm)",
	"curl":            "curl/7.68.0",
	"wget":            "Wget/1.20.3 (linux-gnu)",
	"lynx":            "Lynx/2.8.9rel.1 libwww-FM/2.14 SSL-MM/1.4.1",
	"edge":            "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0",
}

// DefaultAgent is the identity used when the caller does not pick one.
const DefaultAgent = "desktop_chrome"

// maxBodyBytes caps how much of a response body is read into memory.
const maxBodyBytes = 20 << 20

// Fetcher retrieves pages and turns them into Documents.
type Fetcher struct {
	client        *http.Client
	userAgent     string
	respectRobots bool

	// robots caches parsed robots.txt per host.
	robots sync.Map
}

// New creates a Fetcher. userAgent may be a UserAgents key or a literal
// User-Agent string; respectRobots enables the robots.txt gate.
func New(timeout time.Duration, userAgent string, respectRobots bool) *Fetcher {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if ua, ok := UserAgents[userAgent]; ok {
		userAgent = ua
	}
	if userAgent == "" {
		userAgent = UserAgents[DefaultAgent]
	}
	return &Fetcher{
		client:        &http.Client{Timeout: timeout},
		userAgent:     userAgent,
		respectRobots: respectRobots,
	}
}

// Fetch retrieves rawURL once and builds a Document. Network errors,
// non-2xx statuses and robots denials are all fetch failures.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Document, error) {
	return f.fetchAs(ctx, rawURL, f.userAgent)
}

// FetchAs retrieves rawURL using the identity named by agent. Unknown
// agent names fall back to the default.
func (f *Fetcher) FetchAs(ctx context.Context, rawURL, agent string) (*Document, error) {
	ua, ok := UserAgents[agent]
	if !ok {
		ua = UserAgents[DefaultAgent]
	}
	return f.fetchAs(ctx, rawURL, ua)
}

func (f *Fetcher) fetchAs(ctx context.Context, rawURL, userAgent string) (*Document, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	if f.respectRobots {
		allowed, err := f.robotsAllowed(ctx, u, userAgent)
		if err == nil && !allowed {
			return nil, fmt.Errorf("blocked by robots.txt: %s", rawURL)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return NewDocument(rawURL, string(body), resp.StatusCode, resp.Header, time.Since(start))
}

// robotsAllowed consults the host's robots.txt, fetching and caching it on
// first use. Unreachable or unparseable robots.txt allows everything.
func (f *Fetcher) robotsAllowed(ctx context.Context, u *url.URL, userAgent string) (bool, error) {
	key := u.Scheme + "://" + u.Host
	if cached, ok := f.robots.Load(key); ok {
		data := cached.(*robotstxt.RobotsData)
		return data.TestAgent(u.Path, userAgent), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, key+"/robots.txt", nil)
	if err != nil {
		return true, err
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := f.client.Do(req)
	if err != nil {
		return true, err
	}
	defer resp.Body.Close()

	data, err := robotstxt.FromResponse(resp)
	if err != nil {
		return true, err
	}
	f.robots.Store(key, data)
	return data.TestAgent(u.Path, userAgent), nil
}
