package preview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

var ErrInvalidURL error = errors.New("invalid url")
var ErrUnsupportedProtocol error = errors.New("unsupported protocol")
var ErrFallback error = errors.New("failed to build fallback preview")

const (
	OutcomeExtracted = "extracted"
	OutcomeFallback  = "fallback"
	OutcomeRejected  = "rejected"
)

const (
	DefaultTimeout         = 10 * time.Second
	DefaultUserAgent       = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/125.0.0.0 Safari/537.36"
	DefaultFaviconTemplate = "https://www.google.com/s2/favicons?domain=%s&sz=64"
)

// Record is the normalized metadata of a remote page.
type Record struct {
	URL         string `json:"url"`
	Domain      string `json:"domain"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	SiteName    string `json:"siteName"`
	Favicon     string `json:"favicon"`
}

type Config struct {
	Timeout         time.Duration
	UserAgent       string
	FaviconTemplate string
}

// Extractor fetches a page and reduces it to a Record.
type Extractor struct {
	logs          *zap.SugaredLogger
	cfg           Config
	outcomes      OutcomeRecorder
	baseCollector *colly.Collector
}

// NewExtractor is a constructor function for the Extractor type.
func NewExtractor(logger *zap.SugaredLogger, cfg Config, outcomes OutcomeRecorder) *Extractor {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.FaviconTemplate == "" {
		cfg.FaviconTemplate = DefaultFaviconTemplate
	}

	c := colly.NewCollector(
		colly.Async(false),
		colly.AllowURLRevisit(),
		colly.UserAgent(cfg.UserAgent),
	)
	c.ParseHTTPErrorResponse = true
	c.SetRequestTimeout(cfg.Timeout)

	return &Extractor{
		logs:          logger,
		cfg:           cfg,
		outcomes:      outcomes,
		baseCollector: c,
	}
}

// Preview validates raw and extracts its metadata. Any failure after validation
// yields a hostname-derived fallback record instead of an error.
func (e *Extractor) Preview(ctx context.Context, raw string) (Record, error) {
	target, err := ParseTarget(raw)
	if err != nil {
		e.outcomes.PreviewOutcome(OutcomeRejected)
		return Record{}, err
	}

	record, err := e.extract(ctx, target)
	if err != nil {
		e.logs.Warnw("preview extraction failed, using fallback", "url", target.String(), "error", err)
		e.outcomes.PreviewOutcome(OutcomeFallback)
		return e.Fallback(target.String())
	}

	e.outcomes.PreviewOutcome(OutcomeExtracted)
	return record, nil
}

// Fallback builds the minimal record for raw from its hostname alone.
func (e *Extractor) Fallback(raw string) (Record, error) {
	target, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || target.Hostname() == "" {
		return Record{}, fmt.Errorf("%w: %q", ErrFallback, raw)
	}
	normalize(target)

	host := target.Hostname()
	return Record{
		URL:      target.String(),
		Domain:   host,
		Title:    stripWWW(host),
		SiteName: stripWWW(host),
		Favicon:  e.favicon(host),
	}, nil
}

// ParseTarget accepts only absolute http and https URLs.
func ParseTarget(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	target, err := url.Parse(raw)
	if err != nil || target.Scheme == "" {
		return nil, ErrInvalidURL
	}

	switch strings.ToLower(target.Scheme) {
	case "http", "https":
	default:
		return nil, ErrUnsupportedProtocol
	}

	if target.Host == "" {
		// web schemes take the authority even with fewer than two slashes: http:/example.com
		rest := strings.TrimLeft(raw[len(target.Scheme)+1:], `/\`)
		if rest == "" {
			return nil, ErrInvalidURL
		}
		target, err = url.Parse(target.Scheme + "://" + rest)
		if err != nil {
			return nil, ErrInvalidURL
		}
	}

	if target.Hostname() == "" {
		return nil, ErrInvalidURL
	}

	normalize(target)
	return target, nil
}

func (e *Extractor) extract(ctx context.Context, target *url.URL) (Record, error) {
	body, err := e.fetch(ctx, target.String())
	if err != nil {
		return Record{}, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return Record{}, fmt.Errorf("parse html: %w", err)
	}

	host := target.Hostname()
	siteName := siteNameRules.pick(doc)
	if siteName == "" {
		siteName = stripWWW(host)
	}

	return Record{
		URL:         target.String(),
		Domain:      host,
		Title:       titleRules.pick(doc),
		Description: descriptionRules.pick(doc),
		Image:       resolve(target, imageRules.pick(doc)),
		SiteName:    siteName,
		Favicon:     e.favicon(host),
	}, nil
}

func (e *Extractor) fetch(ctx context.Context, target string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetch canceled: %w", err)
	}

	var (
		body     []byte
		fetchErr error
	)

	collector := e.baseCollector.Clone()
	collector.ParseHTTPErrorResponse = true
	collector.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept-Language", "en-US,en;q=0.9")
		r.Headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	})
	collector.OnResponse(func(r *colly.Response) {
		body = append([]byte(nil), r.Body...)
	})
	collector.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	done := make(chan error, 1)
	go func() {
		done <- collector.Visit(target)
	}()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("fetch canceled: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return nil, fmt.Errorf("visit %s: %w", target, err)
		}
		if fetchErr != nil {
			return nil, fmt.Errorf("fetch %s: %w", target, fetchErr)
		}
		return body, nil
	}
}

func (e *Extractor) favicon(host string) string {
	return fmt.Sprintf(e.cfg.FaviconTemplate, host)
}

// resolve returns ref relative to base, or "" when ref is empty or malformed.
func resolve(base *url.URL, ref string) string {
	if ref == "" {
		return ""
	}
	u, err := base.Parse(ref)
	if err != nil {
		return ""
	}
	return u.String()
}

func normalize(u *url.URL) {
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	if u.Path == "" {
		u.Path = "/"
	}
}

func stripWWW(host string) string {
	return strings.TrimPrefix(host, "www.")
}
