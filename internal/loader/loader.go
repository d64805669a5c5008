// Package loader fetches the case collection from its data source once at
// startup. It does not cache, retry, or normalize records.
package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/alexanderramin/casetracker/internal/domain"
)

// Loader provides the case collection.
type Loader interface {
	// Load returns every case in source order, or a *LoadError.
	Load(ctx context.Context) ([]domain.Case, error)
}

// Config selects and tunes a loader.
type Config struct {
	// Source is an http(s) URL, a file:// URL, or a local path.
	Source string
	// Timeout bounds a single load. Zero means no timeout.
	Timeout time.Duration
	// HTTPClient overrides the client used for URL sources.
	HTTPClient *http.Client
	Observer   Observer
}

// New returns the loader for cfg.Source.
func New(cfg Config) Loader {
	if cfg.Observer == nil {
		cfg.Observer = NoopObserver{}
	}
	if isHTTPSource(cfg.Source) {
		client := cfg.HTTPClient
		if client == nil {
			client = &http.Client{
				Transport: &http.Transport{
					DialContext: (&net.Dialer{
						Timeout: 5 * time.Second,
					}).DialContext,
					DisableKeepAlives: true,
				},
			}
		}
		return &httpLoader{cfg: cfg, http: client}
	}
	return &fileLoader{cfg: cfg, path: filePath(cfg.Source)}
}

func isHTTPSource(src string) bool {
	lower := strings.ToLower(src)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func filePath(src string) string {
	if !strings.HasPrefix(strings.ToLower(src), "file://") {
		return src
	}
	u, err := url.Parse(src)
	if err != nil || u.Path == "" {
		return strings.TrimPrefix(src, "file://")
	}
	return u.Path
}

// ── HTTP ─────────────────────────────────────────────────────────────────────

type httpLoader struct {
	cfg  Config
	http *http.Client
}

func (l *httpLoader) Load(ctx context.Context) ([]domain.Case, error) {
	return observe(l.cfg, func() ([]domain.Case, error) {
		ctx, cancel := withTimeout(ctx, l.cfg.Timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.cfg.Source, nil)
		if err != nil {
			return nil, &LoadError{Source: l.cfg.Source, Kind: KindNetwork, Err: err}
		}
		req.Header.Set("Accept", "application/json")

		resp, err := l.http.Do(req)
		if err != nil {
			return nil, &LoadError{Source: l.cfg.Source, Kind: KindNetwork, Err: transportErr(ctx, err)}
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			_, _ = io.Copy(io.Discard, resp.Body)
			return nil, &LoadError{
				Source:     l.cfg.Source,
				Kind:       KindStatus,
				StatusCode: resp.StatusCode,
				Err:        fmt.Errorf("unexpected status %s", resp.Status),
			}
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &LoadError{Source: l.cfg.Source, Kind: KindNetwork, Err: transportErr(ctx, err)}
		}
		return decodeFrom(l.cfg.Source, body)
	})
}

// ── File ─────────────────────────────────────────────────────────────────────

type fileLoader struct {
	cfg  Config
	path string
}

func (l *fileLoader) Load(ctx context.Context) ([]domain.Case, error) {
	return observe(l.cfg, func() ([]domain.Case, error) {
		ctx, cancel := withTimeout(ctx, l.cfg.Timeout)
		defer cancel()

		if err := ctx.Err(); err != nil {
			return nil, &LoadError{Source: l.cfg.Source, Kind: KindNetwork, Err: transportErr(ctx, err)}
		}
		body, err := os.ReadFile(l.path)
		if err != nil {
			return nil, &LoadError{Source: l.cfg.Source, Kind: KindNetwork, Err: err}
		}
		return decodeFrom(l.cfg.Source, body)
	})
}

// ── decoding ─────────────────────────────────────────────────────────────────

// Decode parses a JSON array of cases. An empty array is valid; any other
// valid top-level shape is ErrNotArray. Malformed JSON returns the decoder's
// error with its offset. Wrong-typed fields inside a record never fail.
func Decode(data []byte) ([]domain.Case, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		var v any
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, err
		}
		return nil, ErrNotArray
	}
	cases := []domain.Case{}
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

func decodeFrom(source string, body []byte) ([]domain.Case, error) {
	cases, err := Decode(body)
	if err != nil {
		return nil, &LoadError{Source: source, Kind: KindParse, Err: err}
	}
	return cases, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func observe(cfg Config, load func() ([]domain.Case, error)) ([]domain.Case, error) {
	start := time.Now()
	cases, err := load()
	cfg.Observer.OnLoad(LoadEvent{
		Source:  cfg.Source,
		Count:   len(cases),
		Latency: time.Since(start),
		Err:     err,
	})
	return cases, err
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

func transportErr(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return err
}
