// Package fetch implements the Source interface.
// The guide can come from the live site (HTTPSource) or from a locally
// saved copy of the page (FileSource).
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/evaldasg/md--betterspecs-org/core"
)

// DefaultURL is the canonical location of the style guide.
const DefaultURL = "https://www.betterspecs.org/"

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "betterspecs-md/1.0 (https://github.com/evaldasg/md--betterspecs-org)"
)

// HTTPSource fetches the guide page over HTTP.
type HTTPSource struct {
	URL    string
	client *http.Client
}

// NewHTTP creates an HTTPSource for the given URL with a sensible timeout.
// An empty URL defaults to the live guide.
func NewHTTP(url string) *HTTPSource {
	if url == "" {
		url = DefaultURL
	}
	return &HTTPSource{
		URL:    url,
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Load retrieves the guide HTML from the configured URL.
func (s *HTTPSource) Load(ctx context.Context) (*core.SourceResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, s.URL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &core.SourceResult{
		Origin: s.URL,
		HTML:   string(body),
	}, nil
}

// FileSource reads the guide from a locally saved HTML file.
type FileSource struct {
	Path string
}

// NewFile creates a FileSource for the given path.
func NewFile(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load reads the guide HTML from disk.
func (s *FileSource) Load(ctx context.Context) (*core.SourceResult, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path, err)
	}
	return &core.SourceResult{
		Origin: s.Path,
		HTML:   string(data),
	}, nil
}
