package extract

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-shiori/go-readability"
)

// Article is the readable text pulled out of a web page, used as the
// content of a web source.
type Article struct {
	Title   string
	Content string
}

// Extractor fetches web pages and strips them down to readable text. This is
// the extraction collaborator for web sources; other kinds arrive with their
// text already supplied.
type Extractor struct {
	httpClient *http.Client
}

func NewExtractor() *Extractor {
	return &Extractor{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// FromURL fetches the page and parses it with go-readability.
func (e *Extractor) FromURL(ctx context.Context, urlStr string) (*Article, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch URL: status %d", resp.StatusCode)
	}

	article, err := readability.FromReader(resp.Body, parsedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return &Article{
		Title:   article.Title,
		Content: article.TextContent,
	}, nil
}
