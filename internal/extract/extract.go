// Package extract pulls readable article text out of news pages.
package extract

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jsenko/newsroom-engine/pkg/types"
)

// boilerplateSelector matches page chrome that never contains article prose.
const boilerplateSelector = "script, style, noscript, iframe, form, nav, header, footer, aside, figure"

// containerSelectors are tried in order; the first match with enough text
// wins. A bare body is the last resort.
var containerSelectors = []string{"article", "[role=main]", "main", "body"}

// Extractor turns an article URL into plain body text. An empty string with
// a nil error means the page held no usable text; callers treat both an
// error and empty text as "drop this source".
type Extractor interface {
	ArticleText(ctx context.Context, pageURL string) (string, error)
}

// PageExtractor fetches a page over HTTP and extracts paragraph text from
// its main content container.
type PageExtractor struct {
	Client *http.Client
	Config types.ExtractConfig
}

// ArticleText downloads pageURL and returns the concatenated paragraph text
// of its article container. Text shorter than Config.MinTextLength is
// discarded as boilerplate-only.
func (e *PageExtractor) ArticleText(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", e.Config.UserAgent)

	resp, err := e.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("article page returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parsing article page: %w", err)
	}

	text := extractText(doc)
	if len(text) < e.minLength() {
		return "", nil
	}
	return text, nil
}

func (e *PageExtractor) minLength() int {
	if e.Config.MinTextLength > 0 {
		return e.Config.MinTextLength
	}
	return 200
}

// extractText strips boilerplate elements and joins the paragraph text of
// the best content container.
func extractText(doc *goquery.Document) string {
	doc.Find(boilerplateSelector).Remove()

	for _, sel := range containerSelectors {
		container := doc.Find(sel).First()
		if container.Length() == 0 {
			continue
		}
		if text := paragraphText(container); text != "" {
			return text
		}
	}
	return ""
}

// paragraphText collects the text of every <p> under container. When the
// container has no paragraphs at all, its own text is used as a fallback.
func paragraphText(container *goquery.Selection) string {
	var parts []string
	container.Find("p").Each(func(_ int, p *goquery.Selection) {
		t := strings.TrimSpace(p.Text())
		if t != "" {
			parts = append(parts, t)
		}
	})
	if len(parts) == 0 {
		return strings.TrimSpace(container.Text())
	}
	return strings.Join(parts, "\n\n")
}
