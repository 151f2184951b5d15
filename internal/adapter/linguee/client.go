package linguee

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/charmap"

	"github.com/wortkiste/wortkiste/internal/infrastructure/config"
	"github.com/wortkiste/wortkiste/internal/repository"
)

// Client scrapes grouped word senses from the Linguee search page. Any
// non-success response is treated as "word unknown": the quiz and add
// workflows must keep going when the site is down.
type Client struct {
	httpClient *http.Client
	url        string
	userAgent  string
	sourceLang string
	logger     *logrus.Logger
}

// NewClient creates a Linguee-backed lookup collaborator.
func NewClient(cfg *config.Config, logger *logrus.Logger) repository.Lookup {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Lookup.Timeout()},
		url:        cfg.Lookup.URL,
		userAgent:  cfg.Lookup.UserAgent,
		sourceLang: strings.ToUpper(cfg.Lookup.SourceLang),
		logger:     logger,
	}
}

func (c *Client) Lookup(ctx context.Context, word string) ([]repository.LookupGrouping, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build lookup request: %w", err)
	}
	query := req.URL.Query()
	query.Set("source", "auto")
	query.Set("query", word)
	req.URL.RawQuery = query.Encode()
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithError(err).Warnf("online dictionary unreachable for %q", word)
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warnf("online dictionary returned %d for %q", resp.StatusCode, word)
		return nil, nil
	}

	// The site serves ISO-8859-15; ASCII passes through unchanged.
	doc, err := goquery.NewDocumentFromReader(charmap.ISO8859_15.NewDecoder().Reader(resp.Body))
	if err != nil {
		c.logger.WithError(err).Warnf("unparseable response for %q", word)
		return nil, nil
	}
	return c.parse(doc), nil
}

// parse extracts the grouped senses of the first block matching the source
// language. No block means the word is unknown upstream.
func (c *Client) parse(doc *goquery.Document) []repository.LookupGrouping {
	block := doc.Find(fmt.Sprintf(`div.isForeignTerm[data-source-lang=%q]`, c.sourceLang)).First()
	if block.Length() == 0 {
		return nil
	}

	var groupings []repository.LookupGrouping
	block.Find("div.lemma.featured").Each(func(_ int, lemma *goquery.Selection) {
		grouping := repository.LookupGrouping{
			Lemma:  strings.TrimSpace(lemma.Find("a.dictLink").First().Text()),
			Marker: strings.TrimSpace(lemma.Find("span.tag_wordtype").First().Text()),
		}
		lemma.Find("div.translation.sortablemg.featured").Each(func(_ int, line *goquery.Selection) {
			grouping.Translations = append(grouping.Translations,
				strings.TrimSpace(line.Find("a.dictLink.featured").First().Text()))
			line.Find("div.example.line").Each(func(_ int, example *goquery.Selection) {
				grouping.SourceExamples = append(grouping.SourceExamples,
					strings.TrimSpace(example.Find("span.tag_s").First().Text()))
				grouping.TargetExamples = append(grouping.TargetExamples,
					strings.TrimSpace(example.Find("span.tag_t").First().Text()))
			})
		})
		groupings = append(groupings, grouping)
	})
	return groupings
}
