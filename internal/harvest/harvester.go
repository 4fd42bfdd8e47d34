// Package harvest extracts candidate anchors from rendered career pages.
package harvest

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobscout/internal/models"
)

// Links parses the HTML from the reader and returns one RawLink per anchor
// carrying an href, in document order. Filtering is the decision core's job;
// the harvester stays dumb.
func Links(pageURL string, body io.Reader) ([]models.RawLink, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}

	var links []models.RawLink
	doc.Find("a[href]").Each(func(i int, s *goquery.Selection) {
		href, exists := s.Attr("href")
		if !exists {
			return
		}
		links = append(links, models.RawLink{
			Href:       href,
			AnchorText: strings.TrimSpace(s.Text()),
			SourcePage: pageURL,
		})
	})

	return links, nil
}
