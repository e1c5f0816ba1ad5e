package normalize

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// excerptLimit caps how much scraped text is carried into the profile and
// forwarded to the oracle.
const excerptLimit = 1500

var whitespaceRun = regexp.MustCompile(`\s+`)

// pageContent is what the normalizer salvages from one scraped excerpt.
type pageContent struct {
	Title string
	Text  string
}

// extractPageContent pulls the page title and readable text out of a raw
// scraped excerpt. The input may be HTML, markdown-ish text from a reader
// service, or garbage; non-HTML input passes through as plain text.
func extractPageContent(raw string) pageContent {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return pageContent{}
	}

	if !strings.Contains(raw, "<") {
		return pageContent{Text: collapseWhitespace(raw)}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return pageContent{Text: collapseWhitespace(raw)}
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("script, style, noscript, nav, footer").Remove()
	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}
	return pageContent{
		Title: title,
		Text:  collapseWhitespace(text),
	}
}

func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

func truncateExcerpt(text string) string {
	if len(text) <= excerptLimit {
		return text
	}
	cut := text[:excerptLimit]
	// Back up to the last space so the excerpt does not end mid-word.
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut
}
