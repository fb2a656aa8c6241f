package lyrics

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extract parses rendered page HTML and runs the given strategy on it.
func Extract(strategy Strategy, pageHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(pageHTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	switch strategy {
	case ContainerMarker:
		return ExtractContainers(doc), nil
	case LongestTextBlock:
		return ExtractLongestBlock(doc), nil
	default:
		return ExtractParagraphs(doc), nil
	}
}

// ExtractContainers joins the text of every lyrics container with newlines.
func ExtractContainers(doc *goquery.Document) string {
	var parts []string
	doc.Find(ContainerSelector).Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, nodeText(s))
	})
	return strings.Join(parts, "\n")
}

// ExtractLongestBlock returns the text of the first <div>, in document order,
// with more than MinBlockWords words. Outer wrappers come first, so on most
// pages this is a large ancestor of the lyrics.
func ExtractLongestBlock(doc *goquery.Document) string {
	var text string
	doc.Find("div").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		t := nodeText(s)
		if strings.TrimSpace(t) != "" && len(strings.Fields(t)) > MinBlockWords {
			text = t
			return false
		}
		return true
	})
	return text
}

// ExtractParagraphs joins every <p> that has visible text.
func ExtractParagraphs(doc *goquery.Document) string {
	var parts []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		t := nodeText(s)
		if strings.TrimSpace(t) != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, "\n")
}
