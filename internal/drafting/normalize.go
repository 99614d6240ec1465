package drafting

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/getmorediners/backend/internal/models"
)

var (
	htmlTagRe    = regexp.MustCompile(`(?i)<(p|br|div|ul|ol|li|h[1-6]|strong|em|b|i|span|html|body)\b[^>]*>`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// flattenHTML turns an HTML email body into plain text. Plain text is
// returned untouched.
func flattenHTML(s string) string {
	if !htmlTagRe.MatchString(s) {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").Each(func(_ int, li *goquery.Selection) {
		li.PrependHtml("• ")
		li.AppendHtml("\n")
	})
	doc.Find("p, div, h1, h2, h3, h4, h5, h6, ul, ol").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n\n")
	})

	lines := strings.Split(doc.Find("body").Text(), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	text := blankLinesRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(text)
}

// SMSLength counts characters as the client displays them.
func SMSLength(s string) int {
	return utf8.RuneCountInString(s)
}

// SMSOverLimit is advisory. Nothing is truncated.
func SMSOverLimit(s string) bool {
	return SMSLength(s) > models.SMSSoftLimit
}
