// Package render converts model output written in markdown into the
// restricted HTML subset the Telegram Bot API accepts. It is the local
// fallback used when the LLM-backed formatter is unavailable.
package render

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday"
)

// allowedTags is the tag subset Telegram accepts in parse_mode=HTML.
var allowedTags = map[string]bool{
	"b": true, "strong": true,
	"i": true, "em": true,
	"u": true, "ins": true,
	"s": true, "strike": true, "del": true,
	"a":    true,
	"code": true, "pre": true,
}

var (
	headingOpenRe  = regexp.MustCompile(`<h[1-6][^>]*>`)
	headingCloseRe = regexp.MustCompile(`</h[1-6]>`)
	tagRe          = regexp.MustCompile(`</?([a-zA-Z][a-zA-Z0-9]*)(?:\s[^>]*)?/?>`)
)

// ToHTML renders markdown to Telegram-safe HTML. Reserved characters
// in text come out entity-escaped by the markdown renderer; tags
// outside the Telegram subset are rewritten to plain structure
// (headings become bold, paragraphs and list items become lines).
func ToHTML(markdown string) string {
	html := string(blackfriday.MarkdownCommon([]byte(markdown)))

	html = headingOpenRe.ReplaceAllString(html, "<b>")
	html = headingCloseRe.ReplaceAllString(html, "</b>\n")

	replacer := strings.NewReplacer(
		"<p>", "",
		"</p>", "\n",
		"<li>", "• ",
		"</li>", "\n",
		"<br>", "\n",
		"<br/>", "\n",
		"<br />", "\n",
	)
	html = replacer.Replace(html)

	html = tagRe.ReplaceAllStringFunc(html, func(tag string) string {
		m := tagRe.FindStringSubmatch(tag)
		if allowedTags[strings.ToLower(m[1])] {
			return tag
		}
		return ""
	})

	return strings.TrimSpace(html)
}
