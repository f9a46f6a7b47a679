// Package htmltext turns HTML contract exhibits into clean text and runs
// cheap keyword detectors over it. It is glue in front of the taxonomy
// encoders: detector answers come back as yes/no strings ready for binary
// encoding. No parsing here ever reaches the prediction core directly.
package htmltext

import (
	"io"
	"os"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/parchmint/clausal/errors"
)

// ExtractFile reads an HTML file and returns its cleaned visible text.
func ExtractFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.WrapData(err, "opening HTML file")
	}
	defer f.Close()
	return Extract(f)
}

// Extract parses HTML and returns the cleaned visible text, skipping
// script and style content.
func Extract(r io.Reader) (string, error) {
	root, err := html.Parse(r)
	if err != nil {
		return "", errors.WrapData(err, "parsing HTML")
	}

	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "noscript":
				return
			case "p", "div", "br", "tr", "li", "h1", "h2", "h3", "h4", "table":
				sb.WriteByte('\n')
			}
		case html.TextNode:
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return Clean(sb.String()), nil
}

var (
	fieldArtifact  = regexp.MustCompile(`Field:\s*/?\S*[^F\n]*`)
	trailingPageNo = regexp.MustCompile(`\s+\d{1,2}\s*$`)
	multiSpace     = regexp.MustCompile(` +`)
	multiNewline   = regexp.MustCompile(`\n\s*\n\s*\n+`)
)

// Clean normalizes whitespace and strips SEC filing artifacts: non-breaking
// spaces, "Field: Page/Sequence" markers, and standalone trailing page
// numbers.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	text = strings.ReplaceAll(text, " ", " ")
	text = fieldArtifact.ReplaceAllString(text, "")
	text = trailingPageNo.ReplaceAllString(text, "")
	text = multiSpace.ReplaceAllString(text, " ")
	text = multiNewline.ReplaceAllString(text, "\n\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

var supportCues = []string{
	"support services",
	"maintenance and support",
	"support and maintenance",
	"technical support",
	"help desk",
	"service level",
	"response time",
	"error correction",
}

// DetectSupportContract reports whether the text reads like a support or
// maintenance agreement, as a yes/no string ready for the binary encoder.
func DetectSupportContract(text string) string {
	lower := strings.ToLower(text)
	hits := 0
	for _, cue := range supportCues {
		if strings.Contains(lower, cue) {
			hits++
		}
	}
	// One cue can appear incidentally in any license; require two
	if hits >= 2 {
		return "yes"
	}
	return "no"
}

var renewCues = []string{
	"automatically renew",
	"automatic renewal",
	"auto-renew",
	"shall renew",
	"successive renewal term",
	"successive one year term",
}

var renewNegations = []string{
	"shall not automatically renew",
	"will not automatically renew",
	"does not automatically renew",
	"no automatic renewal",
}

// DetectAutoRenew reports whether the text contains an auto-renewal clause,
// as a yes/no string ready for the binary encoder. Explicit negations win
// over positive cues.
func DetectAutoRenew(text string) string {
	lower := strings.ToLower(text)

	for _, neg := range renewNegations {
		if strings.Contains(lower, neg) {
			return "no"
		}
	}
	for _, cue := range renewCues {
		if strings.Contains(lower, cue) {
			return "yes"
		}
	}
	return "no"
}
