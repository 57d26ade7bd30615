package client

import (
	"bytes"
	"mime"
	"strings"
	"unicode/utf8"

	"github.com/bytedance/sonic"
	"golang.org/x/net/html"
)

// codec is the JSON codec for request and response bodies.
// ConfigStd keeps encoding/json semantics (time.Time, struct tags, HTML escaping).
var codec = sonic.ConfigStd

// maxMessageLen caps server messages surfaced to the user
const maxMessageLen = 200

// extractMessage pulls a human-readable explanation out of an error response body.
// JSON bodies are searched for message, error and description keys.
// HTML error pages give the text of their first paragraph, which is where
// the service puts the abort description. text/plain gives its first line.
func extractMessage(contentType string, body []byte) string {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = ""
	}

	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		var payload map[string]any
		if codec.Unmarshal(body, &payload) != nil {
			return ""
		}
		for _, key := range []string{"message", "error", "description"} {
			if s, ok := payload[key].(string); ok && strings.TrimSpace(s) != "" {
				return truncate(strings.TrimSpace(s))
			}
		}
	case mediaType == "text/html":
		return truncate(firstParagraph(body))
	case mediaType == "text/plain":
		line, _, _ := strings.Cut(string(body), "\n")
		return truncate(strings.TrimSpace(line))
	}

	return ""
}

// firstParagraph returns the text of the first <p> element with runs of
// whitespace collapsed. Entities are decoded by the tokenizer.
func firstParagraph(body []byte) string {
	z := html.NewTokenizer(bytes.NewReader(body))
	depth := 0
	var text strings.Builder
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(text.String()), " ")
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == "p" {
				if depth > 0 {
					return strings.Join(strings.Fields(text.String()), " ")
				}
				depth++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); string(name) == "p" && depth > 0 {
				return strings.Join(strings.Fields(text.String()), " ")
			}
		case html.TextToken:
			if depth > 0 {
				text.Write(z.Text())
			}
		}
	}
}

// truncate caps s at maxMessageLen bytes without splitting a rune
func truncate(s string) string {
	if len(s) <= maxMessageLen {
		return s
	}
	cut := maxMessageLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
