package survey

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// TextFromHTML extracts the textual content of an HTML fragment. It does no
// interpretation of layout and styling, apart from separating the text of
// block-level elements and line breaks by a space.
func TextFromHTML(input io.Reader) (string, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, n := range nodes {
		collectText(n, &b)
	}
	return strings.TrimSpace(b.String()), nil
}

func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		switch n.Data {
		case "script", "style":
			return
		case "br", "p", "div", "li", "tr", "td", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteByte(' ')
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
