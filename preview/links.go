package preview

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Link is a link target found in the document.
type Link struct {
	URL  string
	Text string
}

var linkParser = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Links returns the inline links, autolinks, and bare URLs of markdown in
// document order. Images are not links.
func Links(markdown string) []Link {
	if markdown == "" {
		return nil
	}
	src := []byte(markdown)
	doc := linkParser.Parser().Parse(text.NewReader(src))

	var out []Link
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Link:
			out = append(out, Link{URL: string(n.Destination), Text: inlineText(n, src)})
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			out = append(out, Link{URL: string(n.URL(src)), Text: string(n.Label(src))})
			return ast.WalkSkipChildren, nil
		case *ast.Image:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return out
}

func inlineText(n ast.Node, src []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(src))
		case *ast.String:
			sb.Write(c.Value)
		default:
			sb.WriteString(inlineText(c, src))
		}
	}
	return sb.String()
}
