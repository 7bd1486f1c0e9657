// Package render turns generated markdown into HTML or terminal-friendly plain text.
package render

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// HTML converts markdown to an HTML fragment.
func HTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PlainText drops markdown syntax while keeping headings, paragraphs and list items
// on their own lines.
func PlainText(md string) string {
	src := []byte(md)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var sb strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Text:
			if entering {
				sb.Write(node.Segment.Value(src))
				if node.SoftLineBreak() || node.HardLineBreak() {
					sb.WriteByte('\n')
				}
			}
		case *ast.String:
			if entering {
				sb.Write(node.Value)
			}
		case *ast.AutoLink:
			if entering {
				sb.Write(node.Label(src))
			}
		case *ast.RawHTML, *ast.HTMLBlock, *ast.ThematicBreak:
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			if entering {
				lines := n.Lines()
				for i := 0; i < lines.Len(); i++ {
					seg := lines.At(i)
					sb.Write(seg.Value(src))
				}
				endBlock(&sb, n)
			}
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			if entering {
				sb.WriteString(itemMarker(node))
			}
		case *ast.Paragraph, *ast.Heading, *ast.TextBlock, *ast.List:
			if !entering {
				endBlock(&sb, n)
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(blankRuns.ReplaceAllString(sb.String(), "\n\n"))
}

// endBlock terminates the current line, leaving a blank line after top-level blocks.
func endBlock(sb *strings.Builder, n ast.Node) {
	if !strings.HasSuffix(sb.String(), "\n") {
		sb.WriteByte('\n')
	}
	if _, top := n.Parent().(*ast.Document); top {
		sb.WriteByte('\n')
	}
}

func itemMarker(item *ast.ListItem) string {
	list, ok := item.Parent().(*ast.List)
	if !ok || !list.IsOrdered() {
		return "- "
	}
	idx := 0
	for c := list.FirstChild(); c != nil && c != ast.Node(item); c = c.NextSibling() {
		idx++
	}
	return fmt.Sprintf("%d. ", list.Start+idx)
}
