package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// blockElements are elements whose boundaries introduce line breaks in
// rendered text, mirroring how a browser lays them out.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"td": true, "th": true, "tr": true, "ul": true,
}

// skippedElements never contribute to visible text.
var skippedElements = map[string]bool{
	"head": true, "noscript": true, "script": true, "style": true,
	"template": true, "title": true,
}

// renderText walks the selection's nodes and produces text the way a
// browser would render it: inline content joined on one line, block
// elements separated by newlines. goquery's own Text method concatenates
// text nodes with no separators, which collapses distinct visual lines
// into one and breaks line-oriented classification.
func renderText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		renderNode(&b, n)
	}
	return strings.TrimSpace(b.String())
}

func renderNode(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		writeCollapsed(b, n.Data)
		return
	case html.ElementNode:
		if skippedElements[n.Data] || hasAttr(n, "hidden") {
			return
		}
		if n.Data == "br" {
			b.WriteByte('\n')
			return
		}
		block := blockElements[n.Data]
		if block {
			ensureNewline(b)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			renderNode(b, c)
		}
		if block {
			ensureNewline(b)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderNode(b, c)
	}
}

// writeCollapsed writes text with runs of whitespace collapsed to a
// single space, the way HTML whitespace renders.
func writeCollapsed(b *strings.Builder, text string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return
	}
	if b.Len() > 0 && !endsWithSeparator(b) {
		b.WriteByte(' ')
	}
	b.WriteString(strings.Join(fields, " "))
}

func ensureNewline(b *strings.Builder) {
	if b.Len() == 0 {
		return
	}
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteByte('\n')
	}
}

func endsWithSeparator(b *strings.Builder) bool {
	s := b.String()
	return strings.HasSuffix(s, "\n") || strings.HasSuffix(s, " ")
}

func hasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}
