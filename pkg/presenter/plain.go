package presenter

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/entrhq/fpview/pkg/format"
)

// Badge is the status badge carried by a slot value, if any.
type Badge int

const (
	BadgeNone Badge = iota
	BadgeSuccess
	BadgeFailure
)

// Plain is a slot value decoded for non-HTML front ends.
type Plain struct {
	Text  string
	Badge Badge
}

var fragmentContext = &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}

// Decode turns an escaped slot value back into plain text and picks up the
// status badge class.
func Decode(fragment string) Plain {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), fragmentContext)
	if err != nil {
		return Plain{Text: html.UnescapeString(fragment)}
	}

	var p Plain
	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
		case html.ElementNode:
			if n.DataAtom == atom.Span {
				p.Badge = badgeFromClass(classOf(n))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	p.Text = sb.String()
	return p
}

func classOf(n *html.Node) string {
	for _, a := range n.Attr {
		if a.Key == "class" {
			return a.Val
		}
	}
	return ""
}

func badgeFromClass(class string) Badge {
	switch strings.Join(strings.Fields(class), " ") {
	case format.BadgeClassSuccess:
		return BadgeSuccess
	case format.BadgeClassFailure:
		return BadgeFailure
	default:
		return BadgeNone
	}
}
