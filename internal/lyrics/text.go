package lyrics

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Dd: true, atom.Div: true, atom.Dl: true, atom.Dt: true, atom.Fieldset: true,
	atom.Figcaption: true, atom.Figure: true, atom.Footer: true, atom.Form: true,
	atom.H1: true, atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Header: true, atom.Hr: true, atom.Li: true, atom.Main: true, atom.Nav: true,
	atom.Ol: true, atom.P: true, atom.Pre: true, atom.Section: true, atom.Table: true,
	atom.Tr: true, atom.Ul: true,
}

var skippedElements = map[atom.Atom]bool{
	atom.Script: true, atom.Style: true, atom.Noscript: true, atom.Template: true,
	atom.Head: true,
}

// lineBreak stands in for <br> while the tree is flattened, so explicit
// breaks can be told apart from block boundaries.
const lineBreak = "\u2028"

var textSpace = strings.NewReplacer("\n", " ", lineBreak, " ")

// nodeText renders the visible text of a selection the way a browser lays it
// out: <br> and block boundaries break lines, runs of whitespace collapse and
// every line is trimmed. Only a repeated <br> yields an empty line.
func nodeText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeNode(&b, n)
	}

	var out []string
	for _, block := range strings.Split(b.String(), "\n") {
		var kept []string
		for _, line := range strings.Split(block, lineBreak) {
			line = strings.Join(strings.Fields(line), " ")
			if line == "" {
				if len(kept) > 0 && kept[len(kept)-1] != "" {
					kept = append(kept, "")
				}
				continue
			}
			kept = append(kept, line)
		}
		for len(kept) > 0 && kept[len(kept)-1] == "" {
			kept = kept[:len(kept)-1]
		}
		out = append(out, kept...)
	}
	return strings.Join(out, "\n")
}

func writeNode(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(textSpace.Replace(n.Data))
		return
	case html.ElementNode:
		if skippedElements[n.DataAtom] {
			return
		}
		if n.DataAtom == atom.Br {
			b.WriteString(lineBreak)
			return
		}
	case html.CommentNode, html.DoctypeNode:
		return
	}

	block := n.Type == html.ElementNode && blockElements[n.DataAtom]
	if block {
		b.WriteString("\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNode(b, c)
	}
	if block {
		b.WriteString("\n")
	}
}
