package main

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
)

// renderMarkdown turns the entries extracted from one source file into a
// Markdown document. The document always opens with a level-one heading for
// the dotted module name; the heading level of every other entry follows its
// nesting (## for top-level declarations, ### for class members, ...).
func renderMarkdown(name string, entries []DocEntry) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", name)
	for _, entry := range entries {
		switch entry.Kind {
		case KindModule:
			if entry.Doc != "" {
				buf.WriteString(entry.Doc)
				buf.WriteString("\n\n")
			}
		case KindClass:
			fmt.Fprintf(&buf, "%s Class %s\n", headingMarker(entry.Nesting), entry.Name)
			writeEntryDoc(&buf, entry.Doc)
		case KindFunction:
			label, title := "Function", entry.Signature
			if entry.ParentKind == KindClass {
				// Class members are labelled methods and listed by name
				// alone, without the self-carrying parameter list.
				label, title = "Method", entry.Name
			}
			fmt.Fprintf(&buf, "%s %s %s\n", headingMarker(entry.Nesting), label, title)
			writeEntryDoc(&buf, entry.Doc)
		}
	}
	return buf.Bytes()
}

func writeEntryDoc(buf *bytes.Buffer, doc string) {
	if doc != "" {
		buf.WriteString(doc)
		buf.WriteString("\n")
	}
	buf.WriteString("\n")
}

func headingMarker(nesting int) string {
	level := nesting + 1
	if level > 6 {
		level = 6
	}
	return strings.Repeat("#", level)
}

// renderHTML converts an already rendered Markdown document into a
// standalone HTML page.
func renderHTML(name string, markdown []byte) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.New().Convert(markdown, &body); err != nil {
		return nil, fmt.Errorf("rendering %s to HTML: %w", name, err)
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", html.EscapeString(name))
	buf.Write(body.Bytes())
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}
