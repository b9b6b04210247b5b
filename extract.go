package main

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	python "github.com/tree-sitter/tree-sitter-python/bindings/go"
)

// Kind classifies a documented declaration.
type Kind string

const (
	KindModule   Kind = "module"
	KindClass    Kind = "class"
	KindFunction Kind = "function"
)

// DocEntry is one documented declaration, in order of appearance in the
// source file.
type DocEntry struct {
	Name string
	Kind Kind
	// Doc is the declaration's docstring with quote delimiters stripped and
	// common indentation removed. Empty when the declaration has none.
	Doc string
	// Signature is the declaration name plus its parameter list as written
	// in the source. Functions only.
	Signature string
	// Nesting is 0 for the module itself, 1 for top-level declarations and
	// grows by one per enclosing class or function.
	Nesting    int
	ParentKind Kind
}

var pythonLanguage = sitter.NewLanguage(python.Language())

// Extract parses Python source text and returns one DocEntry per discovered
// declaration. name becomes the module entry's name; the module entry is only
// emitted when the file carries a module docstring, so an empty file yields
// no entries. Source that tree-sitter cannot make sense of degrades locally:
// a broken declaration is skipped, the rest of the file is still extracted.
func Extract(name string, source []byte) []DocEntry {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(pythonLanguage)

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil
	}
	defer tree.Close()

	root := tree.RootNode()
	var entries []DocEntry
	if doc, ok := blockDocstring(root, source); ok {
		entries = append(entries, DocEntry{Name: name, Kind: KindModule, Doc: doc, ParentKind: KindModule})
	}
	return appendDeclarations(entries, root, source, 1, KindModule)
}

// appendDeclarations walks the direct statements of a module or declaration
// body and emits entries for class and function definitions, recursing into
// their bodies for nested declarations.
func appendDeclarations(entries []DocEntry, parent *sitter.Node, source []byte, depth int, parentKind Kind) []DocEntry {
	for i := uint(0); i < parent.ChildCount(); i++ {
		node := parent.Child(i)
		if node.Kind() == "decorated_definition" {
			if def := node.ChildByFieldName("definition"); def != nil {
				node = def
			}
		}
		switch node.Kind() {
		case "class_definition":
			entries = appendClass(entries, node, source, depth, parentKind)
		case "function_definition":
			entries = appendFunction(entries, node, source, depth, parentKind)
		}
	}
	return entries
}

func appendClass(entries []DocEntry, node *sitter.Node, source []byte, depth int, parentKind Kind) []DocEntry {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return entries
	}
	entry := DocEntry{
		Name:       extractNodeText(nameNode, source),
		Kind:       KindClass,
		Nesting:    depth,
		ParentKind: parentKind,
	}
	body := node.ChildByFieldName("body")
	if body != nil {
		if doc, ok := blockDocstring(body, source); ok {
			entry.Doc = doc
		}
	}
	entries = append(entries, entry)
	if body != nil {
		entries = appendDeclarations(entries, body, source, depth+1, KindClass)
	}
	return entries
}

func appendFunction(entries []DocEntry, node *sitter.Node, source []byte, depth int, parentKind Kind) []DocEntry {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return entries
	}
	entry := DocEntry{
		Name:       extractNodeText(nameNode, source),
		Kind:       KindFunction,
		Signature:  buildFunctionSignature(node, source),
		Nesting:    depth,
		ParentKind: parentKind,
	}
	body := node.ChildByFieldName("body")
	if body != nil {
		if doc, ok := blockDocstring(body, source); ok {
			entry.Doc = doc
		}
	}
	entries = append(entries, entry)
	if body != nil {
		entries = appendDeclarations(entries, body, source, depth+1, KindFunction)
	}
	return entries
}

// buildFunctionSignature renders the declaration name plus its parameter
// list as typed in the source, e.g. "add(a, b=2)".
func buildFunctionSignature(node *sitter.Node, source []byte) string {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return ""
	}
	sig := extractNodeText(nameNode, source)
	if params := node.ChildByFieldName("parameters"); params != nil {
		sig += extractNodeText(params, source)
	} else {
		sig += "()"
	}
	return sig
}

// blockDocstring returns the docstring of a module or declaration body. The
// docstring must be the first statement of the block (blank lines and
// comments do not break the association, any other statement does).
func blockDocstring(block *sitter.Node, source []byte) (string, bool) {
	for i := uint(0); i < block.ChildCount(); i++ {
		child := block.Child(i)
		if child.Kind() == "comment" {
			continue
		}
		if child.Kind() != "expression_statement" {
			return "", false
		}
		str := child.Child(0)
		if str == nil || str.Kind() != "string" {
			return "", false
		}
		return cleanDocstring(extractNodeText(str, source)), true
	}
	return "", false
}

// extractNodeText extracts the text content of a tree-sitter node.
func extractNodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// cleanDocstring strips the quote delimiters from a string literal and
// removes the common leading indentation, the way Python's inspect.cleandoc
// normalizes docstrings.
func cleanDocstring(literal string) string {
	return dedent(stripStringDelimiters(literal))
}

func stripStringDelimiters(literal string) string {
	// Skip prefix letters (r, b, u, f and combinations thereof).
	start := 0
	for start < len(literal) && literal[start] != '"' && literal[start] != '\'' {
		start++
	}
	s := literal[start:]
	for _, quote := range []string{`"""`, `'''`, `"`, `'`} {
		if len(s) >= 2*len(quote) && strings.HasPrefix(s, quote) && strings.HasSuffix(s, quote) {
			return s[len(quote) : len(s)-len(quote)]
		}
	}
	return s
}

func dedent(s string) string {
	lines := strings.Split(s, "\n")
	margin := -1
	for _, line := range lines[1:] {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		if indent := len(line) - len(trimmed); margin < 0 || indent < margin {
			margin = indent
		}
	}
	cleaned := make([]string, 0, len(lines))
	cleaned = append(cleaned, strings.TrimSpace(lines[0]))
	for _, line := range lines[1:] {
		switch {
		case margin > 0 && len(line) >= margin:
			line = line[margin:]
		case margin > 0:
			line = strings.TrimLeft(line, " \t")
		}
		cleaned = append(cleaned, strings.TrimRight(line, " \t"))
	}
	return strings.Trim(strings.Join(cleaned, "\n"), "\n")
}
