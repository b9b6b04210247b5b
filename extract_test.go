package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Extract:
// - Module docstring becomes the leading module entry
// - Empty source yields no entries
// - One entry per top-level declaration, in source order
// - Docstring associated only when it is the first body statement
// - Docstrings are stripped of delimiters and de-indented
// - Methods nest one level deeper than their class
// - Nested functions are extracted with their own nesting level
// - Decorated declarations are unwrapped
// - Broken declarations are skipped without losing the rest of the file

func TestExtractModuleDocstring(t *testing.T) {
	t.Parallel()

	entries := Extract("mod", []byte(`"""Utility helpers."""

def add(a, b):
    """Adds two numbers."""
    return a + b
`))

	require.Len(t, entries, 2)
	assert.Equal(t, DocEntry{
		Name:       "mod",
		Kind:       KindModule,
		Doc:        "Utility helpers.",
		ParentKind: KindModule,
	}, entries[0])
	assert.Equal(t, DocEntry{
		Name:       "add",
		Kind:       KindFunction,
		Doc:        "Adds two numbers.",
		Signature:  "add(a, b)",
		Nesting:    1,
		ParentKind: KindModule,
	}, entries[1])
}

func TestExtractEmptySource(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Extract("empty", nil))
	assert.Empty(t, Extract("blank", []byte("\n\n")))
}

func TestExtractTopLevelOrder(t *testing.T) {
	t.Parallel()

	entries := Extract("mod", []byte(`def first():
    pass

class Second:
    pass

def third():
    pass
`))

	require.Len(t, entries, 3)
	assert.Equal(t, "first", entries[0].Name)
	assert.Equal(t, "Second", entries[1].Name)
	assert.Equal(t, "third", entries[2].Name)
	for _, entry := range entries {
		assert.Equal(t, 1, entry.Nesting)
		assert.Empty(t, entry.Doc)
	}
}

func TestExtractDocstringMustBeFirstStatement(t *testing.T) {
	t.Parallel()

	entries := Extract("mod", []byte(`def late():
    x = 1
    """Not a docstring."""
    return x
`))

	require.Len(t, entries, 1)
	assert.Equal(t, "late", entries[0].Name)
	assert.Empty(t, entries[0].Doc)
}

func TestExtractDedentsDocstring(t *testing.T) {
	t.Parallel()

	entries := Extract("mod", []byte(`class Calculator:
    """Accumulating calculator."""

    def add(self, amount):
        """Adds an amount to the accumulator.

        Arguments:
            amount (int): the amount to add
        """
        self.value += amount
`))

	require.Len(t, entries, 2)
	assert.Equal(t, "Accumulating calculator.", entries[0].Doc)
	assert.Equal(t, "Adds an amount to the accumulator.\n\nArguments:\n    amount (int): the amount to add", entries[1].Doc)
}

func TestExtractMethodNesting(t *testing.T) {
	t.Parallel()

	entries := Extract("mod", []byte(`class User:
    """A user."""

    def save(self):
        """Persists the user."""
        pass
`))

	require.Len(t, entries, 2)
	user, save := entries[0], entries[1]
	assert.Equal(t, KindClass, user.Kind)
	assert.Equal(t, 1, user.Nesting)
	assert.Equal(t, KindFunction, save.Kind)
	assert.Equal(t, KindClass, save.ParentKind)
	assert.Greater(t, save.Nesting, user.Nesting)
}

func TestExtractNestedFunction(t *testing.T) {
	t.Parallel()

	entries := Extract("mod", []byte(`def outer():
    """Outer."""
    def inner():
        """Inner."""
        pass
`))

	require.Len(t, entries, 2)
	assert.Equal(t, "inner", entries[1].Name)
	assert.Equal(t, 2, entries[1].Nesting)
	assert.Equal(t, KindFunction, entries[1].ParentKind)
	assert.Equal(t, "Inner.", entries[1].Doc)
}

func TestExtractDecoratedDeclarations(t *testing.T) {
	t.Parallel()

	entries := Extract("mod", []byte(`@lru_cache
def cached(key):
    """Caches things."""
    return key

@register
class Plugin:
    """A plugin."""
`))

	require.Len(t, entries, 2)
	assert.Equal(t, "cached", entries[0].Name)
	assert.Equal(t, "Caches things.", entries[0].Doc)
	assert.Equal(t, "Plugin", entries[1].Name)
	assert.Equal(t, KindClass, entries[1].Kind)
}

func TestExtractSignatureWithDefaults(t *testing.T) {
	t.Parallel()

	entries := Extract("mod", []byte(`def greet(name, punct='!'):
    """Greets someone."""
    return name + punct
`))

	require.Len(t, entries, 1)
	assert.Equal(t, "greet(name, punct='!')", entries[0].Signature)
}

func TestExtractSingleQuotedDocstring(t *testing.T) {
	t.Parallel()

	entries := Extract("mod", []byte(`def short():
    'One liner.'
    pass
`))

	require.Len(t, entries, 1)
	assert.Equal(t, "One liner.", entries[0].Doc)
}

func TestExtractSurvivesBrokenDeclarations(t *testing.T) {
	t.Parallel()

	entries := Extract("mod", []byte(`def good():
    """Good."""
    pass

def 123bad(:
`))

	require.NotEmpty(t, entries)
	assert.Equal(t, "good", entries[0].Name)
	assert.Equal(t, "Good.", entries[0].Doc)
}
