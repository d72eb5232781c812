package tokens

import (
	"strings"
	"unicode"
)

// TokenType categorizes a design token value.
type TokenType string

const (
	TypeColor      TokenType = "color"
	TypeSpacing    TokenType = "spacing"
	TypeTypography TokenType = "typography"
	TypeDuration   TokenType = "duration"
	TypeShadow     TokenType = "shadow"
	TypeRadius     TokenType = "radius"
)

// Token is a single design value with a fallback used when the primary
// value cannot be applied.
type Token struct {
	Value    string    `json:"value"`
	Fallback string    `json:"fallback,omitempty"`
	Type     TokenType `json:"type"`
}

// Tree holds the token set keyed by dotted path ("colors.brand.primary").
// Insertion order is preserved so that flattened output is deterministic.
type Tree struct {
	tokens map[string]Token
	order  []string
}

func NewTree() *Tree {
	return &Tree{tokens: make(map[string]Token)}
}

// registers a token under the given dotted path
func (t *Tree) Put(path string, tok Token) {
	if _, exists := t.tokens[path]; !exists {
		t.order = append(t.order, path)
	}
	t.tokens[path] = tok
}

// Lookup returns the token at path and whether it exists. It never panics,
// regardless of how malformed the path is.
func (t *Tree) Lookup(path string) (Token, bool) {
	tok, ok := t.tokens[path]
	return tok, ok
}

// Value resolves a token value: the declared value, else the caller's
// fallback, else the token's own fallback, else "".
func (t *Tree) Value(path, fallback string) string {
	tok, ok := t.tokens[path]
	if !ok {
		return fallback
	}
	if tok.Value != "" {
		return tok.Value
	}
	if fallback != "" {
		return fallback
	}
	return tok.Fallback
}

// Walk visits every token in insertion order.
func (t *Tree) Walk(fn func(path string, tok Token)) {
	for _, path := range t.order {
		fn(path, t.tokens[path])
	}
}

func (t *Tree) Len() int {
	return len(t.order)
}

// Clone returns an independent copy of the tree.
func (t *Tree) Clone() *Tree {
	c := &Tree{
		tokens: make(map[string]Token, len(t.tokens)),
		order:  make([]string, len(t.order)),
	}
	copy(c.order, t.order)
	for path, tok := range t.tokens {
		c.tokens[path] = tok
	}
	return c
}

// Kebab converts a dotted token path to its CSS custom-property spelling:
// "colors.fontSize.xl" -> "colors-font-size-xl".
func Kebab(path string) string {
	var b strings.Builder
	for i, seg := range strings.Split(path, ".") {
		if i > 0 {
			b.WriteByte('-')
		}
		for j, r := range seg {
			if unicode.IsUpper(r) {
				if j > 0 {
					b.WriteByte('-')
				}
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}

// PropertyName returns the CSS custom-property name for a token path,
// e.g. PropertyName("tf", "colors.brand.primary") -> "--tf-colors-brand-primary".
func PropertyName(prefix, path string) string {
	if prefix == "" {
		return "--" + Kebab(path)
	}
	return "--" + prefix + "-" + Kebab(path)
}

// CustomProperties flattens the tree into CSS custom-property pairs in
// insertion order. Each token contributes its value plus a parallel
// "-fallback" entry when a fallback is declared.
func (t *Tree) CustomProperties(prefix string) []Property {
	props := make([]Property, 0, len(t.order)*2)
	t.Walk(func(path string, tok Token) {
		name := PropertyName(prefix, path)
		props = append(props, Property{Name: name, Value: tok.Value})
		if tok.Fallback != "" {
			props = append(props, Property{Name: name + "-fallback", Value: tok.Fallback})
		}
	})
	return props
}

// Property is a single custom-property assignment.
type Property struct {
	Name  string
	Value string
}

// Stylesheet renders the whole tree as one CSS rule block, suitable for
// seeding a style element at startup.
func (t *Tree) Stylesheet(selector, prefix string) string {
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	for _, p := range t.CustomProperties(prefix) {
		b.WriteString("  ")
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(p.Value)
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
