package tokens

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type ExportFormat string

const (
	FormatCSS   ExportFormat = "css"
	FormatJSON  ExportFormat = "json"
	FormatSCSS  ExportFormat = "scss"
	FormatFigma ExportFormat = "figma"
)

var ErrUnknownFormat = errors.New("unknown export format")

// Export renders the tree in the requested format. Unknown formats are a
// caller error and fail explicitly.
func Export(tree *Tree, format ExportFormat) (string, error) {
	switch format {
	case FormatCSS:
		return ExportCSS(tree, ""), nil
	case FormatJSON:
		return ExportJSON(tree)
	case FormatSCSS:
		return ExportSCSS(tree), nil
	case FormatFigma:
		return ExportFigma(tree)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

// ExportCSS renders a :root rule block of custom properties.
func ExportCSS(tree *Tree, prefix string) string {
	return tree.Stylesheet(":root", prefix)
}

// ExportJSON renders the nested token tree as pretty-printed JSON. The
// output parses back into the same tree (see ParseJSON).
func ExportJSON(tree *Tree) (string, error) {
	data, err := json.MarshalIndent(tree.Nested(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal token tree: %w", err)
	}
	return string(data), nil
}

// ExportSCSS renders one $camelCaseVar declaration per token.
func ExportSCSS(tree *Tree) string {
	var b strings.Builder
	tree.Walk(func(path string, tok Token) {
		b.WriteString("$")
		b.WriteString(camel(path))
		b.WriteString(": ")
		b.WriteString(tok.Value)
		b.WriteString(";\n")
	})
	return b.String()
}

type figmaToken struct {
	Value       string `json:"value"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// ExportFigma renders the Figma-tokens nested JSON structure.
func ExportFigma(tree *Tree) (string, error) {
	root := make(map[string]any)
	tree.Walk(func(path string, tok Token) {
		segs := strings.Split(path, ".")
		node := root
		for _, seg := range segs[:len(segs)-1] {
			child, ok := node[seg].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[seg] = child
			}
			node = child
		}
		node[segs[len(segs)-1]] = figmaToken{
			Value:       tok.Value,
			Type:        string(tok.Type),
			Description: describeFallback(tok),
		}
	})
	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal figma tokens: %w", err)
	}
	return string(data), nil
}

func describeFallback(tok Token) string {
	if tok.Fallback == "" {
		return ""
	}
	return "fallback: " + tok.Fallback
}

// Nested reconstructs the nested group structure from the dotted paths.
func (t *Tree) Nested() map[string]any {
	root := make(map[string]any)
	t.Walk(func(path string, tok Token) {
		segs := strings.Split(path, ".")
		node := root
		for _, seg := range segs[:len(segs)-1] {
			child, ok := node[seg].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[seg] = child
			}
			node = child
		}
		node[segs[len(segs)-1]] = tok
	})
	return root
}

// ParseJSON parses ExportJSON output back into a tree. Group nesting is
// restored from the object structure; a node with a "value" key is a leaf.
func ParseJSON(data string) (*Tree, error) {
	var root map[string]any
	if err := json.Unmarshal([]byte(data), &root); err != nil {
		return nil, fmt.Errorf("failed to parse token JSON: %w", err)
	}
	tree := NewTree()
	if err := parseGroup(tree, "", root); err != nil {
		return nil, err
	}
	return tree, nil
}

func parseGroup(tree *Tree, prefix string, node map[string]any) error {
	for key, raw := range node {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		child, ok := raw.(map[string]any)
		if !ok {
			return fmt.Errorf("unexpected value at %q in token JSON", path)
		}
		if _, leaf := child["value"]; leaf {
			tok := Token{}
			if v, ok := child["value"].(string); ok {
				tok.Value = v
			}
			if v, ok := child["fallback"].(string); ok {
				tok.Fallback = v
			}
			if v, ok := child["type"].(string); ok {
				tok.Type = TokenType(v)
			}
			tree.Put(path, tok)
			continue
		}
		if err := parseGroup(tree, path, child); err != nil {
			return err
		}
	}
	return nil
}

// camel converts a dotted path to a single camelCase identifier:
// "colors.brand.primary" -> "colorsBrandPrimary".
func camel(path string) string {
	var b strings.Builder
	for i, seg := range strings.Split(path, ".") {
		if seg == "" {
			continue
		}
		if i == 0 {
			b.WriteString(seg)
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(seg[1:])
	}
	return b.String()
}
