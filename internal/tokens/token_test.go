package tokens

import (
	"strings"
	"testing"
)

func TestTreeValue(t *testing.T) {
	tree := NewTree()
	tree.Put("colors.brand.primary", Token{Value: "#7D56F4", Fallback: "#6C4FD8", Type: TypeColor})
	tree.Put("colors.empty", Token{Fallback: "#000000", Type: TypeColor})

	tests := []struct {
		name     string
		path     string
		fallback string
		want     string
	}{
		{
			name: "declared value wins",
			path: "colors.brand.primary",
			want: "#7D56F4",
		},
		{
			name:     "declared value wins over caller fallback",
			path:     "colors.brand.primary",
			fallback: "#FFFFFF",
			want:     "#7D56F4",
		},
		{
			name:     "absent path uses caller fallback",
			path:     "colors.brand.missing",
			fallback: "#111111",
			want:     "#111111",
		},
		{
			name: "absent path without fallback is empty",
			path: "colors.brand.missing",
			want: "",
		},
		{
			name:     "empty value prefers caller fallback",
			path:     "colors.empty",
			fallback: "#222222",
			want:     "#222222",
		},
		{
			name: "empty value falls back to declared fallback",
			path: "colors.empty",
			want: "#000000",
		},
		{
			name: "malformed path never panics",
			path: "....",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tree.Value(tt.path, tt.fallback)
			if got != tt.want {
				t.Errorf("Value(%q, %q) = %q, want %q", tt.path, tt.fallback, got, tt.want)
			}
		})
	}
}

func TestDefaultTreeLookup(t *testing.T) {
	tree := DefaultTree()

	// every declared path resolves to its declared value
	tree.Walk(func(path string, tok Token) {
		got := tree.Value(path, "")
		if got != tok.Value {
			t.Errorf("Value(%q) = %q, want %q", path, got, tok.Value)
		}
	})

	if _, ok := tree.Lookup("colors.brand.primary"); !ok {
		t.Error("expected colors.brand.primary in default tree")
	}
	if _, ok := tree.Lookup("does.not.exist"); ok {
		t.Error("unexpected token at does.not.exist")
	}
}

func TestKebab(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"colors.brand.primary", "colors-brand-primary"},
		{"typography.fontSize.xl", "typography-font-size-xl"},
		{"zIndex.modal", "z-index-modal"},
		{"spacing.md", "spacing-md"},
	}

	for _, tt := range tests {
		if got := Kebab(tt.path); got != tt.want {
			t.Errorf("Kebab(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestPropertyName(t *testing.T) {
	if got := PropertyName("tf", "colors.brand.primary"); got != "--tf-colors-brand-primary" {
		t.Errorf("PropertyName with prefix = %q", got)
	}
	if got := PropertyName("", "colors.brand.primary"); got != "--colors-brand-primary" {
		t.Errorf("PropertyName without prefix = %q", got)
	}
}

func TestCustomPropertiesOrderAndFallbacks(t *testing.T) {
	tree := NewTree()
	tree.Put("b.second", Token{Value: "2", Fallback: "two", Type: TypeSpacing})
	tree.Put("a.first", Token{Value: "1", Type: TypeSpacing})

	props := tree.CustomProperties("")
	if len(props) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(props))
	}

	// insertion order, not lexical order
	if props[0].Name != "--b-second" || props[0].Value != "2" {
		t.Errorf("props[0] = %+v", props[0])
	}
	if props[1].Name != "--b-second-fallback" || props[1].Value != "two" {
		t.Errorf("props[1] = %+v", props[1])
	}
	if props[2].Name != "--a-first" {
		t.Errorf("props[2] = %+v", props[2])
	}
}

func TestStylesheet(t *testing.T) {
	tree := NewTree()
	tree.Put("colors.brand.primary", Token{Value: "#7D56F4", Type: TypeColor})

	css := tree.Stylesheet(":root", "")
	if !strings.HasPrefix(css, ":root {\n") {
		t.Errorf("stylesheet missing selector: %q", css)
	}
	if !strings.Contains(css, "  --colors-brand-primary: #7D56F4;\n") {
		t.Errorf("stylesheet missing property: %q", css)
	}
	if !strings.HasSuffix(css, "}") {
		t.Errorf("stylesheet not closed: %q", css)
	}
}

func TestClone(t *testing.T) {
	tree := NewTree()
	tree.Put("a", Token{Value: "1"})

	clone := tree.Clone()
	clone.Put("a", Token{Value: "changed"})
	clone.Put("b", Token{Value: "2"})

	if tree.Value("a", "") != "1" {
		t.Error("mutation of clone leaked into original")
	}
	if _, ok := tree.Lookup("b"); ok {
		t.Error("new path in clone leaked into original")
	}
}
