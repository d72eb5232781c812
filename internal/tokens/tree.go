package tokens

type def struct {
	path string
	tok  Token
}

// DefaultTree builds the canonical base token set. Themes override these
// values at runtime; they never remove paths.
func DefaultTree() *Tree {
	defs := []def{
		// brand colors
		{"colors.brand.primary", Token{Value: "#7D56F4", Fallback: "#6C4FD8", Type: TypeColor}},
		{"colors.brand.secondary", Token{Value: "#8AA4EB", Fallback: "#7B93D4", Type: TypeColor}},
		{"colors.brand.accent", Token{Value: "#F780E2", Fallback: "#E070CC", Type: TypeColor}},

		// semantic colors
		{"colors.semantic.success", Token{Value: "#04B575", Fallback: "#059669", Type: TypeColor}},
		{"colors.semantic.error", Token{Value: "#F7544E", Fallback: "#DC2626", Type: TypeColor}},
		{"colors.semantic.warning", Token{Value: "#FFAA00", Fallback: "#D97706", Type: TypeColor}},
		{"colors.semantic.info", Token{Value: "#58A6FF", Fallback: "#0284C7", Type: TypeColor}},

		// text colors
		{"colors.text.primary", Token{Value: "#FAFAFA", Fallback: "#FFFFFF", Type: TypeColor}},
		{"colors.text.secondary", Token{Value: "#B4B4B4", Fallback: "#CCCCCC", Type: TypeColor}},
		{"colors.text.muted", Token{Value: "#6C6C6C", Fallback: "#888888", Type: TypeColor}},
		{"colors.text.inverse", Token{Value: "#1A1B26", Fallback: "#000000", Type: TypeColor}},

		// backgrounds
		{"colors.background.primary", Token{Value: "#0B0F14", Fallback: "#000000", Type: TypeColor}},
		{"colors.background.secondary", Token{Value: "#121821", Fallback: "#1A1A1A", Type: TypeColor}},
		{"colors.background.elevated", Token{Value: "#1C2430", Fallback: "#242424", Type: TypeColor}},

		// borders
		{"colors.border.default", Token{Value: "#223043", Fallback: "#444444", Type: TypeColor}},
		{"colors.border.focus", Token{Value: "#7AA2F7", Fallback: "#5B8DEF", Type: TypeColor}},
		{"colors.border.subtle", Token{Value: "#182030", Fallback: "#333333", Type: TypeColor}},

		// typography
		{"typography.fontFamily.base", Token{Value: "Inter, system-ui, sans-serif", Fallback: "sans-serif", Type: TypeTypography}},
		{"typography.fontFamily.mono", Token{Value: "JetBrains Mono, monospace", Fallback: "monospace", Type: TypeTypography}},
		{"typography.fontSize.xs", Token{Value: "0.75rem", Fallback: "12px", Type: TypeTypography}},
		{"typography.fontSize.sm", Token{Value: "0.875rem", Fallback: "14px", Type: TypeTypography}},
		{"typography.fontSize.base", Token{Value: "1rem", Fallback: "16px", Type: TypeTypography}},
		{"typography.fontSize.lg", Token{Value: "1.125rem", Fallback: "18px", Type: TypeTypography}},
		{"typography.fontSize.xl", Token{Value: "1.25rem", Fallback: "20px", Type: TypeTypography}},
		{"typography.fontSize.xxl", Token{Value: "1.5rem", Fallback: "24px", Type: TypeTypography}},
		{"typography.fontWeight.normal", Token{Value: "400", Fallback: "normal", Type: TypeTypography}},
		{"typography.fontWeight.medium", Token{Value: "500", Fallback: "normal", Type: TypeTypography}},
		{"typography.fontWeight.bold", Token{Value: "700", Fallback: "bold", Type: TypeTypography}},
		{"typography.lineHeight.tight", Token{Value: "1.25", Fallback: "1.2", Type: TypeTypography}},
		{"typography.lineHeight.normal", Token{Value: "1.5", Fallback: "1.4", Type: TypeTypography}},
		{"typography.lineHeight.relaxed", Token{Value: "1.75", Fallback: "1.6", Type: TypeTypography}},

		// spacing scale
		{"spacing.xs", Token{Value: "0.25rem", Fallback: "4px", Type: TypeSpacing}},
		{"spacing.sm", Token{Value: "0.5rem", Fallback: "8px", Type: TypeSpacing}},
		{"spacing.md", Token{Value: "1rem", Fallback: "16px", Type: TypeSpacing}},
		{"spacing.lg", Token{Value: "1.5rem", Fallback: "24px", Type: TypeSpacing}},
		{"spacing.xl", Token{Value: "2rem", Fallback: "32px", Type: TypeSpacing}},
		{"spacing.xxl", Token{Value: "3rem", Fallback: "48px", Type: TypeSpacing}},

		// radii
		{"radius.none", Token{Value: "0", Fallback: "0", Type: TypeRadius}},
		{"radius.sm", Token{Value: "0.25rem", Fallback: "4px", Type: TypeRadius}},
		{"radius.md", Token{Value: "0.5rem", Fallback: "8px", Type: TypeRadius}},
		{"radius.lg", Token{Value: "1rem", Fallback: "16px", Type: TypeRadius}},
		{"radius.full", Token{Value: "9999px", Fallback: "50%", Type: TypeRadius}},

		// elevation
		{"shadow.sm", Token{Value: "0 1px 2px rgba(0,0,0,0.25)", Fallback: "none", Type: TypeShadow}},
		{"shadow.md", Token{Value: "0 4px 8px rgba(0,0,0,0.35)", Fallback: "none", Type: TypeShadow}},
		{"shadow.lg", Token{Value: "0 12px 24px rgba(0,0,0,0.45)", Fallback: "none", Type: TypeShadow}},

		// animation
		{"duration.fast", Token{Value: "120ms", Fallback: "100ms", Type: TypeDuration}},
		{"duration.normal", Token{Value: "240ms", Fallback: "200ms", Type: TypeDuration}},
		{"duration.slow", Token{Value: "480ms", Fallback: "400ms", Type: TypeDuration}},

		// stacking order
		{"zIndex.dropdown", Token{Value: "1000", Fallback: "100", Type: TypeSpacing}},
		{"zIndex.modal", Token{Value: "1300", Fallback: "200", Type: TypeSpacing}},
		{"zIndex.toast", Token{Value: "1500", Fallback: "300", Type: TypeSpacing}},

		// layout breakpoints
		{"breakpoint.sm", Token{Value: "640px", Fallback: "600px", Type: TypeSpacing}},
		{"breakpoint.md", Token{Value: "768px", Fallback: "720px", Type: TypeSpacing}},
		{"breakpoint.lg", Token{Value: "1024px", Fallback: "960px", Type: TypeSpacing}},
		{"breakpoint.xl", Token{Value: "1280px", Fallback: "1200px", Type: TypeSpacing}},
	}

	tree := NewTree()
	for _, d := range defs {
		tree.Put(d.path, d.tok)
	}
	return tree
}
