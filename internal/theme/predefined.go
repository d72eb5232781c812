package theme

func builtinThemes() []*Theme {
	return []*Theme{
		LightTheme(),
		DarkTheme(),
		HighContrastTheme(),
		MidnightTheme(),
		SepiaTheme(),
		SystemTheme(),
	}
}

// BuiltinIDs lists the selectable built-in themes in display order.
func BuiltinIDs() []string {
	return []string{
		"light",
		"dark",
		"high-contrast",
		"midnight",
		"sepia",
		"system",
	}
}

func LightTheme() *Theme {
	return &Theme{
		ID:          "light",
		Name:        "Light",
		Description: "Bright surfaces with dark text",
		Tokens: map[string]string{
			"colors.brand.primary":   "#5B3CC4",
			"colors.brand.secondary": "#2563EB",
			"colors.brand.accent":    "#DB2777",

			"colors.semantic.success": "#059669",
			"colors.semantic.error":   "#DC2626",
			"colors.semantic.warning": "#D97706",
			"colors.semantic.info":    "#0284C7",

			"colors.text.primary":   "#1F2937",
			"colors.text.secondary": "#6B7280",
			"colors.text.muted":     "#9CA3AF",
			"colors.text.inverse":   "#FFFFFF",

			"colors.background.primary":   "#FFFFFF",
			"colors.background.secondary": "#F3F4F6",
			"colors.background.elevated":  "#FFFFFF",

			"colors.border.default": "#D1D5DB",
			"colors.border.focus":   "#2563EB",
			"colors.border.subtle":  "#E5E7EB",

			"shadow.sm": "0 1px 2px rgba(0,0,0,0.08)",
			"shadow.md": "0 4px 8px rgba(0,0,0,0.12)",
			"shadow.lg": "0 12px 24px rgba(0,0,0,0.16)",
		},
		Accessibility: Accessibility{
			ContrastRatio:          4.5,
			ColorBlindnessFriendly: true,
			ReducedMotion:          false,
		},
	}
}

func DarkTheme() *Theme {
	return &Theme{
		ID:          "dark",
		Name:        "Dark",
		Description: "Low-light palette in the Tokyo Night family",
		Tokens: map[string]string{
			"colors.brand.primary":   "#BB9AF7",
			"colors.brand.secondary": "#7AA2F7",
			"colors.brand.accent":    "#F7768E",

			"colors.semantic.success": "#9ECE6A",
			"colors.semantic.error":   "#F7768E",
			"colors.semantic.warning": "#E0AF68",
			"colors.semantic.info":    "#7DCFFF",

			"colors.text.primary":   "#C0CAF5",
			"colors.text.secondary": "#9AA5CE",
			"colors.text.muted":     "#565F89",
			"colors.text.inverse":   "#1A1B26",

			"colors.background.primary":   "#1A1B26",
			"colors.background.secondary": "#24283B",
			"colors.background.elevated":  "#2F3549",

			"colors.border.default": "#3B4261",
			"colors.border.focus":   "#7AA2F7",
			"colors.border.subtle":  "#2A2F45",
		},
		Accessibility: Accessibility{
			ContrastRatio:          4.5,
			ColorBlindnessFriendly: true,
			ReducedMotion:          false,
		},
	}
}

func HighContrastTheme() *Theme {
	return &Theme{
		ID:          "high-contrast",
		Name:        "High Contrast",
		Description: "Maximum contrast for low-vision use",
		Tokens: map[string]string{
			"colors.brand.primary":   "#FFFF00",
			"colors.brand.secondary": "#00FFFF",
			"colors.brand.accent":    "#FF00FF",

			"colors.semantic.success": "#00FF00",
			"colors.semantic.error":   "#FF0000",
			"colors.semantic.warning": "#FFAA00",
			"colors.semantic.info":    "#00AAFF",

			"colors.text.primary":   "#FFFFFF",
			"colors.text.secondary": "#FFFFFF",
			"colors.text.muted":     "#C0C0C0",
			"colors.text.inverse":   "#000000",

			"colors.background.primary":   "#000000",
			"colors.background.secondary": "#000000",
			"colors.background.elevated":  "#101010",

			"colors.border.default": "#FFFFFF",
			"colors.border.focus":   "#FFFF00",
			"colors.border.subtle":  "#808080",

			"duration.fast":   "0ms",
			"duration.normal": "0ms",
			"duration.slow":   "0ms",
		},
		Accessibility: Accessibility{
			ContrastRatio:          7.0,
			ColorBlindnessFriendly: true,
			ReducedMotion:          true,
		},
	}
}

func MidnightTheme() *Theme {
	return &Theme{
		ID:          "midnight",
		Name:        "Midnight",
		Description: "Near-black blue palette for late sessions",
		Tokens: map[string]string{
			"colors.brand.primary":   "#5B8DEF",
			"colors.brand.secondary": "#58A6FF",
			"colors.brand.accent":    "#BC8CFF",

			"colors.semantic.success": "#3FB950",
			"colors.semantic.error":   "#F85149",
			"colors.semantic.warning": "#D29922",
			"colors.semantic.info":    "#58A6FF",

			"colors.text.primary":   "#E6EDF3",
			"colors.text.secondary": "#8B9AAE",
			"colors.text.muted":     "#5C6B80",
			"colors.text.inverse":   "#0B0F14",

			"colors.background.primary":   "#0B0F14",
			"colors.background.secondary": "#121821",
			"colors.background.elevated":  "#1B2430",

			"colors.border.default": "#223043",
			"colors.border.focus":   "#5B8DEF",
			"colors.border.subtle":  "#182030",
		},
		Accessibility: Accessibility{
			ContrastRatio:          4.5,
			ColorBlindnessFriendly: false,
			ReducedMotion:          false,
		},
	}
}

func SepiaTheme() *Theme {
	return &Theme{
		ID:          "sepia",
		Name:        "Sepia",
		Description: "Warm paper tones for long reading",
		Tokens: map[string]string{
			"colors.brand.primary":   "#8B4513",
			"colors.brand.secondary": "#A0522D",
			"colors.brand.accent":    "#B85450",

			"colors.semantic.success": "#3D6B35",
			"colors.semantic.error":   "#A94442",
			"colors.semantic.warning": "#8A6D3B",
			"colors.semantic.info":    "#31708F",

			"colors.text.primary":   "#3B2F2F",
			"colors.text.secondary": "#6B5B4F",
			"colors.text.muted":     "#8C7B6B",
			"colors.text.inverse":   "#F4ECD8",

			"colors.background.primary":   "#F4ECD8",
			"colors.background.secondary": "#EAE0C8",
			"colors.background.elevated":  "#FBF5E6",

			"colors.border.default": "#D3C4A9",
			"colors.border.focus":   "#8B4513",
			"colors.border.subtle":  "#E2D7BE",
		},
		Accessibility: Accessibility{
			ContrastRatio:          4.5,
			ColorBlindnessFriendly: true,
			ReducedMotion:          false,
		},
	}
}

// SystemTheme is the automatic theme: it holds no tokens and resolves to
// its light or dark target based on the detected color-scheme preference.
func SystemTheme() *Theme {
	return &Theme{
		ID:          "system",
		Name:        "System",
		Description: "Follows the OS color-scheme preference",
		IsAutomatic: true,
		LightTheme:  "light",
		DarkTheme:   "dark",
	}
}
