package theme

import "strings"

type declaration struct {
	name  string
	value string
}

type declarations []declaration

func (d declarations) css() string {
	var sb strings.Builder
	for _, decl := range d {
		sb.WriteString(decl.name)
		sb.WriteString(":")
		sb.WriteString(decl.value)
		sb.WriteString(";")
	}

	return sb.String()
}

// Custom properties per theme, layered on the Open Props color scales.
var variables = [...]declarations{
	Light: {
		{"color-scheme", "light"},
		{"--surface-0", "var(--gradient-28)"},
		{"--text-1", "var(--gray-12)"},
		{"--text-2", "var(--gray-7)"},
		{"--surface-1", "var(--gray-0)"},
		{"--surface-2", "var(--gray-1)"},
		{"--surface-3", "var(--gray-2)"},
		{"--surface-4", "var(--gray-3)"},
		{"--surface-shadow", "var(--gray-3-hsl)"},
		{"--shadow-strength", "10%"},
	},
	Dark: {
		{"color-scheme", "dark"},
		{"--surface-0", "conic-gradient(from 90deg at 50% 0%, #2a2a2a, 50%, #3a3a3a, #2a2a2a)"},
		{"--text-1", "var(--gray-1)"},
		{"--text-2", "var(--gray-5)"},
		{"--surface-1", "var(--gray-10)"},
		{"--surface-2", "var(--gray-9)"},
		{"--surface-3", "var(--gray-8)"},
		{"--surface-4", "var(--gray-7)"},
		{"--surface-shadow", "var(--gray-12-hsl)"},
		{"--shadow-strength", "80%"},
	},
	Dim: {
		{"color-scheme", "dark"},
		{"--surface-0", "var(--gradient-6)"},
		{"--text-1", "var(--gray-3)"},
		{"--text-2", "var(--gray-4)"},
		{"--surface-1", "var(--gray-8)"},
		{"--surface-2", "var(--gray-7)"},
		{"--surface-3", "var(--gray-6)"},
		{"--surface-4", "var(--gray-5)"},
		{"--surface-shadow", "var(--slate-12-hsl)"},
		{"--shadow-strength", "50%"},
	},
	Grape: {
		{"color-scheme", "dark"},
		{"--surface-0", "var(--gradient-23)"},
		{"--text-1", "var(--purple-1)"},
		{"--text-2", "var(--purple-3)"},
		{"--surface-1", "hsl(280 30% 8%)"},
		{"--surface-2", "hsl(280 25% 11%)"},
		{"--surface-3", "hsl(280 20% 14%)"},
		{"--surface-4", "hsl(280 15% 17%)"},
		{"--brand", "var(--purple-6)"},
		{"--text-highlight", "var(--pink-5)"},
		{"--surface-shadow", "280 20% 10%"},
		{"--shadow-strength", "60%"},
	},
}
