package styles

import (
	"regexp"
	"sort"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// themeMu protects themeRegistry and currentTheme.
var themeMu sync.RWMutex

// hexColorRegex validates hex color codes (#RRGGBB or #RRGGBBAA with alpha)
var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}([0-9A-Fa-f]{2})?$`)

// ColorPalette holds all theme colors.
type ColorPalette struct {
	Primary string `json:"primary" yaml:"primary"`
	Accent  string `json:"accent" yaml:"accent"`

	Success string `json:"success" yaml:"success"`
	Error   string `json:"error" yaml:"error"`

	TextPrimary   string `json:"textPrimary" yaml:"textPrimary"`
	TextSecondary string `json:"textSecondary" yaml:"textSecondary"`
	TextMuted     string `json:"textMuted" yaml:"textMuted"`

	BgSecondary string `json:"bgSecondary" yaml:"bgSecondary"`
	BgTertiary  string `json:"bgTertiary" yaml:"bgTertiary"`

	BorderNormal string `json:"borderNormal" yaml:"borderNormal"`
	BorderActive string `json:"borderActive" yaml:"borderActive"`

	ToastSuccessText string `json:"toastSuccessText" yaml:"toastSuccessText"`
	ToastErrorText   string `json:"toastErrorText" yaml:"toastErrorText"`
}

// Theme is a named palette.
type Theme struct {
	Name        string       `json:"name"`
	DisplayName string       `json:"displayName"`
	Colors      ColorPalette `json:"colors"`
}

// DefaultTheme is the built-in dark theme.
const DefaultTheme = "default"

var themeRegistry = map[string]Theme{
	DefaultTheme: {
		Name:        DefaultTheme,
		DisplayName: "Default Dark",
		Colors: ColorPalette{
			Primary:          "#7C3AED",
			Accent:           "#F59E0B",
			Success:          "#10B981",
			Error:            "#EF4444",
			TextPrimary:      "#F9FAFB",
			TextSecondary:    "#9CA3AF",
			TextMuted:        "#6B7280",
			BgSecondary:      "#1F2937",
			BgTertiary:       "#374151",
			BorderNormal:     "#374151",
			BorderActive:     "#7C3AED",
			ToastSuccessText: "#000000",
			ToastErrorText:   "#FFFFFF",
		},
	},
	"light": {
		Name:        "light",
		DisplayName: "Paper",
		Colors: ColorPalette{
			Primary:          "#6D28D9",
			Accent:           "#B45309",
			Success:          "#047857",
			Error:            "#B91C1C",
			TextPrimary:      "#111827",
			TextSecondary:    "#374151",
			TextMuted:        "#6B7280",
			BgSecondary:      "#F3F4F6",
			BgTertiary:       "#E5E7EB",
			BorderNormal:     "#D1D5DB",
			BorderActive:     "#6D28D9",
			ToastSuccessText: "#FFFFFF",
			ToastErrorText:   "#FFFFFF",
		},
	},
}

var currentTheme = DefaultTheme

// IsValidHexColor reports whether hex is #RRGGBB or #RRGGBBAA.
func IsValidHexColor(hex string) bool {
	return hexColorRegex.MatchString(hex)
}

// IsValidTheme reports whether name is a registered theme.
func IsValidTheme(name string) bool {
	themeMu.RLock()
	defer themeMu.RUnlock()
	_, ok := themeRegistry[name]
	return ok
}

// GetTheme returns the named theme, falling back to the default.
func GetTheme(name string) Theme {
	themeMu.RLock()
	defer themeMu.RUnlock()
	if t, ok := themeRegistry[name]; ok {
		return t
	}
	return themeRegistry[DefaultTheme]
}

// GetCurrentThemeName returns the name of the applied theme.
func GetCurrentThemeName() string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	return currentTheme
}

// ListThemes returns the registered theme names, sorted.
func ListThemes() []string {
	themeMu.RLock()
	defer themeMu.RUnlock()
	names := make([]string, 0, len(themeRegistry))
	for name := range themeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyTheme applies a registered theme by name.
func ApplyTheme(name string) {
	ApplyThemeWithOverrides(name, nil)
}

// ApplyThemeWithOverrides applies a theme and then replaces individual colors.
// Override keys use the palette's JSON names; invalid hex values are ignored.
func ApplyThemeWithOverrides(name string, overrides map[string]string) {
	theme := GetTheme(name)
	palette := theme.Colors
	for key, value := range overrides {
		applySingleOverride(&palette, key, value)
	}
	theme.Colors = palette
	ApplyThemeColors(theme)
}

func applySingleOverride(palette *ColorPalette, key, value string) {
	if !IsValidHexColor(value) {
		return
	}
	switch key {
	case "primary":
		palette.Primary = value
	case "accent":
		palette.Accent = value
	case "success":
		palette.Success = value
	case "error":
		palette.Error = value
	case "textPrimary":
		palette.TextPrimary = value
	case "textSecondary":
		palette.TextSecondary = value
	case "textMuted":
		palette.TextMuted = value
	case "bgSecondary":
		palette.BgSecondary = value
	case "bgTertiary":
		palette.BgTertiary = value
	case "borderNormal":
		palette.BorderNormal = value
	case "borderActive":
		palette.BorderActive = value
	case "toastSuccessText":
		palette.ToastSuccessText = value
	case "toastErrorText":
		palette.ToastErrorText = value
	}
}

// ApplyThemeColors sets the palette variables and rebuilds every style.
func ApplyThemeColors(theme Theme) {
	themeMu.Lock()
	defer themeMu.Unlock()

	c := theme.Colors
	Primary = lipgloss.Color(c.Primary)
	Accent = lipgloss.Color(c.Accent)
	Success = lipgloss.Color(c.Success)
	Error = lipgloss.Color(c.Error)
	TextPrimary = lipgloss.Color(c.TextPrimary)
	TextSecondary = lipgloss.Color(c.TextSecondary)
	TextMuted = lipgloss.Color(c.TextMuted)
	BgSecondary = lipgloss.Color(c.BgSecondary)
	BgTertiary = lipgloss.Color(c.BgTertiary)
	BorderNormal = lipgloss.Color(c.BorderNormal)
	BorderActive = lipgloss.Color(c.BorderActive)
	ToastSuccessTextColor = lipgloss.Color(c.ToastSuccessText)
	ToastErrorTextColor = lipgloss.Color(c.ToastErrorText)

	currentTheme = theme.Name
	rebuildStyles()
}
