// Package styles holds the terminal color palette and lipgloss styles.
package styles

import "github.com/charmbracelet/lipgloss"

// Color palette - default dark theme
var (
	Primary = lipgloss.Color("#7C3AED") // Purple
	Accent  = lipgloss.Color("#F59E0B") // Amber

	Success = lipgloss.Color("#10B981") // Green
	Error   = lipgloss.Color("#EF4444") // Red

	TextPrimary   = lipgloss.Color("#F9FAFB")
	TextSecondary = lipgloss.Color("#9CA3AF")
	TextMuted     = lipgloss.Color("#6B7280")

	BgSecondary = lipgloss.Color("#1F2937")
	BgTertiary  = lipgloss.Color("#374151")

	BorderNormal = lipgloss.Color("#374151")
	BorderActive = lipgloss.Color("#7C3AED")

	ToastSuccessTextColor = lipgloss.Color("#000000")
	ToastErrorTextColor   = lipgloss.Color("#FFFFFF")
)

// Card styles
var (
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	AddCard      lipgloss.Style
	AddCardLabel lipgloss.Style
	CardTitle    lipgloss.Style
	CardBody     lipgloss.Style
	CardDate     lipgloss.Style
)

// Modal styles
var (
	ModalBox     lipgloss.Style
	ModalTitle   lipgloss.Style
	FieldLabel   lipgloss.Style
	FieldFocused lipgloss.Style
	ModalError   lipgloss.Style
	DangerBox    lipgloss.Style
)

// Chrome
var (
	Header       lipgloss.Style
	Muted        lipgloss.Style
	KeyHint      lipgloss.Style
	SearchPrompt lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles derives every style from the palette variables. It runs at
// init and again whenever a theme is applied.
func rebuildStyles() {
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderNormal).
		Padding(0, 1)

	CardSelected = Card.
		BorderForeground(BorderActive)

	AddCard = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(TextMuted).
		Padding(0, 1).
		Align(lipgloss.Center, lipgloss.Center)

	AddCardLabel = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	CardBody = lipgloss.NewStyle().
		Foreground(TextSecondary)

	CardDate = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	ModalBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Background(BgSecondary).
		Padding(1, 2)

	ModalTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	FieldLabel = lipgloss.NewStyle().
		Foreground(TextMuted)

	FieldFocused = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	ModalError = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	DangerBox = ModalBox.
		BorderForeground(Error)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Muted = lipgloss.NewStyle().
		Foreground(TextMuted)

	KeyHint = lipgloss.NewStyle().
		Foreground(TextMuted).
		Background(BgTertiary).
		Padding(0, 1)

	SearchPrompt = lipgloss.NewStyle().
		Foreground(Accent)

	ToastSuccess = lipgloss.NewStyle().
		Foreground(ToastSuccessTextColor).
		Background(Success).
		Padding(0, 1)

	ToastError = lipgloss.NewStyle().
		Foreground(ToastErrorTextColor).
		Background(Error).
		Padding(0, 1)
}
