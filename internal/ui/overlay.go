// Package ui provides shared terminal UI helpers: modal compositing and the
// confirmation dialog.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DimStyle applies a dim gray color to background content behind modals.
// Existing ANSI codes are stripped first because SGR 2 (faint) doesn't
// reliably combine with existing color codes in most terminals.
var DimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))

// Rect is a screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// maxLineWidth returns the maximum visual width of the given lines.
func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

// dimLine strips ANSI codes and applies dim gray styling.
func dimLine(s string) string {
	return DimStyle.Render(ansi.Strip(s))
}

// ModalRect returns where OverlayModal places modal on a width x height
// screen. Mouse handlers use it to tell clicks inside the box from clicks on
// the dimmed backdrop.
func ModalRect(modal string, width, height int) Rect {
	lines := strings.Split(modal, "\n")
	w := maxLineWidth(lines)
	h := len(lines)
	return Rect{
		X: max((width-w)/2, 0),
		Y: max((height-h)/2, 0),
		W: w,
		H: h,
	}
}

// compositeRow overlays modalLine onto bgLine at position modalStartX.
// Returns: dimmed-left-segment + modalLine + dimmed-right-segment
func compositeRow(bgLine, modalLine string, modalStartX, modalWidth, totalWidth int) string {
	var result strings.Builder

	stripped := ansi.Strip(bgLine)
	bgWidth := ansi.StringWidth(stripped)

	if modalStartX > 0 {
		leftSeg := ansi.Truncate(stripped, modalStartX, "")
		leftWidth := ansi.StringWidth(leftSeg)
		result.WriteString(DimStyle.Render(leftSeg))
		// Pad if background is shorter than modal position
		if leftWidth < modalStartX {
			result.WriteString(strings.Repeat(" ", modalStartX-leftWidth))
		}
	}

	result.WriteString(modalLine)
	// Short modal rows keep the right edge aligned.
	if w := ansi.StringWidth(modalLine); w < modalWidth {
		result.WriteString(strings.Repeat(" ", modalWidth-w))
	}

	rightStartX := modalStartX + modalWidth
	if rightStartX < totalWidth && bgWidth > rightStartX {
		result.WriteString(DimStyle.Render(ansi.Cut(stripped, rightStartX, bgWidth)))
	}

	return result.String()
}

// OverlayModal composites a modal on top of a dimmed background.
// The modal is centered, with dimmed background visible on all sides.
func OverlayModal(background, modal string, width, height int) string {
	bgLines := strings.Split(background, "\n")
	modalLines := strings.Split(modal, "\n")
	box := ModalRect(modal, width, height)

	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}

	result := make([]string, 0, height)
	for y := 0; y < height; y++ {
		bgLine := bgLines[y]
		if row := y - box.Y; row >= 0 && row < box.H {
			result = append(result, compositeRow(bgLine, modalLines[row], box.X, box.W, width))
		} else {
			result = append(result, dimLine(bgLine))
		}
	}

	return strings.Join(result, "\n")
}
