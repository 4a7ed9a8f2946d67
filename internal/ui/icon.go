package ui

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// iconCols is the rendered icon width in terminal cells. Each cell carries
// two vertical pixels via the upper half block, so the art stays roughly
// square.
const iconCols = 20

// renderIconArt downscales the decoded icon to colored half-block cells.
// Transparent regions render as plain spaces so the terminal background
// shows through.
func renderIconArt(img image.Image) string {
	if img == nil {
		return ""
	}
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return ""
	}

	rows := iconCols / 2
	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < iconCols; col++ {
			top, topOK := samplePixel(img, col, 2*row, iconCols, 2*rows)
			bottom, bottomOK := samplePixel(img, col, 2*row+1, iconCols, 2*rows)

			switch {
			case topOK && bottomOK:
				b.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(top)).
					Background(lipgloss.Color(bottom)).
					Render("▀"))
			case topOK:
				b.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(top)).
					Render("▀"))
			case bottomOK:
				b.WriteString(lipgloss.NewStyle().
					Foreground(lipgloss.Color(bottom)).
					Render("▄"))
			default:
				b.WriteString(" ")
			}
		}
		if row < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// samplePixel nearest-neighbor samples the source image on a cols×rows grid
// and returns the pixel as a hex color. ok is false for transparent pixels.
func samplePixel(img image.Image, x, y, cols, rows int) (hex string, ok bool) {
	bounds := img.Bounds()
	srcX := bounds.Min.X + x*bounds.Dx()/cols
	srcY := bounds.Min.Y + y*bounds.Dy()/rows

	r, g, b, a := img.At(srcX, srcY).RGBA()
	if a < 0x8000 {
		return "", false
	}
	// RGBA returns premultiplied 16-bit channels.
	return rgbToHex(uint8(r>>8), uint8(g>>8), uint8(b>>8)), true
}

const hexDigits = "0123456789abcdef"

func rgbToHex(r, g, b uint8) string {
	out := [7]byte{'#'}
	for i, c := range [3]uint8{r, g, b} {
		out[1+2*i] = hexDigits[c>>4]
		out[2+2*i] = hexDigits[c&0xf]
	}
	return string(out[:])
}
