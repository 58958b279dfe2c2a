package highlight

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Theme maps syntax classes to terminal colors.
type Theme struct {
	// Name is the display name of the theme.
	Name string

	// Colors maps each class to a palette color.
	Colors map[Class]tcell.Color
}

// DefaultTheme returns the classic eight-color theme.
func DefaultTheme() *Theme {
	return &Theme{
		Name: "Default",
		Colors: map[Class]tcell.Color{
			ClassNormal:    tcell.ColorSilver,
			ClassComment:   tcell.ColorTeal,
			ClassMLComment: tcell.ColorTeal,
			ClassKeyword1:  tcell.ColorOlive,
			ClassKeyword2:  tcell.ColorGreen,
			ClassString:    tcell.ColorPurple,
			ClassNumber:    tcell.ColorMaroon,
			ClassMatch:     tcell.ColorNavy,
		},
	}
}

// ColorFor returns the color for a class, falling back to the normal color.
func (t *Theme) ColorFor(c Class) tcell.Color {
	if color, ok := t.Colors[c]; ok {
		return color
	}
	if color, ok := t.Colors[ClassNormal]; ok {
		return color
	}
	return tcell.ColorSilver
}

// Code returns the SGR foreground parameter for a class.
func (t *Theme) Code(c Class) int {
	return SGRForeground(t.ColorFor(c))
}

// Override replaces class colors by name. Names are resolved with
// tcell.GetColor and must land on one of the sixteen palette colors.
func (t *Theme) Override(colors map[string]string) error {
	for className, colorName := range colors {
		class, ok := ClassFromString(className)
		if !ok {
			return fmt.Errorf("unknown syntax class %q", className)
		}
		color := tcell.GetColor(colorName)
		if color == tcell.ColorDefault || !isPaletteColor(color) {
			return fmt.Errorf("unsupported color %q for %s", colorName, className)
		}
		if t.Colors == nil {
			t.Colors = make(map[Class]tcell.Color)
		}
		t.Colors[class] = color
	}
	return nil
}

// SGRForeground converts one of the sixteen palette colors into its ANSI
// foreground parameter (30-37, 90-97). Anything else maps to 39, the
// terminal's default foreground.
func SGRForeground(c tcell.Color) int {
	if !isPaletteColor(c) {
		return 39
	}
	idx := int(c - tcell.ColorBlack)
	if idx < 8 {
		return 30 + idx
	}
	return 90 + idx - 8
}

func isPaletteColor(c tcell.Color) bool {
	return c >= tcell.ColorBlack && c <= tcell.ColorWhite
}
