package render

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"pista/src/config"
)

const swatchBlock = "■"

// Swatch renders a small colored block previewing c, for config listings
func Swatch(c config.Color) string {
	if c.Kind == config.KindDefault {
		return lipgloss.NewStyle().Render(swatchBlock)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(lipglossValue(c))).Render(swatchBlock)
}

// lipglossValue converts c to the string form lipgloss.Color expects: an
// ANSI index or a #rrggbb hex value
func lipglossValue(c config.Color) string {
	switch c.Kind {
	case config.KindFixed:
		return strconv.Itoa(int(c.Index))
	case config.KindRGB:
		return c.String()
	default:
		return strconv.Itoa(int(c.Kind - config.KindBlack))
	}
}

// ProfileFromEnv picks the color profile for prompt output. Prompts are
// printed into a pipe read by the shell, so TTY detection does not apply;
// NO_COLOR and COLORTERM decide instead.
func ProfileFromEnv() termenv.Profile {
	if termenv.EnvNoColor() {
		return termenv.Ascii
	}
	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return termenv.TrueColor
	}
	return termenv.ANSI256
}

// ParseProfile maps a --color value onto a profile. "auto" defers to
// ProfileFromEnv.
func ParseProfile(s string) (termenv.Profile, bool) {
	switch s {
	case "", "auto":
		return ProfileFromEnv(), true
	case "truecolor":
		return termenv.TrueColor, true
	case "256":
		return termenv.ANSI256, true
	case "ansi":
		return termenv.ANSI, true
	case "none":
		return termenv.Ascii, true
	}
	return termenv.Ascii, false
}
