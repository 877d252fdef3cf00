package render

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"pista/src/config"
)

// Shell selects how invisible escape sequences are marked so the shell
// computes the prompt width correctly
type Shell string

const (
	ShellNone Shell = "none"
	ShellZsh  Shell = "zsh"
	ShellBash Shell = "bash"
)

// ParseShell validates a --shell value
func ParseShell(s string) (Shell, error) {
	switch Shell(s) {
	case ShellNone, ShellZsh, ShellBash:
		return Shell(s), nil
	case "":
		return ShellNone, nil
	default:
		return "", fmt.Errorf("unsupported shell %q (want zsh, bash or none)", s)
	}
}

// Foreground maps a config color onto termenv. Named colors use the basic
// ANSI palette, Fixed the 256 palette and RGB truecolor.
func Foreground(c config.Color) termenv.Color {
	switch c.Kind {
	case config.KindDefault:
		return termenv.NoColor{}
	case config.KindFixed:
		return termenv.ANSI256Color(c.Index)
	case config.KindRGB:
		return termenv.RGBColor(c.String())
	default:
		// KindBlack..KindWhite follow the ANSI order
		return termenv.ANSIColor(c.Kind - config.KindBlack)
	}
}

// Painter wraps text in foreground escape sequences for a terminal profile
type Painter struct {
	profile termenv.Profile
	shell   Shell
}

// NewPainter creates a painter. Colors are degraded to what profile supports.
func NewPainter(profile termenv.Profile, shell Shell) *Painter {
	return &Painter{profile: profile, shell: shell}
}

// Paint colors text. Empty text and the default color produce no escapes.
// For zsh a literal % in text is doubled so prompt expansion keeps it.
func (p *Painter) Paint(text string, c config.Color) string {
	if text == "" {
		return ""
	}
	if p.shell == ShellZsh {
		text = strings.ReplaceAll(text, "%", "%%")
	}
	fg := p.profile.Convert(Foreground(c))
	seq := fg.Sequence(false)
	if seq == "" {
		return text
	}
	start := termenv.CSI + seq + "m"
	end := termenv.CSI + termenv.ResetSeq + "m"
	return p.invisible(start) + text + p.invisible(end)
}

func (p *Painter) invisible(seq string) string {
	switch p.shell {
	case ShellZsh:
		return "%{" + seq + "%}"
	case ShellBash:
		return `\[` + seq + `\]`
	default:
		return seq
	}
}
