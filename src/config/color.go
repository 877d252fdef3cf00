package config

import (
	"fmt"
	"strconv"
	"strings"

	perrors "pista/src/errors"
)

// ColorKind identifies which variant a Color holds
type ColorKind uint8

const (
	KindDefault ColorKind = iota
	KindBlack
	KindRed
	KindGreen
	KindYellow
	KindBlue
	KindMagenta
	KindCyan
	KindWhite
	KindFixed // ANSI 256 palette index
	KindRGB   // truecolor
)

// Color is a terminal foreground color as written in the config. Index is
// only meaningful for KindFixed and R, G, B only for KindRGB.
type Color struct {
	Kind    ColorKind
	Index   uint8
	R, G, B uint8
}

// Named colors
var (
	Default = Color{Kind: KindDefault}
	Black   = Color{Kind: KindBlack}
	Red     = Color{Kind: KindRed}
	Green   = Color{Kind: KindGreen}
	Yellow  = Color{Kind: KindYellow}
	Blue    = Color{Kind: KindBlue}
	Magenta = Color{Kind: KindMagenta}
	Cyan    = Color{Kind: KindCyan}
	White   = Color{Kind: KindWhite}
)

// colorNames is indexed by ColorKind for the named variants
var colorNames = [...]string{
	KindDefault: "default",
	KindBlack:   "black",
	KindRed:     "red",
	KindGreen:   "green",
	KindYellow:  "yellow",
	KindBlue:    "blue",
	KindMagenta: "magenta",
	KindCyan:    "cyan",
	KindWhite:   "white",
}

const (
	expectHexLength = "a string with 4 or 7 characters including the `#`"
	expectHexDigit  = "hexadecimal digits `0`-`9` or `a`-`f`"
	expectFixed     = "an ANSI color number between 0 and 255"
	expectColor     = "a hex color beginning with `#`, an ANSI color number, or one of " +
		"`default`, `black`, `red`, `green`, `yellow`, `blue`, `magenta`, `cyan`, `white`"
)

// Fixed returns an ANSI 256 palette color
func Fixed(n uint8) Color {
	return Color{Kind: KindFixed, Index: n}
}

// RGB returns a truecolor value
func RGB(r, g, b uint8) Color {
	return Color{Kind: KindRGB, R: r, G: g, B: b}
}

// IsNamed reports whether c is one of the nine named colors
func (c Color) IsNamed() bool {
	return c.Kind <= KindWhite
}

// String returns the canonical config form of the color, which ParseColor
// accepts and maps back to the same value.
func (c Color) String() string {
	switch c.Kind {
	case KindFixed:
		return strconv.Itoa(int(c.Index))
	case KindRGB:
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	default:
		if int(c.Kind) < len(colorNames) {
			return colorNames[c.Kind]
		}
		return fmt.Sprintf("color(%d)", c.Kind)
	}
}

// MarshalText implements encoding.TextMarshaler
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses a color string. Matching is case-insensitive and tries,
// in order: a named color, a `#` hex color of 3 or 6 digits, and a decimal
// ANSI palette index.
func ParseColor(raw string) (Color, error) {
	s := strings.ToLower(raw)

	for kind, name := range colorNames {
		if s == name {
			return Color{Kind: ColorKind(kind)}, nil
		}
	}

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(raw, s)
	case isDigits(s):
		n, err := strconv.ParseUint(s, 10, 8)
		if err != nil {
			// only range errors are possible once every byte is a digit
			return Color{}, perrors.NewFieldError("", raw, expectFixed, perrors.ErrNumericOverflow)
		}
		return Fixed(uint8(n)), nil
	default:
		return Color{}, perrors.NewFieldError("", raw, expectColor, perrors.ErrInvalidColor)
	}
}

func parseHex(raw, s string) (Color, error) {
	var width int
	switch len(s) {
	case 4:
		width = 1
	case 7:
		width = 2
	default:
		return Color{}, perrors.NewFieldError("", raw, expectHexLength, perrors.ErrInvalidColor)
	}

	var ch [3]uint8
	for i := range ch {
		start := 1 + i*width
		v, err := strconv.ParseUint(s[start:start+width], 16, 8)
		if err != nil {
			return Color{}, perrors.NewFieldError("", raw, expectHexDigit, perrors.ErrInvalidHexDigit)
		}
		if width == 1 {
			v = v*16 + v
		}
		ch[i] = uint8(v)
	}
	return RGB(ch[0], ch[1], ch[2]), nil
}

// isDigits reports whether s is non-empty and made only of ASCII digits
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
