// Package color provides the ANSI escape codes used for colored terminal output.
//
// The codes are compiled out by the nocolor build tag. Consumers never read
// them directly; they receive a Palette through Available, which is empty
// whenever color is disabled.
package color

import "github.com/samber/mo"

// Palette carries one escape sequence per style.
type Palette struct {
	Reset   string
	Bold    string
	Cyan    string
	Green   string
	Yellow  string
	Red     string
	Blue    string
	Magenta string
}

// Swatch is a named escape sequence.
type Swatch struct {
	Name string
	Code string
}

// Compiled reports whether the escape codes are part of this build.
func Compiled() bool {
	return builtin.IsPresent()
}

// Available returns the palette when enabled is true and the codes were compiled in.
func Available(enabled bool) mo.Option[Palette] {
	if !enabled {
		return mo.None[Palette]()
	}
	return builtin
}

// Style selects one entry of a Palette.
type Style int

// Styles in declaration order.
const (
	StyleReset Style = iota
	StyleBold
	StyleCyan
	StyleGreen
	StyleYellow
	StyleRed
	StyleBlue
	StyleMagenta
	// StyleTitle is bold cyan.
	StyleTitle
)

// Code returns the escape sequence for s.
func (p Palette) Code(s Style) string {
	switch s {
	case StyleReset:
		return p.Reset
	case StyleBold:
		return p.Bold
	case StyleCyan:
		return p.Cyan
	case StyleGreen:
		return p.Green
	case StyleYellow:
		return p.Yellow
	case StyleRed:
		return p.Red
	case StyleBlue:
		return p.Blue
	case StyleMagenta:
		return p.Magenta
	case StyleTitle:
		return p.Bold + p.Cyan
	default:
		return ""
	}
}

// Apply wraps text in the sequence for s, terminated by the reset sequence.
func (p Palette) Apply(s Style, text string) string {
	return p.Code(s) + text + p.Reset
}

// Swatches lists the palette entries in declaration order.
func (p Palette) Swatches() []Swatch {
	return []Swatch{
		{"reset", p.Reset},
		{"bold", p.Bold},
		{"cyan", p.Cyan},
		{"green", p.Green},
		{"yellow", p.Yellow},
		{"red", p.Red},
		{"blue", p.Blue},
		{"magenta", p.Magenta},
	}
}

// Paint styles text when p is present, and returns it unchanged otherwise.
func Paint(p mo.Option[Palette], s Style, text string) string {
	palette, ok := p.Get()
	if !ok {
		return text
	}
	return palette.Apply(s, text)
}

// Swatches lists the entries of p, or nothing when p is empty.
func Swatches(p mo.Option[Palette]) []Swatch {
	palette, ok := p.Get()
	if !ok {
		return nil
	}
	return palette.Swatches()
}
