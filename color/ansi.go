//go:build !nocolor

package color

import "github.com/samber/mo"

// ANSI escape codes for terminal output.
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Cyan    = "\033[1;36m"
	Green   = "\033[1;32m"
	Yellow  = "\033[1;33m"
	Red     = "\033[1;31m"
	Blue    = "\033[1;34m"
	Magenta = "\033[1;35m"
)

var builtin = mo.Some(Palette{
	Reset:   Reset,
	Bold:    Bold,
	Cyan:    Cyan,
	Green:   Green,
	Yellow:  Yellow,
	Red:     Red,
	Blue:    Blue,
	Magenta: Magenta,
})
