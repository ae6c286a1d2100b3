//go:build nocolor

package color

import "github.com/samber/mo"

var builtin = mo.None[Palette]()
