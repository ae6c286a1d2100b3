package constant

import (
	"errors"
	"fmt"
	"strconv"
)

// Overridable build defaults. Set them at link time, e.g.
//
//	go build -ldflags "-X github.com/taskframe/taskframe/constant.ExecDelayDefault=1000"
//
// Both are plain strings because -X can only assign string variables.
var (
	// ColorDefault toggles colored output unless configuration says otherwise.
	ColorDefault = "true"

	// ExecDelayDefault is the pause between animated task steps, in milliseconds.
	ExecDelayDefault = "500"
)

// ErrBuildDefault is returned when a link-time override can not be parsed.
var ErrBuildDefault = errors.New("invalid build default")

// BuildDefaults parses ColorDefault and ExecDelayDefault.
// The delay must be a positive integer; it is returned as-is.
func BuildDefaults() (color bool, delayMs int, err error) {
	color, err = strconv.ParseBool(ColorDefault)
	if err != nil {
		return false, 0, fmt.Errorf("%w: ColorDefault=%q", ErrBuildDefault, ColorDefault)
	}

	delayMs, err = strconv.Atoi(ExecDelayDefault)
	if err != nil || delayMs <= 0 {
		return false, 0, fmt.Errorf("%w: ExecDelayDefault=%q", ErrBuildDefault, ExecDelayDefault)
	}

	return color, delayMs, nil
}
