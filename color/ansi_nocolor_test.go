//go:build nocolor

package color_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/taskframe/taskframe/color"
)

func TestCodesCompiledOut(t *testing.T) {
	Convey("Without compiled codes", t, func() {
		So(color.Compiled(), ShouldBeFalse)
		So(color.Available(true).IsAbsent(), ShouldBeTrue)
		So(color.Paint(color.Available(true), color.StyleRed, "fail"), ShouldEqual, "fail")
	})
}
