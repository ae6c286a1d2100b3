package style

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDisable(t *testing.T) {
	Convey("Disable", t, func() {
		Disable()

		Convey("Should render plain text", func() {
			So(Fg(Green)("done"), ShouldEqual, "done")
			So(Bold("key"), ShouldEqual, "key")
		})
	})
}
