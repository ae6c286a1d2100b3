package frame

import (
	"errors"
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/taskframe/taskframe/color"
	"github.com/taskframe/taskframe/constant"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRow(t *testing.T) {
	Convey("Row", t, func() {
		Convey("Should pad short content to the full width", func() {
			rows := Row("hello")
			So(rows, ShouldHaveLength, 1)
			So(len(rows[0]), ShouldEqual, constant.UIWidth+2)
			So(rows[0], ShouldStartWith, "| hello ")
			So(rows[0], ShouldEndWith, " |")
		})

		Convey("Should frame empty content as a blank row", func() {
			So(Row(""), ShouldResemble, []string{"| " + strings.Repeat(" ", Inner) + " |"})
		})

		Convey("Should wrap long content on word boundaries", func() {
			rows := Row(strings.Repeat("word ", 30))
			So(len(rows), ShouldBeGreaterThan, 1)
			for _, row := range rows {
				So(len(row), ShouldEqual, constant.UIWidth+2)
			}
		})

		Convey("Should hard-wrap words wider than a row", func() {
			rows := Row(strings.Repeat("x", Inner*2+5))
			So(rows, ShouldHaveLength, 3)
			for _, row := range rows {
				So(len(row), ShouldEqual, constant.UIWidth+2)
			}
		})

		Convey("Should keep full width when wrapping leaves a blank line", func() {
			rows := Row(strings.Repeat(" ", 80) + "z")
			So(len(rows), ShouldBeGreaterThan, 0)
			for _, row := range rows {
				So(len(row), ShouldEqual, constant.UIWidth+2)
			}
			So(rows[len(rows)-1], ShouldStartWith, "| z ")
		})

		Convey("Should expand tabs to the next stop", func() {
			So(Lines("a\tb"), ShouldResemble, []string{"a   b"})
			So(Lines("abcd\te"), ShouldResemble, []string{"abcd    e"})

			rows := Row("name\tvalue\t\tend")
			So(rows, ShouldHaveLength, 1)
			So(rows[0], ShouldNotContainSubstring, "\t")
			So(len(rows[0]), ShouldEqual, constant.UIWidth+2)
		})

		Convey("Should measure colored content by printable width", func() {
			p := color.Palette{Reset: "\x1b[0m", Green: "\x1b[1;32m"}
			rows := Row(p.Apply(color.StyleGreen, "ok"))
			So(rows, ShouldHaveLength, 1)
			So(ansi.PrintableRuneWidth(rows[0]), ShouldEqual, constant.UIWidth+2)
		})
	})
}

func TestRender(t *testing.T) {
	Convey("Render", t, func() {
		Convey("Should frame title and body without color", func() {
			var b strings.Builder
			So(New(color.Available(false)).Render(&b, "Tasks", "one", "two"), ShouldBeNil)

			lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
			So(lines, ShouldHaveLength, 6)
			So(lines[0], ShouldEqual, constant.UIBorder)
			So(lines[1], ShouldStartWith, "| Tasks ")
			So(lines[2], ShouldEqual, constant.UILine)
			So(lines[3], ShouldStartWith, "| one ")
			So(lines[4], ShouldStartWith, "| two ")
			So(lines[5], ShouldEqual, constant.UIBorder)
			So(b.String(), ShouldNotContainSubstring, "\x1b")
		})

		Convey("Should keep blank body lines at full width", func() {
			var b strings.Builder
			So(New(color.Available(false)).Render(&b, "", "one", "", "two"), ShouldBeNil)

			lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
			So(lines, ShouldHaveLength, 7)
			for _, line := range lines {
				So(len(line), ShouldEqual, constant.UIWidth+2)
			}
			So(lines[4], ShouldEqual, "| "+strings.Repeat(" ", Inner)+" |")
		})

		Convey("Should style the title when a palette is present", func() {
			var b strings.Builder
			p := color.Palette{Reset: "<0>", Bold: "<b>", Cyan: "<c>"}
			So(New(mo.Some(p)).Render(&b, "Tasks"), ShouldBeNil)
			So(b.String(), ShouldContainSubstring, "<b><c>Tasks<0>")
		})

		Convey("Should return write errors", func() {
			So(New(color.Available(false)).Render(failingWriter{}, "x"), ShouldNotBeNil)
		})
	})
}
