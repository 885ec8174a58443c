package namekey_test

import (
	"testing"

	namekey "github.com/okian/gelora/internal/domain/namekey"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNormalize(t *testing.T) {
	Convey("Given names with scraper-style noise", t, func() {
		Convey("When the name carries leading and trailing whitespace", func() {
			So(namekey.Normalize("  John Smith "), ShouldEqual, "JOHN SMITH")
		})

		Convey("When interior runs of whitespace vary", func() {
			So(namekey.Normalize("John \t  Smith"), ShouldEqual, "JOHN SMITH")
			So(namekey.Normalize("John\nSmith"), ShouldEqual, "JOHN SMITH")
		})

		Convey("When casing differs", func() {
			So(namekey.Normalize("john smith"), ShouldEqual, "JOHN SMITH")
			So(namekey.Normalize("JoHn SmItH"), ShouldEqual, "JOHN SMITH")
		})

		Convey("When the name is empty or pure whitespace", func() {
			So(namekey.Normalize(""), ShouldEqual, "")
			So(namekey.Normalize("   \t "), ShouldEqual, "")
		})

		Convey("Then two noisy spellings of the same name collapse to one key", func() {
			So(namekey.Normalize("  john   SMITH "), ShouldEqual, namekey.Normalize("John Smith"))
		})
	})
}
