package present

import (
	"testing"
	"time"

	"github.com/boomerplus/boomerplus/media"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFormatRuntime(t *testing.T) {
	Convey("Runtimes are rendered in minutes and hours", t, func() {
		So(FormatMinutes(0), ShouldEqual, "")
		So(FormatRuntime(mo.None[int]()), ShouldEqual, "")
		So(FormatMinutes(45), ShouldEqual, "45 min")
		So(FormatMinutes(90), ShouldEqual, "1h 30m")
		So(FormatMinutes(120), ShouldEqual, "2h")
		So(FormatRuntime(mo.Some(61)), ShouldEqual, "1h 1m")
	})
}

func TestInitials(t *testing.T) {
	Convey("Initials use the first two words", t, func() {
		So(Initials("night of the living dead"), ShouldEqual, "NO")
		So(Initials("  Metropolis "), ShouldEqual, "M")
		So(Initials(""), ShouldEqual, "")
		So(Initials("élan vital"), ShouldEqual, "ÉV")
	})
}

func TestItemLabels(t *testing.T) {
	runtime := 96
	released := 1968
	movie := &media.Item{
		Title: "Night of the Living Dead",
		Tags:  []string{"horror", "classic", "zombies", "b-movie"},
		Variant: &media.Movie{
			YearReleased:   &released,
			Country:        "USA",
			RuntimeMinutes: &runtime,
		},
	}

	Convey("Given a movie", t, func() {
		Convey("The populated detail rows are listed in page order", func() {
			So(Details(movie), ShouldResemble, []Detail{
				{"Year", "1968"},
				{"Country", "USA"},
				{"Runtime", "1h 36m"},
			})
		})

		Convey("Cards preview three tags", func() {
			So(TagPreview(movie, 3), ShouldResemble, []string{"horror", "classic", "zombies"})
			So(TagPreview(movie, 10), ShouldHaveLength, 4)
		})

		Convey("The poster falls back to initials", func() {
			So(PosterOf(movie), ShouldResemble, Poster{Initials: "NO"})
		})
	})

	Convey("Given an item without a year", t, func() {
		item := &media.Item{Title: "Untitled", Variant: &media.Image{}}
		So(YearLabel(item), ShouldEqual, UnknownDate)
		So(Details(item), ShouldBeEmpty)
	})

	Convey("Counts and dates", t, func() {
		So(CountLabel(1), ShouldEqual, "1 item")
		So(CountLabel(0), ShouldEqual, "0 items")
		So(UpdatedLabel(&media.Dataset{}), ShouldEqual, "")
		So(UpdatedLabel(nil), ShouldEqual, "")
		So(UpdatedAt(media.Timestamp{}), ShouldEqual, "")
		So(UpdatedAt(media.NewTimestamp(time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC))), ShouldEqual, "Updated Dec 31, 2023")
		So(UpdatedLabel(&media.Dataset{
			GeneratedAt: media.NewTimestamp(time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)),
		}), ShouldEqual, "Updated Mar 5, 2024")
	})
}

func TestLicenseLabel(t *testing.T) {
	yes, no := true, false

	Convey("Notes win over flags", t, func() {
		item := &media.Item{License: media.License{FilmPD: &yes, LicenseNotes: "Published without notice"}}
		So(LicenseLabel(item), ShouldEqual, "Published without notice")
	})

	Convey("Only true claims are listed", t, func() {
		item := &media.Item{License: media.License{BroadcastPD: &yes, RecordingPD: &no, WorkPD: &yes}}
		So(LicenseLabel(item), ShouldEqual, "Public domain (broadcast, work)")
	})

	Convey("No claims is empty", t, func() {
		So(LicenseLabel(&media.Item{}), ShouldEqual, "")
	})
}
