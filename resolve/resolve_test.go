package resolve

import (
	"testing"

	"github.com/boomerplus/boomerplus/media"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassify(t *testing.T) {
	Convey("Given an archive details URL", t, func() {
		r := Classify("https://archive.org/details/Plan_9_from_Outer_Space_1959?autoplay=1", Video)

		Convey("It resolves to an embed of the identifier", func() {
			So(r.Kind, ShouldEqual, Embed)
			So(r.Identifier, ShouldEqual, "Plan_9_from_Outer_Space_1959")
			So(r.EmbedURL, ShouldEqual, "https://archive.org/embed/Plan_9_from_Outer_Space_1959")
			So(r.Kind.Inline(), ShouldBeTrue)
		})
	})

	Convey("Given a details URL that also ends in a file extension", t, func() {
		r := Classify("https://archive.org/details/reel/file.mp4", Video)

		Convey("The embed wins", func() {
			So(r.Kind, ShouldEqual, Embed)
			So(r.Identifier, ShouldEqual, "reel")
		})
	})

	Convey("Given an archive search URL", t, func() {
		raw := "https://archive.org/search?query=dragnet"
		r := Classify(raw, Audio)

		Convey("It is flagged as a search link and left untouched", func() {
			So(r.Kind, ShouldEqual, SearchLink)
			So(r.URL, ShouldEqual, raw)
			So(r.Kind.Inline(), ShouldBeFalse)
		})
	})

	Convey("Given direct files", t, func() {
		So(Classify("https://cdn.example.org/a/film.mp4", Video).Kind, ShouldEqual, DirectVideo)
		So(Classify("https://cdn.example.org/a/FILM.WEBM", Video).Kind, ShouldEqual, DirectVideo)
		So(Classify("https://cdn.example.org/a/show.mp3?x=1", Audio).Kind, ShouldEqual, DirectAudio)
		So(Classify("https://cdn.example.org/a/show.ogg", Audio).Kind, ShouldEqual, DirectAudio)
		So(Classify("https://cdn.example.org/a/show.ogg", Video).Kind, ShouldEqual, DirectVideo)
		So(Classify("https://cdn.example.org/a/clip.mp4", Audio).Kind, ShouldEqual, DirectVideo)
		So(Classify("https://cdn.example.org/a/show.mp3", Video).Kind, ShouldEqual, Outbound)
	})

	Convey("Given anything else", t, func() {
		So(Classify("https://www.youtube.com/watch?v=abc", Video).Kind, ShouldEqual, Outbound)
		So(Classify("", Video).Kind, ShouldEqual, None)
	})
}

func TestPrimary(t *testing.T) {
	Convey("Given a source with video and audio", t, func() {
		src := media.Source{VideoBackup: "vb", AudioPrimary: "ap", AudioBackup: "ab"}

		Convey("The primary audio beats the video backup", func() {
			u, m := Primary(src)
			So(u, ShouldEqual, "ap")
			So(m, ShouldEqual, Audio)
		})

		Convey("The backup choice is separate", func() {
			u, m := Backup(src)
			So(u, ShouldEqual, "vb")
			So(m, ShouldEqual, Video)
		})
	})

	Convey("Given an empty source", t, func() {
		r := Source(media.Source{})
		So(r.Kind, ShouldEqual, None)
	})
}
