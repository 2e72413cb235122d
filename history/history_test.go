package history

import (
	"sync"
	"testing"
	"time"

	"github.com/boomerplus/boomerplus/filesystem"
	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/media"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	viper.Set(key.HistorySave, true)

	clock := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	detour := &media.Item{Slug: "detour-1945", Category: media.Movies, Title: "Detour"}
	dragnet := &media.Item{Slug: "dragnet", Category: media.Radio, Title: "Dragnet"}

	Convey("Given two played items", t, func() {
		So(Save(detour), ShouldBeNil)
		So(Save(dragnet), ShouldBeNil)

		Convey("The most recent comes first", func() {
			plays, err := Get()
			So(err, ShouldBeNil)
			So(plays, ShouldHaveLength, 2)
			So(plays[0].Slug, ShouldEqual, "dragnet")
			So(plays[0].String(), ShouldEqual, "Dragnet (Radio)")
		})

		Convey("Replaying counts and moves to the top", func() {
			So(Save(detour), ShouldBeNil)

			plays, err := Get()
			So(err, ShouldBeNil)
			So(plays[0].Slug, ShouldEqual, "detour-1945")
			So(plays[0].Times, ShouldBeGreaterThan, 1)
		})

		Convey("A play can be forgotten", func() {
			plays, err := Get()
			So(err, ShouldBeNil)
			for _, p := range plays {
				So(Remove(p), ShouldBeNil)
			}

			plays, err = Get()
			So(err, ShouldBeNil)
			So(plays, ShouldBeEmpty)
		})
	})

	Convey("Concurrent saves keep every play", t, func() {
		concert := &media.Item{Slug: "ode", Category: media.Concerts, Title: "Ode"}

		var wg sync.WaitGroup
		for n := 0; n < 16; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = Save(concert)
			}()
		}
		wg.Wait()

		plays, err := Get()
		So(err, ShouldBeNil)
		times := 0
		for _, p := range plays {
			if p.Slug == "ode" {
				times = p.Times
			}
		}
		So(times, ShouldEqual, 16)
	})

	Convey("Nothing is saved when history is off", t, func() {
		viper.Set(key.HistorySave, false)
		defer viper.Set(key.HistorySave, true)

		So(Save(&media.Item{Slug: "x", Category: media.TV, Title: "X"}), ShouldBeNil)
		plays, err := Get()
		So(err, ShouldBeNil)
		for _, p := range plays {
			So(p.Slug, ShouldNotEqual, "x")
		}
	})
}
