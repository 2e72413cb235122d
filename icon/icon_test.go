package icon

import (
	"testing"

	"github.com/boomerplus/boomerplus/key"
	"github.com/boomerplus/boomerplus/media"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestGet(t *testing.T) {
	Convey("Given every category icon", t, func() {
		Convey("It renders for each variant", func() {
			for _, variant := range AvailableVariants() {
				variant := variant
				Convey("variant="+variant, func() {
					viper.Set(key.IconsVariant, variant)
					for _, c := range media.Categories() {
						So(Get(Category(c)), ShouldNotBeEmpty)
					}
				})
			}
		})

		Convey("It renders empty for an unknown variant", func() {
			viper.Set(key.IconsVariant, "")
			So(Get(Movie), ShouldBeEmpty)
		})
	})

	Convey("An unregistered icon renders empty", t, func() {
		viper.Set(key.IconsVariant, plain)
		So(Get(Icon(0)), ShouldBeEmpty)
		So(Category("podcasts"), ShouldEqual, Unknown)
	})
}
