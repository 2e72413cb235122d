package media

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/invopop/jsonschema"
	. "github.com/smartystreets/goconvey/convey"
)

const datasetJSON = `{
	"version": 2,
	"generated_at": "2024-06-01T00:00:00Z",
	"items": [
		{"slug": "a", "title": "Zebra", "tags": ["classic"]},
		{"slug": "b", "title": "Apple", "tags": ["rare"], "year_released": 1950}
	]
}`

func TestDecodeDataset(t *testing.T) {
	Convey("Given a dataset whose items omit their category", t, func() {
		ds, err := DecodeDataset(strings.NewReader(datasetJSON), Movies)
		So(err, ShouldBeNil)

		Convey("The items take the dataset's category", func() {
			So(ds.Version, ShouldEqual, 2)
			So(len(ds.Items), ShouldEqual, 2)
			So(ds.Items[1].Category, ShouldEqual, Movies)
			So(ds.Items[1].SortYear(), ShouldEqual, 1950)
			So(ds.Slugs(), ShouldResemble, []string{"a", "b"})
		})

		Convey("Items are found by slug", func() {
			So(ds.Find("b").MustGet().Title, ShouldEqual, "Apple")
			So(ds.Find("z").IsAbsent(), ShouldBeTrue)
		})
	})

	Convey("Given a null generation time", t, func() {
		ds, err := DecodeDataset(strings.NewReader(`{"version":1,"generated_at":null,"items":[]}`), TV)
		So(err, ShouldBeNil)
		_, ok := ds.GeneratedAt.Get()
		So(ok, ShouldBeFalse)

		b, err := json.Marshal(ds)
		So(err, ShouldBeNil)
		So(string(b), ShouldContainSubstring, `"generated_at":null`)
	})

	Convey("Given malformed JSON", t, func() {
		_, err := DecodeDataset(strings.NewReader(`{"items": [`), TV)
		So(err, ShouldNotBeNil)
	})

	Convey("A nil dataset finds nothing", t, func() {
		var ds *Dataset
		So(ds.Find("a").IsAbsent(), ShouldBeTrue)
	})
}

func TestSchema(t *testing.T) {
	Convey("The item schema has one branch per category", t, func() {
		schema := Item{}.JSONSchema()
		So(len(schema.OneOf), ShouldEqual, len(Categories()))

		movies := schema.OneOf[0]
		_, ok := movies.Properties.Get("year_released")
		So(ok, ShouldBeTrue)
		category, _ := movies.Properties.Get("category")
		So(category.Const, ShouldEqual, "movies")
	})

	Convey("The dataset schema reflects", t, func() {
		b, err := json.Marshal(new(jsonschema.Reflector).Reflect(&Dataset{}))
		So(err, ShouldBeNil)
		So(string(b), ShouldContainSubstring, "generated_at")
	})
}
