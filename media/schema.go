package media

import (
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

func (Timestamp) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string", Format: "date-time"},
			{Type: "null"},
		},
	}
}

func (Audit) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "object",
		Description: "Provenance notes. Keys and values are passed through unchanged.",
	}
}

func (Category) JSONSchema() *jsonschema.Schema {
	enum := make([]any, len(categories))
	for i, c := range categories {
		enum[i] = string(c)
	}
	return &jsonschema.Schema{Type: "string", Enum: enum}
}

// JSONSchema describes an item as one object per category: the shared
// fields with category pinned, plus that category's own fields.
func (Item) JSONSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
	}

	shared := reflector.Reflect(&common{})
	schema := &jsonschema.Schema{}

	for _, c := range categories {
		variant, _ := newVariant(c)
		own := reflector.Reflect(variant)

		props := orderedmap.New[string, *jsonschema.Schema]()
		copyProperties(props, shared)
		props.Set("category", &jsonschema.Schema{Type: "string", Const: string(c)})
		copyProperties(props, own)

		schema.OneOf = append(schema.OneOf, &jsonschema.Schema{
			Title:      c.Label(),
			Type:       "object",
			Properties: props,
			Required:   append(append([]string{}, shared.Required...), own.Required...),
		})
	}

	return schema
}

func copyProperties(dst *orderedmap.OrderedMap[string, *jsonschema.Schema], src *jsonschema.Schema) {
	if src == nil || src.Properties == nil {
		return
	}
	for pair := src.Properties.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := dst.Get(pair.Key); !ok {
			dst.Set(pair.Key, pair.Value)
		}
	}
}
