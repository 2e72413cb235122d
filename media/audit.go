package media

import (
	"bytes"
	"encoding/json"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Audit is the open-ended provenance bag (pd_audit). Its shape is opaque to the catalog:
// keys keep their original order and values are passed through as raw JSON.
type Audit struct {
	m *orderedmap.OrderedMap[string, json.RawMessage]
}

func (a *Audit) init() {
	if a.m == nil {
		a.m = orderedmap.New[string, json.RawMessage]()
	}
}

// Len is the number of entries.
func (a Audit) Len() int {
	if a.m == nil {
		return 0
	}
	return a.m.Len()
}

// Keys returns the keys in dataset order.
func (a Audit) Keys() []string {
	if a.m == nil {
		return nil
	}
	keys := make([]string, 0, a.m.Len())
	for pair := a.m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Get returns the raw value stored under k.
func (a Audit) Get(k string) (json.RawMessage, bool) {
	if a.m == nil {
		return nil, false
	}
	return a.m.Get(k)
}

func (a *Audit) UnmarshalJSON(b []byte) error {
	a.m = nil
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		return nil
	}
	a.init()
	return a.m.UnmarshalJSON(b)
}

func (a Audit) MarshalJSON() ([]byte, error) {
	if a.m == nil {
		return []byte("{}"), nil
	}
	return a.m.MarshalJSON()
}
