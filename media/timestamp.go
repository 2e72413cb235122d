package media

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/samber/mo"
)

var timestampLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// Timestamp is a nullable point in time as written by the ingestion process.
// A value in an unexpected layout is kept verbatim and reads as unknown.
type Timestamp struct {
	raw string
	t   mo.Option[time.Time]
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{raw: t.Format(time.RFC3339), t: mo.Some(t)}
}

// Get returns the parsed time, if any.
func (ts Timestamp) Get() (time.Time, bool) {
	return ts.t.Get()
}

// Raw is the value exactly as it appeared in the dataset.
func (ts Timestamp) Raw() string {
	return ts.raw
}

func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	*ts = Timestamp{}
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	ts.raw = s

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ts.t = mo.Some(t)
			break
		}
	}
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(ts.raw)
}
