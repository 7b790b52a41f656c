package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Timestamp is a record time as the backend sends it. It may be RFC 3339,
// a bare date, or missing; anything unreadable decodes as the zero time.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseTimestamp reads s with the layouts the backend is known to use.
func ParseTimestamp(s string) (Timestamp, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: t}, true
		}
	}
	return Timestamp{}, false
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		var millis int64
		if err := json.Unmarshal(b, &millis); err == nil && millis > 0 {
			*t = Timestamp{Time: time.UnixMilli(millis).UTC()}
			return nil
		}
		*t = Timestamp{}
		return nil
	}
	*t, _ = ParseTimestamp(raw)
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(t.Format(time.RFC3339))
}
