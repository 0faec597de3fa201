package model

import (
	"encoding/json"
	"time"
)

// ConflictDetail describes where a uniqueness or dependency conflict was
// found. It is attached to 409 responses so callers can point at the
// offending record.
type ConflictDetail struct {
	Table       string       `json:"table"`
	Entity      string       `json:"entity"`
	DisplayName string       `json:"displayName"`
	Data        *ConflictRow `json:"data"`
}

// ConflictRow is the minimal projection of the conflicting record.
type ConflictRow struct {
	ID    uint64 `db:"id" json:"id"`
	Name  string `db:"display_name" json:"name"`
	Value string `db:"value" json:"value"`
}

// payload is a partially decoded JSON object used to resolve dual-alias
// fields. Each logical field declares an ordered list of accepted keys
// (camelCase first, snake_case second) and the first present key wins.
type payload map[string]json.RawMessage

func parsePayload(data []byte) (payload, error) {
	var raw payload
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// field decodes the first present alias into dst. An explicit JSON null
// leaves dst untouched: nil pointers mean "absent" throughout the patch
// types.
func (p payload) field(dst any, keys ...string) error {
	for _, key := range keys {
		raw, ok := p[key]
		if !ok {
			continue
		}
		if string(raw) == "null" {
			return nil
		}
		return json.Unmarshal(raw, dst)
	}
	return nil
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate accepts the two date shapes callers send (plain date or full
// RFC3339 timestamp).
func ParseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
