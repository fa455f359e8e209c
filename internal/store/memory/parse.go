package memory

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// parseFloat reads a numeric cell. Placeholders for missing data, garbage
// and non finite values all yield nil.
func parseFloat(raw string) *float64 {
	v := strings.TrimSpace(raw)
	switch strings.ToUpper(v) {
	case "", "N/A", "NA", "-", "NULL", "NONE":
		return nil
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", ""), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// parseInt truncates a numeric cell. Values outside the int64 range yield
// nil.
func parseInt(raw string) *int64 {
	return truncate(parseFloat(raw))
}

func truncate(f *float64) *int64 {
	if f == nil || *f < math.MinInt64 || *f >= math.MaxInt64 {
		return nil
	}
	n := int64(*f)
	return &n
}

// jsonNumber is a numeric JSON field that also accepts numbers written as
// strings. Placeholders, garbage and values of any other JSON type decode
// as nil instead of failing the record.
type jsonNumber struct {
	value *float64
}

func (n *jsonNumber) UnmarshalJSON(data []byte) error {
	n.value = parseFloat(jsonScalar(data))
	return nil
}

func (n jsonNumber) Float() *float64 { return n.value }

// jsonBool is a boolean JSON field that also accepts "true", "yes" and "1"
// in any case. Everything else is false.
type jsonBool bool

func (b *jsonBool) UnmarshalJSON(data []byte) error {
	switch strings.ToLower(strings.TrimSpace(jsonScalar(data))) {
	case "true", "yes", "1":
		*b = true
	default:
		*b = false
	}
	return nil
}

// jsonScalar renders a JSON value as text: strings are unquoted, other
// values are returned as written.
func jsonScalar(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err == nil {
			return s
		}
	}
	return string(data)
}

// decodeRecords decodes a JSON array one element at a time. Elements that
// do not fit R are skipped; only a malformed array fails.
func decodeRecords[R any](data json.RawMessage) ([]R, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	records := make([]R, 0, len(raw))
	for _, elem := range raw {
		var rec R
		if err := json.Unmarshal(elem, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
