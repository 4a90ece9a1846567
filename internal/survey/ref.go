package survey

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Ref is a question or option identifier as it appears in raw payload
// documents. Live submissions carry numbers, but older exports and some
// channel integrations emit string ids; Ref keeps either form and lets
// callers coerce when a numeric id is required. An answer whose ref cannot
// be coerced is skipped on its own, never the whole record.
type Ref struct {
	num   float64
	str   string
	isNum bool
	valid bool
}

// NewRef builds a numeric Ref for programmatic producers.
func NewRef(id int) Ref {
	return Ref{num: float64(id), isNum: true, valid: true}
}

// NewStringRef builds a textual Ref.
func NewStringRef(value string) Ref {
	return Ref{str: value, valid: true}
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	token := strings.TrimSpace(string(data))
	if token == "" || token == "null" {
		*r = Ref{}
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*r = Ref{num: n, isNum: true, valid: true}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = Ref{str: s, valid: true}
		return nil
	}

	// Objects and arrays have no usable identity. Keep the ref invalid so
	// the answer is dropped without failing the record decode.
	*r = Ref{}
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	if !r.valid {
		return []byte("null"), nil
	}
	if r.isNum {
		return json.Marshal(r.num)
	}
	return json.Marshal(r.str)
}

// Int coerces the ref to a numeric id. String refs go through the same
// decimal parse a loose JSON consumer would apply; NaN and infinities do
// not count as ids.
func (r Ref) Int() (int, bool) {
	if !r.valid {
		return 0, false
	}
	if r.isNum {
		if math.IsNaN(r.num) || math.IsInf(r.num, 0) {
			return 0, false
		}
		return int(r.num), true
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(r.str), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// Key returns a stable bucketing key: the decimal form when the ref is
// numeric (so 7 and "7" land in the same bucket), the trimmed text
// otherwise. Empty means the ref carries no identity at all.
func (r Ref) Key() string {
	if n, ok := r.Int(); ok {
		return strconv.Itoa(n)
	}
	if !r.valid {
		return ""
	}
	return strings.TrimSpace(r.str)
}
