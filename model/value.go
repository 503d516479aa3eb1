package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type ValueKind int

const (
	KindAbsent ValueKind = iota
	KindText
	KindList
	KindNumber
	KindBool
)

// Value is the variant-typed payload of an Answer: exactly one of
// text, ordered list of strings, number or boolean, keyed by the
// owning question's declared type. The zero Value is absent (a
// missing or null answer).
type Value struct {
	kind ValueKind
	text string
	list []string
	num  float64
	b    bool

	// a decoded JSON array may carry non-string elements; such a
	// list can never match any option text
	listStrict bool
}

func Text(s string) Value    { return Value{kind: KindText, text: s} }
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }
func Bool(b bool) Value      { return Value{kind: KindBool, b: b} }

func List(items ...string) Value {
	list := make([]string, len(items))
	copy(list, items)
	return Value{kind: KindList, list: list, listStrict: true}
}

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) Text() string    { return v.text }
func (v Value) Num() float64    { return v.num }
func (v Value) Bool() bool      { return v.b }

func (v Value) List() []string {
	out := make([]string, len(v.list))
	copy(out, v.list)
	return out
}

// ListStrict reports whether a list value was built from strings
// only. Lists with foreign element types are preserved stringified
// for display, but never compare equal to option texts.
func (v Value) ListStrict() bool { return v.listStrict }

// IsEmpty reports a missing answer: absent or the empty string.
func (v Value) IsEmpty() bool {
	return v.kind == KindAbsent || (v.kind == KindText && v.text == "")
}

// String renders the value for comparison and display: booleans as
// "true"/"false", numbers in shortest decimal form, lists
// comma-joined.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindList:
		return strings.Join(v.list, ",")
	}
	return ""
}

// Coerce attempts a numeric reading of the value: numbers pass
// through, text is parsed, booleans count 1/0. Lists and absent
// values do not coerce.
func (v Value) Coerce() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindText:
		n, err := strconv.ParseFloat(strings.TrimSpace(v.text), 64)
		return n, err == nil
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindAbsent:
		return []byte("null"), nil
	case KindText:
		return json.Marshal(v.text)
	case KindList:
		return json.Marshal(v.list)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	}
	return nil, fmt.Errorf("model: unknown value kind %d", v.kind)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw := raw.(type) {
	case nil:
		*v = Value{}
	case string:
		*v = Text(raw)
	case bool:
		*v = Bool(raw)
	case float64:
		*v = Number(raw)
	case []any:
		list := make([]string, len(raw))
		strict := true
		for i, item := range raw {
			s, ok := item.(string)
			if !ok {
				strict = false
				s = fmt.Sprint(item)
			}
			list[i] = s
		}
		*v = Value{kind: KindList, list: list, listStrict: strict}
	default:
		return fmt.Errorf("model: unsupported answer value %s", data)
	}
	return nil
}
