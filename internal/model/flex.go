package model

import (
	"bytes"
	"strconv"
	"strings"
)

// The content API encodes most numbers as strings ("4.5", "1,234") and omits
// them freely. These decoders never fail: anything unparsable is treated as absent.

type flexFloat struct {
	value *float64
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s, ok := unquoteNumber(data)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	f.value = &v
	return nil
}

type flexInt struct {
	value *int
}

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s, ok := unquoteNumber(data)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil
	}
	n := int(v)
	f.value = &n
	return nil
}

type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	*f = flexString(strings.Trim(string(data), `"`))
	return nil
}

func unquoteNumber(data []byte) (string, bool) {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return "", false
	}
	s = strings.Trim(s, `"`)
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return "", false
	}
	return s, true
}
