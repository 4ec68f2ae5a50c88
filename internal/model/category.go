package model

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Category is either a bare code ("hotels") or a named category ({code, name}).
// It is resolved once when decoded; consumers only read Code and Name.
type Category struct {
	Code string
	Name string
}

// CategoryCode builds a code-only category
func CategoryCode(code string) Category {
	return Category{Code: code}
}

// NamedCategory builds a category carrying a display name
func NamedCategory(code, name string) Category {
	return Category{Code: code, Name: name}
}

// IsNamed reports whether the category carries its own display name
func (c Category) IsNamed() bool {
	return c.Name != ""
}

// IsZero reports whether the category is absent
func (c Category) IsZero() bool {
	return c.Code == "" && c.Name == ""
}

type namedCategoryPayload struct {
	Code          string `json:"code,omitempty"`
	Name          string `json:"name,omitempty"`
	LocalizedName string `json:"localized_name,omitempty"`
}

// UnmarshalJSON accepts either a string code or an object with a name
func (c *Category) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = Category{}
		return nil
	}

	if data[0] == '"' {
		var code string
		if err := json.Unmarshal(data, &code); err != nil {
			return err
		}
		*c = CategoryCode(code)
		return nil
	}

	var p namedCategoryPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	name := p.Name
	if p.LocalizedName != "" {
		name = p.LocalizedName
	}
	*c = NamedCategory(p.Code, name)
	return nil
}

// MarshalJSON writes code-only categories as strings and named ones as objects
func (c Category) MarshalJSON() ([]byte, error) {
	switch {
	case c.IsZero():
		return []byte("null"), nil
	case !c.IsNamed():
		return json.Marshal(c.Code)
	default:
		return json.Marshal(namedCategoryPayload{Code: c.Code, Name: c.Name})
	}
}
