package models

import (
	"fmt"
	"sort"
)

// FieldType selects the editing widget and the placeholder rule for a field.
// The set is closed; anything else is rejected at the validation boundary.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldRichText FieldType = "richText"
	FieldImage    FieldType = "image"
)

func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldRichText, FieldImage:
		return true
	}
	return false
}

// Widget maps a field type to its editor widget kind.
func (t FieldType) Widget() string {
	switch t {
	case FieldText:
		return "input"
	case FieldRichText:
		return "textarea"
	case FieldImage:
		return "image-url"
	}
	return ""
}

// ContentField is one editable unit of content. Key is unique across the
// whole store; Section names the list the field lives in.
type ContentField struct {
	ID      string    `json:"id" yaml:"id" toml:"id"`
	Key     string    `json:"key" yaml:"key" toml:"key" binding:"required"`
	Type    FieldType `json:"type" yaml:"type" toml:"type" binding:"required"`
	Value   string    `json:"value" yaml:"value" toml:"value"`
	Label   string    `json:"label" yaml:"label" toml:"label"`
	Section string    `json:"section" yaml:"section" toml:"section" binding:"required"`
}

func (f ContentField) Validate() error {
	if f.Key == "" {
		return fmt.Errorf("content field: missing key")
	}
	if f.Section == "" {
		return fmt.Errorf("content field %q: missing section", f.Key)
	}
	if !f.Type.Valid() {
		return fmt.Errorf("content field %q: unknown type %q", f.Key, f.Type)
	}
	return nil
}

// Snapshot is the complete content store state: section name to its ordered
// field list. Order within a section is editor display order.
type Snapshot map[string][]ContentField

// Clone returns a deep copy. Mutating the copy never aliases the original.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for section, fields := range s {
		list := make([]ContentField, len(fields))
		copy(list, fields)
		out[section] = list
	}
	return out
}

// Sections returns the section names in sorted order, giving map iteration a
// stable sequence for lookups and rendering.
func (s Snapshot) Sections() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KeyOwner reports the id of the field currently holding key, if any.
func (s Snapshot) KeyOwner(key string) (string, bool) {
	for _, name := range s.Sections() {
		for _, f := range s[name] {
			if f.Key == key {
				return f.ID, true
			}
		}
	}
	return "", false
}

// Validate checks the snapshot invariants: every field passes field
// validation, carries the section it is stored under, and no key appears
// twice anywhere in the store.
func (s Snapshot) Validate() error {
	seen := make(map[string]string)
	for _, name := range s.Sections() {
		for _, f := range s[name] {
			if err := f.Validate(); err != nil {
				return err
			}
			if f.Section != name {
				return fmt.Errorf("field %q stored under section %q but claims %q", f.Key, name, f.Section)
			}
			if prev, ok := seen[f.Key]; ok {
				return fmt.Errorf("duplicate key %q in sections %q and %q", f.Key, prev, name)
			}
			seen[f.Key] = name
		}
	}
	return nil
}
