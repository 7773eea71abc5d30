package dataset

import "fmt"

// Schema is the ordered list of attributes describing a dataset's columns.
type Schema []Attribute

// IndexOf returns the position of the named attribute, or -1 when absent.
func (s Schema) IndexOf(name string) int {
	for i := range s {
		if s[i].Name == name {
			return i
		}
	}
	return -1
}

// Contains reports whether the named attribute exists.
func (s Schema) Contains(name string) bool {
	return s.IndexOf(name) >= 0
}

// KindOf returns the kind of the named attribute.
func (s Schema) KindOf(name string) (Kind, error) {
	i := s.IndexOf(name)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrAttributeNotFound, name)
	}
	return s[i].Kind, nil
}

// IsNominal reports whether the named attribute is nominal.
func (s Schema) IsNominal(name string) (bool, error) {
	kind, err := s.KindOf(name)
	if err != nil {
		return false, err
	}
	return kind == KindNominal, nil
}

// LabelsOf returns a copy of the nominal domain of the named attribute.
// A non-nominal attribute yields nil without an error; whether that
// deserves a warning is the caller's decision.
func (s Schema) LabelsOf(name string) ([]string, error) {
	i := s.IndexOf(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %q", ErrAttributeNotFound, name)
	}
	if s[i].Kind != KindNominal {
		return nil, nil
	}
	return append([]string(nil), s[i].Labels...), nil
}

// Validate checks that the schema is non-empty, that attribute names are
// unique and that label domains match each attribute's kind.
func (s Schema) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: schema has no attributes", ErrInvalidSchema)
	}
	seen := make(map[string]bool, len(s))
	for i, attr := range s {
		if attr.Name == "" {
			return fmt.Errorf("%w: attribute %d has no name", ErrInvalidSchema, i)
		}
		if seen[attr.Name] {
			return fmt.Errorf("%w: duplicate attribute name %q", ErrInvalidSchema, attr.Name)
		}
		seen[attr.Name] = true
		if attr.Kind == KindNominal && len(attr.Labels) == 0 {
			return fmt.Errorf("%w: nominal attribute %q has an empty domain", ErrInvalidSchema, attr.Name)
		}
		if attr.Kind != KindNominal && len(attr.Labels) > 0 {
			return fmt.Errorf("%w: %s attribute %q carries labels", ErrInvalidSchema, attr.Kind, attr.Name)
		}
	}
	return nil
}

// Clone returns a deep copy of the schema.
func (s Schema) Clone() Schema {
	out := make(Schema, len(s))
	for i := range s {
		out[i] = s[i].clone()
	}
	return out
}
