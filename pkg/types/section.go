package types

// Section is one named block of key/value fields from the main configuration
type Section struct {
	// Name is the section header, e.g. "backend_live"
	Name string

	// Fields holds the section's values rendered as strings
	Fields map[string]string
}

// Field returns the named field, or "" when absent
func (s Section) Field(name string) string {
	if s.Fields == nil {
		return ""
	}
	return s.Fields[name]
}
