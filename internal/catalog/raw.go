package catalog

import "strings"

// RawDefinition is one unparsed equipment-type definition record, usually the
// contents of a sheet definition JSON file.
type RawDefinition struct {
	// Source identifies the record in logs and reports (a file name)
	Source string
	Data   []byte
}

// RawControl is one input control found in the options document, with its
// attributes keyed by lower-case attribute name.
type RawControl struct {
	Attrs map[string]string
}

// Attr returns the named attribute and whether it was present
func (c RawControl) Attr(name string) (string, bool) {
	v, ok := c.Attrs[name]
	return v, ok
}

func (c RawControl) attr(name string) string {
	return strings.TrimSpace(c.Attrs[name])
}

// flag reads a boolean attribute; a bare attribute counts as set
func (c RawControl) flag(name string) bool {
	v, ok := c.Attrs[name]
	if !ok {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "false", "0", "no", "off":
		return false
	default:
		return true
	}
}
