package sprite

// BodyType is one of the anatomical base forms assets are authored against
type BodyType string

// Body types
const (
	BodyTypeMale     BodyType = "male"
	BodyTypeFemale   BodyType = "female"
	BodyTypeMuscular BodyType = "muscular"
	BodyTypePregnant BodyType = "pregnant"
	BodyTypeTeen     BodyType = "teen"
)

// BodyTypes lists every body type a definition record must declare to be
// treated as body-typed, in canonical order.
var BodyTypes = []BodyType{
	BodyTypeMale,
	BodyTypeFemale,
	BodyTypeMuscular,
	BodyTypePregnant,
	BodyTypeTeen,
}

// IsValid reports whether b is one of the declared body types
func (b BodyType) IsValid() bool {
	for _, known := range BodyTypes {
		if b == known {
			return true
		}
	}
	return false
}

// BodyTypeNames returns the body types as plain strings
func BodyTypeNames() []string {
	names := make([]string, len(BodyTypes))
	for i, b := range BodyTypes {
		names[i] = string(b)
	}
	return names
}

// DefaultBodyColor is used when a caller does not ask for a body color
const DefaultBodyColor = "light"

// DefaultImageMIMEType is assumed when the compositor omits a MIME type
const DefaultImageMIMEType = "image/png"
