package catalog

import (
	"github.com/Astraculum/Universal-LPC-Spritesheet-Character-Generator/internal/errors"
)

// Metadata keys carried by catalog errors
const (
	MetaReason    = "reason"
	MetaSlot      = "slot"
	MetaKey       = "key"
	MetaParent    = "parent"
	MetaAnimation = "animation"
	MetaSource    = "source"
)

// Failure reasons
const (
	ReasonMalformedDefinition   = "MALFORMED_DEFINITION"
	ReasonNoSelectableOptions   = "NO_SELECTABLE_OPTIONS"
	ReasonUnknownVariant        = "UNKNOWN_VARIANT"
	ReasonIncompleteSelection   = "INCOMPLETE_SELECTION"
	ReasonUnsatisfiedDependency = "UNSATISFIED_DEPENDENCY"
	ReasonColorMismatch         = "COLOR_MISMATCH"
	ReasonUnsupportedAnimation  = "UNSUPPORTED_ANIMATION"
)

// MalformedDefinition reports a definition record that is not structured data
func MalformedDefinition(source string, cause error) *errors.Error {
	err := errors.InvalidArgumentf("malformed definition %s", source).
		WithMeta(MetaReason, ReasonMalformedDefinition).
		WithMeta(MetaSource, source)
	err.Cause = cause
	return err
}

// NoSelectableOptions reports a build that produced no usable slot
func NoSelectableOptions() *errors.Error {
	return errors.FailedPrecondition("catalog has no selectable options").
		WithMeta(MetaReason, ReasonNoSelectableOptions)
}

// UnknownVariant reports a selection key missing from the slot's tree
func UnknownVariant(slot, key string) *errors.Error {
	return errors.InvalidArgumentf("unknown variant %q for slot %q", key, slot).
		WithMeta(MetaReason, ReasonUnknownVariant).
		WithMeta(MetaSlot, slot).
		WithMeta(MetaKey, key)
}

// AmbiguousVariant reports a terminal identifier that names more than one
// asset in the slot. It carries the unknown variant reason since no single
// variant was identified.
func AmbiguousVariant(slot, key string, matches int) *errors.Error {
	return errors.InvalidArgumentf("variant %q is ambiguous in slot %q (%d matches)", key, slot, matches).
		WithMeta(MetaReason, ReasonUnknownVariant).
		WithMeta(MetaSlot, slot).
		WithMeta(MetaKey, key).
		WithMeta("matches", matches)
}

// IncompleteSelection reports a selection path that stops above any asset
func IncompleteSelection(slot string) *errors.Error {
	return errors.InvalidArgumentf("selection for slot %q does not reach an asset", slot).
		WithMeta(MetaReason, ReasonIncompleteSelection).
		WithMeta(MetaSlot, slot)
}

// UnsatisfiedDependency reports a selection whose parent slot is unselected
func UnsatisfiedDependency(slot, parent string) *errors.Error {
	return errors.FailedPreconditionf("slot %q requires a selection for %q", slot, parent).
		WithMeta(MetaReason, ReasonUnsatisfiedDependency).
		WithMeta(MetaSlot, slot).
		WithMeta(MetaParent, parent)
}

// ColorMismatch reports a color-matched part outside the body color family
func ColorMismatch(slot, variant, bodyColor string) *errors.Error {
	return errors.FailedPreconditionf("variant %q for slot %q does not match body color %q", variant, slot, bodyColor).
		WithMeta(MetaReason, ReasonColorMismatch).
		WithMeta(MetaSlot, slot).
		WithMeta(MetaKey, variant)
}

// UnsupportedAnimation reports a requested animation a selected slot lacks
func UnsupportedAnimation(slot, animation string) *errors.Error {
	return errors.FailedPreconditionf("slot %q does not support animation %q", slot, animation).
		WithMeta(MetaReason, ReasonUnsupportedAnimation).
		WithMeta(MetaSlot, slot).
		WithMeta(MetaAnimation, animation)
}

// Reason returns the catalog failure reason carried by err, if any
func Reason(err error) string {
	return errors.GetMetaString(err, MetaReason)
}

// SlotOf returns the offending slot carried by err, if any
func SlotOf(err error) string {
	return errors.GetMetaString(err, MetaSlot)
}

// IsUnknownVariant reports an UnknownVariant failure
func IsUnknownVariant(err error) bool {
	return Reason(err) == ReasonUnknownVariant
}

// IsUnsatisfiedDependency reports an UnsatisfiedDependency failure
func IsUnsatisfiedDependency(err error) bool {
	return Reason(err) == ReasonUnsatisfiedDependency
}

// IsColorMismatch reports a ColorMismatch failure
func IsColorMismatch(err error) bool {
	return Reason(err) == ReasonColorMismatch
}

// IsUnsupportedAnimation reports an UnsupportedAnimation failure
func IsUnsupportedAnimation(err error) bool {
	return Reason(err) == ReasonUnsupportedAnimation
}

// IsConstraintViolation reports failures caused by combining otherwise valid
// selections; re-sampling may clear them.
func IsConstraintViolation(err error) bool {
	switch Reason(err) {
	case ReasonUnsatisfiedDependency, ReasonColorMismatch, ReasonUnsupportedAnimation:
		return true
	default:
		return false
	}
}
