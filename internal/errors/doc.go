// Package errors provides the structured error type shared by every layer of
// the sprite service.
//
// An Error carries a Code, a user-facing message, an optional cause and a
// metadata map. Domain failures put their discriminating details in the
// metadata (for example the catalog package stores "reason" and "slot"), so
// callers can branch on them without parsing messages:
//
//	err := errors.InvalidArgumentf("unknown variant %q", key).
//	    WithMeta("slot", slot)
//
//	if errors.IsInvalidArgument(err) {
//	    slot := errors.GetMetaString(err, "slot")
//	}
//
// Wrapping keeps the code and metadata of the wrapped Error:
//
//	if err != nil {
//	    return errors.Wrap(err, "failed to resolve configuration")
//	}
//
// At the transport boundary, ToGRPCError and FromGRPCError convert to and from
// gRPC status errors; metadata crosses the wire as a google.protobuf.Struct
// status detail. CodeFromHTTPStatus maps upstream HTTP responses.
//
// Configuration structs validate themselves with a ValidationBuilder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Catalog == nil {
//	    vb.RequiredField("Catalog")
//	}
//	return vb.Build()
package errors
