// Package errors provides coded errors for raid-gold-api.
//
// Every layer returns *Error values carrying a Code, a user facing message,
// an optional cause and optional metadata:
//
//	err := errors.ResourceExhaustedf("character %s already has %d raids", name, 3).
//	    WithMeta("character", name)
//
// Wrapping keeps the original code:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load selections")
//	}
//
// Config structs validate with the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Client == nil {
//	    vb.RequiredField("Client")
//	}
//	return vb.Build()
//
// Handlers convert to gRPC with ToGRPCError. Metadata travels as a
// google.protobuf.Struct status detail and FromGRPCError restores it on the client.
//
// Layer guidelines:
//   - Repositories return NotFound when an identity has no record and wrap storage errors.
//   - The orchestrator validates input (InvalidArgument), enforces selection rules
//     (ResourceExhausted, FailedPrecondition) and maps roster failures to Unavailable.
//   - Handlers check required request fields and convert errors for the wire.
package errors
