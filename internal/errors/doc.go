// Package errors provides the structured error type used across the hero planner.
//
// Every layer returns *Error values carrying a Code, a user-friendly Message,
// an optional Cause and free-form metadata:
//
//	err := errors.NotFoundf("%s was not found in your tracking list", heroName).
//	    WithMeta("user_id", userID)
//
// Repositories return NotFound / AlreadyExists / InvalidArgument for
// conditions the caller can act on and wrap storage failures with Wrap, which
// defaults to CodeInternal. Orchestrators wrap repository errors with business
// context; Wrap keeps the original code so a NotFound raised by the spreadsheet
// lookup is still a NotFound when it reaches the Discord handler.
//
// Handlers decide what the user sees:
//
//	if errors.GetCode(err).UserFacing() {
//	    reply(errors.GetMessage(err))
//	} else {
//	    slog.ErrorContext(ctx, "command failed", "error", err)
//	    reply(genericFailure)
//	}
//
// The admin gRPC API converts with ToGRPCError; metadata travels as a
// google.protobuf.Struct status detail and is restored by FromGRPCError.
//
// ValidationBuilder collects field-level problems (configuration, handler
// input) into a single InvalidArgument error.
package errors
