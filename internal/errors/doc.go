// Package errors provides the structured error type shared by every layer of
// the army book service.
//
// Errors carry a Code, a user-facing message, an optional cause and metadata.
// Codes map onto gRPC status codes and HTTP status codes so handlers can
// surface them without inspecting messages.
//
// # Basic Usage
//
//	err := errors.NotFound("army book not found").
//	    WithMeta("army_book_uid", uid)
//
//	if err := repo.SaveUnits(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save recalculated units")
//	}
//
// # Taxonomy
//
// The derivation pipeline distinguishes four failure families:
//   - NotFound: the army book is absent or not visible to the requester
//   - PermissionDenied: the requester does not own the army book
//   - Upstream: the point-cost service, package recalculation or the PDF
//     renderer failed or returned no data
//   - InvalidArgument: a record failed shape validation; built with the
//     ValidationBuilder and usually reported per record instead of aborting
//
// # Checking
//
//	if errors.IsNotFound(err) {
//	    // render a 404 / codes.NotFound
//	}
//	code := errors.GetCode(err)
//	meta := errors.GetMeta(err)
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("name", unit.Name, vb)
//	errors.ValidateMin("size", unit.Size, 1, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Transport
//
// gRPC handlers return errors.ToGRPCError(err); HTTP handlers respond with
// errors.GetCode(err).HTTPStatus().
package errors
