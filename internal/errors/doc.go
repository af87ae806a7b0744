// Package errors provides the structured error type used across rpg-retool.
//
// Errors carry a Code, a user-facing Message, an optional Cause and free-form
// metadata. Converters only ever fail for structural reasons (a document that
// is not JSON, a missing top-level array, an unknown converter kind); content
// they do not recognize is dropped, never reported here.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.InvalidArgument(`expected "feat" array in object`)
//	err := errors.NotFoundf("catalog batch %s not found", id)
//
// Adding metadata:
//
//	err := errors.InvalidArgument("unknown converter kind").
//	    WithMeta("kind", raw)
//
// Wrapping errors:
//
//	if err := os.WriteFile(path, data, 0o644); err != nil {
//	    return errors.Wrapf(err, "failed to write %s", path)
//	}
//
// # Error Checking
//
//	if errors.IsInvalidArgument(err) {
//	    // bad input document
//	}
//
// # CLI Integration
//
// Commands map the code of the returned error to a process exit status:
//
//	os.Exit(errors.GetCode(err).ExitCode())
package errors
