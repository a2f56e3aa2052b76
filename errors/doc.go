// Package errors provides structured error types for the serialization
// library.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes rich context: value path, Go
// type name, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindTypeMismatch).
//		Path("entries", "key").
//		GoType("string").
//		Detail("sorted map keys must have a natural order").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Unsupported(errors.PhaseEncode, "mylib.FrozenList")
//	err := errors.InvalidTag(errors.PhaseDecode, 9, 6)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
