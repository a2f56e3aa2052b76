// Package wire provides the positioned byte-stream primitives the codec
// engine encodes to and decodes from.
//
// Compact non-negative integers use unsigned LEB128; signed integers use
// signed LEB128; strings are LEB128-length-prefixed UTF-8; floats are
// fixed 8-byte little-endian. A value written with one of the Writer
// methods reads back with the matching Reader method.
//
// Writer appends to an in-memory buffer. Reader consumes any io.ByteReader
// and tracks its byte position so stream errors can report where they
// occurred. Neither is safe for concurrent use.
package wire
