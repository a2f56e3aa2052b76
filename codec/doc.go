// Package codec provides a registry-based serialization engine.
//
// The engine binds concrete Go runtime types to Serializer implementations
// and writes every value prefixed with its type's small integer stream ID,
// so the decode side can restore the exact runtime type without any
// schema.
//
// # Wire Format
//
// A tagged value is:
//
//	[stream ID : LEB128][payload : serializer-defined]
//
// ID 0 is reserved for nil. IDs are assigned in registration order, so
// order is part of the wire contract between encoder and decoder.
//
// # Usage
//
//	e := codec.New() // basic value types pre-registered
//	codec.RegisterValue[Point](e)
//
//	w := wire.NewWriter()
//	if err := e.WriteTagged(w, Point{1, 2}); err != nil { ... }
//
//	r := wire.NewReader(bytes.NewReader(w.Bytes()))
//	v, err := e.ReadTagged(r) // v is Point{1, 2}
//
// # Registries Are Values
//
// There is no global registry. Each Engine owns its own registry, so tests
// and independent pipelines can build fresh engines without interfering
// with each other.
//
// # Thread Safety
//
// Register before the first encode or decode. After setup the registry is
// read-only and the engine may be used from multiple goroutines, provided
// each goroutine uses its own Writer/Reader.
package codec
