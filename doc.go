// Package kryoserializers provides a compact binary serialization engine
// with first-class support for read-only collection views.
//
// The engine writes values as type-tagged streams: every value is prefixed
// with a registration ID so a decoder can reconstruct the concrete type
// without out-of-band schema information. Read-only collection wrappers
// survive the round trip as wrappers, not as their mutable delegates.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	kryo-serializers/
//	├── codec/           Registry-based serialization engine
//	├── collections/     Collection types, read-only views and their serializers
//	├── wire/            LEB128 binary reader and writer primitives
//	├── errors/          Structured error types for debugging
//	└── cmd/inspect/     CLI for decoding and browsing encoded streams
//
// # Quick Start
//
// Build an engine, register the collection types and encode a value:
//
//	e := codec.New()
//	if err := collections.RegisterAll(e); err != nil {
//	    log.Fatal(err)
//	}
//
//	view := collections.UnmodifiableList(collections.NewArrayList("a", "b", "c"))
//
//	w := wire.NewWriter()
//	if err := e.WriteTagged(w, view); err != nil {
//	    log.Fatal(err)
//	}
//
// Decoding reverses the process and yields the same read-only view:
//
//	r := wire.NewReader(bytes.NewReader(w.Bytes()))
//	v, err := e.ReadTagged(r)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	list := v.(*collections.ReadOnlyRandomAccessList)
//
// Registration order determines stream IDs, so encoder and decoder must
// register the same types in the same order. RegisterAll gives both sides
// a fixed, shared ordering.
package kryoserializers
