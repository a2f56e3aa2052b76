package codec

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"

	"github.com/jiexingtech/kryo-serializers/errors"
	"github.com/jiexingtech/kryo-serializers/wire"
)

// nilID is the reserved stream ID written for nil values.
const nilID uint32 = 0

// Serializer encodes and decodes values of a single registered runtime
// type. The engine is passed back in so serializers can recurse through
// WriteTagged/ReadTagged for nested values.
type Serializer interface {
	Encode(e *Engine, w *wire.Writer, v any) error
	Decode(e *Engine, r *wire.Reader) (any, error)
}

type registration struct {
	ser Serializer
	typ reflect.Type
	id  uint32
}

// Engine is a registry-based serialization engine. Each registered
// concrete runtime type gets a stable small integer ID; WriteTagged
// prefixes every value with its type's ID so ReadTagged can restore the
// exact runtime type.
//
// Registration order determines IDs and is therefore part of the wire
// contract: encoder and decoder must register the same types in the same
// order. Register before the first encode or decode; after that the
// registry is treated as read-only and the engine is safe for concurrent
// use as long as the Writer/Reader passed in are not shared.
type Engine struct {
	byType map[reflect.Type]*registration
	byID   map[uint32]*registration
	nextID uint32
}

// New creates an engine with the basic value types pre-registered at
// fixed IDs: bool, int, int64, uint64, float64, string, []byte.
func New() *Engine {
	e := &Engine{
		byType: make(map[reflect.Type]*registration),
		byID:   make(map[uint32]*registration),
		nextID: nilID + 1,
	}
	// Fixed order, fixed IDs 1..7.
	e.mustRegister(false, boolSerializer{})
	e.mustRegister(int(0), intSerializer{})
	e.mustRegister(int64(0), int64Serializer{})
	e.mustRegister(uint64(0), uint64Serializer{})
	e.mustRegister(float64(0), float64Serializer{})
	e.mustRegister("", stringSerializer{})
	e.mustRegister([]byte(nil), bytesSerializer{})
	return e
}

// Register binds the concrete runtime type of prototype to s and assigns
// it the next stream ID. Re-registering an already-registered type
// replaces its serializer in place and keeps its ID.
func (e *Engine) Register(prototype any, s Serializer) error {
	if prototype == nil {
		return errors.NilValue(errors.PhaseRegister, "prototype must not be nil")
	}
	if s == nil {
		return errors.NilValue(errors.PhaseRegister, "serializer must not be nil")
	}
	t := reflect.TypeOf(prototype)
	if reg, ok := e.byType[t]; ok {
		reg.ser = s
		logger().Debug("replaced serializer",
			zap.String("type", t.String()),
			zap.Uint32("id", reg.id))
		return nil
	}
	reg := &registration{id: e.nextID, typ: t, ser: s}
	e.byType[t] = reg
	e.byID[reg.id] = reg
	e.nextID++
	logger().Debug("registered serializer",
		zap.String("type", t.String()),
		zap.Uint32("id", reg.id))
	return nil
}

func (e *Engine) mustRegister(prototype any, s Serializer) {
	if err := e.Register(prototype, s); err != nil {
		panic(err)
	}
}

// Registered reports whether the concrete runtime type of prototype has a
// serializer.
func (e *Engine) Registered(prototype any) bool {
	if prototype == nil {
		return false
	}
	_, ok := e.byType[reflect.TypeOf(prototype)]
	return ok
}

// WriteTagged serializes v together with its type's stream ID so that
// ReadTagged can reconstruct the exact runtime type. nil is written as the
// reserved ID 0 with no payload.
func (e *Engine) WriteTagged(w *wire.Writer, v any) error {
	if v == nil {
		w.WriteU32(nilID)
		return nil
	}
	reg, ok := e.byType[reflect.TypeOf(v)]
	if !ok {
		return errors.NotRegistered(errors.PhaseEncode,
			fmt.Sprintf("no serializer for %T", v))
	}
	w.WriteU32(reg.id)
	return reg.ser.Encode(e, w, v)
}

// ReadTagged is the inverse of WriteTagged: it reads the stream ID,
// dispatches to the registered serializer and returns the decoded value.
func (e *Engine) ReadTagged(r *wire.Reader) (any, error) {
	id, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	if id == nilID {
		return nil, nil
	}
	reg, ok := e.byID[id]
	if !ok {
		return nil, errors.NotRegistered(errors.PhaseDecode,
			fmt.Sprintf("no serializer for stream ID %d", id))
	}
	return reg.ser.Decode(e, r)
}

// TypeName returns the registered type name for a stream ID, for
// diagnostics. The second result is false if the ID is unknown.
func (e *Engine) TypeName(id uint32) (string, bool) {
	reg, ok := e.byID[id]
	if !ok {
		return "", false
	}
	return reg.typ.String(), true
}
