package codec

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/jiexingtech/kryo-serializers/errors"
	"github.com/jiexingtech/kryo-serializers/wire"
)

// valueSerializer handles an arbitrary user type as an opaque msgpack
// block. The engine still writes the type's stream ID, so the exact Go
// type is restored on decode.
type valueSerializer[T any] struct{}

func (valueSerializer[T]) Encode(_ *Engine, w *wire.Writer, v any) error {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return errors.Wrap(errors.PhaseEncode, errors.KindInvalidData, err, "msgpack marshal")
	}
	w.WriteBlock(data)
	return nil
}

func (valueSerializer[T]) Decode(_ *Engine, r *wire.Reader) (any, error) {
	data, err := r.ReadBlock()
	if err != nil {
		return nil, err
	}
	var out T
	if err := msgpack.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "msgpack unmarshal")
	}
	return out, nil
}

// RegisterValue registers T with a msgpack-backed serializer. Use it for
// user struct types that appear as elements, keys or values inside
// serialized collections.
func RegisterValue[T any](e *Engine) error {
	var prototype T
	return e.Register(prototype, valueSerializer[T]{})
}
