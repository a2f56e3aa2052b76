package codec

import (
	"fmt"

	"github.com/jiexingtech/kryo-serializers/errors"
	"github.com/jiexingtech/kryo-serializers/wire"
)

// Serializers for the basic value types every engine starts with.

type boolSerializer struct{}

func (boolSerializer) Encode(_ *Engine, w *wire.Writer, v any) error {
	b, ok := v.(bool)
	if !ok {
		return errors.TypeMismatch(errors.PhaseEncode, fmt.Sprintf("%T", v), "bool")
	}
	if b {
		w.Byte(1)
	} else {
		w.Byte(0)
	}
	return nil
}

func (boolSerializer) Decode(_ *Engine, r *wire.Reader) (any, error) {
	b, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	return b != 0, nil
}

type intSerializer struct{}

func (intSerializer) Encode(_ *Engine, w *wire.Writer, v any) error {
	n, ok := v.(int)
	if !ok {
		return errors.TypeMismatch(errors.PhaseEncode, fmt.Sprintf("%T", v), "int")
	}
	w.WriteS64(int64(n))
	return nil
}

func (intSerializer) Decode(_ *Engine, r *wire.Reader) (any, error) {
	n, err := r.ReadS64()
	if err != nil {
		return nil, err
	}
	return int(n), nil
}

type int64Serializer struct{}

func (int64Serializer) Encode(_ *Engine, w *wire.Writer, v any) error {
	n, ok := v.(int64)
	if !ok {
		return errors.TypeMismatch(errors.PhaseEncode, fmt.Sprintf("%T", v), "int64")
	}
	w.WriteS64(n)
	return nil
}

func (int64Serializer) Decode(_ *Engine, r *wire.Reader) (any, error) {
	return r.ReadS64()
}

type uint64Serializer struct{}

func (uint64Serializer) Encode(_ *Engine, w *wire.Writer, v any) error {
	n, ok := v.(uint64)
	if !ok {
		return errors.TypeMismatch(errors.PhaseEncode, fmt.Sprintf("%T", v), "uint64")
	}
	w.WriteU64(n)
	return nil
}

func (uint64Serializer) Decode(_ *Engine, r *wire.Reader) (any, error) {
	return r.ReadU64()
}

type float64Serializer struct{}

func (float64Serializer) Encode(_ *Engine, w *wire.Writer, v any) error {
	f, ok := v.(float64)
	if !ok {
		return errors.TypeMismatch(errors.PhaseEncode, fmt.Sprintf("%T", v), "float64")
	}
	w.WriteF64(f)
	return nil
}

func (float64Serializer) Decode(_ *Engine, r *wire.Reader) (any, error) {
	return r.ReadF64()
}

type stringSerializer struct{}

func (stringSerializer) Encode(_ *Engine, w *wire.Writer, v any) error {
	s, ok := v.(string)
	if !ok {
		return errors.TypeMismatch(errors.PhaseEncode, fmt.Sprintf("%T", v), "string")
	}
	w.WriteString(s)
	return nil
}

func (stringSerializer) Decode(_ *Engine, r *wire.Reader) (any, error) {
	return r.ReadString()
}

type bytesSerializer struct{}

func (bytesSerializer) Encode(_ *Engine, w *wire.Writer, v any) error {
	b, ok := v.([]byte)
	if !ok {
		return errors.TypeMismatch(errors.PhaseEncode, fmt.Sprintf("%T", v), "[]byte")
	}
	w.WriteBlock(b)
	return nil
}

func (bytesSerializer) Decode(_ *Engine, r *wire.Reader) (any, error) {
	return r.ReadBlock()
}
