package util

import (
	"encoding/json"

	"github.com/spaolacci/murmur3"
)

type EncoderDecoder[T any] interface {
	Encode(value T) ([]byte, error)
	Decode(data []byte) (*T, error)
}

type JsonEncDec[T any] struct{}

var _ EncoderDecoder[any] = new(JsonEncDec[any])

func NewJsonEncoderDecoder[T any]() *JsonEncDec[T] {
	return &JsonEncDec[T]{}
}

func (encdec *JsonEncDec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

func (encdec *JsonEncDec[T]) Decode(data []byte) (*T, error) {
	var res T
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Fingerprint hashes the encoded form of value. encoding/json writes map keys
// in sorted order, so equal values give equal fingerprints.
func Fingerprint[T any](encdec EncoderDecoder[T], value T) (uint64, error) {
	data, err := encdec.Encode(value)
	if err != nil {
		return 0, err
	}
	return murmur3.Sum64(data), nil
}
