package models

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// DecodeError menandai payload backend yang tidak lolos skema.
// Dipisahkan dari error transport supaya caller bisa membedakan
// "server tidak terjangkau" dengan "server menjawab sampah".
type DecodeError struct {
	What string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.What, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DecodeStrict meng-unmarshal data lalu memvalidasi tag `validate` pada v.
// Payload duck-typed dari backend tidak boleh lolos begitu saja ke
// perhitungan harga/tanggal (parse, jangan percaya).
func DecodeStrict(data []byte, v interface{}, what string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &DecodeError{What: what, Err: err}
	}
	if err := validate.Struct(v); err != nil {
		return &DecodeError{What: what, Err: err}
	}
	return nil
}

// DecodeStrictSlice memvalidasi tiap elemen slice hasil unmarshal.
func DecodeStrictSlice[T any](data []byte, what string) ([]T, error) {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &DecodeError{What: what, Err: err}
	}
	for i := range items {
		if err := validate.Struct(&items[i]); err != nil {
			return nil, &DecodeError{What: what, Err: err}
		}
	}
	return items, nil
}
