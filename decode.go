package ndjson

import "encoding/json"

// DecodeFunc converts the bytes of one line into a value of type T. It
// is called once per admitted line; each call is independent, a failure
// on one line never affects another. An error returned here is passed
// through to the consumer unchanged, wrapped in a *DecodeError.
type DecodeFunc[T any] func(line []byte) (T, error)

// JSONDecode returns the default DecodeFunc for T, backed by
// encoding/json.
func JSONDecode[T any]() DecodeFunc[T] {
	return func(line []byte) (T, error) {
		var v T
		err := json.Unmarshal(line, &v)
		return v, err
	}
}
