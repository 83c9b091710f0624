// Package ndjson parses newline-delimited JSON (NDJSON) streams
// incrementally. Input arrives in chunks of arbitrary size, chunk
// boundaries carry no meaning: a record may be split mid-line or even
// mid-character, and the parser reassembles it before decoding. One
// result is produced per logical line, in arrival order, without ever
// buffering the whole stream.
//
// Key components:
//   - Engine: the low-level chunk-in, record-out parser
//   - Scanner / FallibleScanner: pull-based drivers over a chunk source
//   - Source / FallibleSource: pluggable chunk producers (slices,
//     strings, io.Reader, channels)
//   - Config: empty-line handling and final-line policy
//
// A decode failure is scoped to its line and never ends the sequence.
// Likewise, a FallibleSource read error is reported as a single
// *InputError item and the source is simply asked again on the next
// pull. The only way a sequence ends is source exhaustion, after which
// an unterminated trailing line, if any, is emitted as the final record.
//
// The common case reads records of some struct type T from chunks:
//
//	type Person struct {
//		Name string `json:"name"`
//		Age  int    `json:"age"`
//	}
//
//	sc := ndjson.FromStrings[Person]([]string{
//		"{\"name\":\"Alice\",\"age\":25}\n",
//		"{\"name\":\"Bob\",",
//		"\"age\":35}\r\n",
//	}, ndjson.Config{})
//
//	for p, err := range sc.All() {
//		if err != nil {
//			// one bad line, sequence continues
//			continue
//		}
//		fmt.Println(p.Name, p.Age)
//	}
//
// Decoding is delegated to encoding/json by default and can be replaced
// per scanner with a DecodeFunc, for example to route through a custom
// unmarshaler or to pre-validate lines.
package ndjson
