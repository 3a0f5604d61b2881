// Package jsonx is the unified JSON decode/encode entry point for the JSON
// inputs the engine reads (catalog files, scan reports, rule files; the
// docker-compose topology document is YAML and is decoded by pkg/topology
// itself). It is adapted from the teacher project's pkg/jsonutil: a
// build-tag-gated pair of implementations, one backed by
// github.com/bytedance/sonic (-tags CONFIG_USE_SONIC) and one by the
// standard library's encoding/json, both wrapped through internal/errx so
// callers get a single error type regardless of which codec is compiled in.
package jsonx

import "github.com/cyw0ng95/attackgraph/internal/errx"

// MaxDocumentSize bounds how large a single input document may be, guarding
// against pathological inputs without imposing a real scan-data ceiling.
const MaxDocumentSize = 64 * 1024 * 1024 // 64MB

func wrapDecodeError(context string, err error) error {
	return errx.Wrap(errx.Code("ATTACKGRAPH_JSON_DECODE"), context, "", err)
}

// Unmarshal decodes data into v using the compiled-in codec.
func Unmarshal(data []byte, v interface{}) error {
	if v == nil {
		return errx.New(errx.Code("ATTACKGRAPH_JSON_DECODE"), "nil decode target", "")
	}
	if len(data) > MaxDocumentSize {
		return errx.New(errx.Code("ATTACKGRAPH_JSON_DECODE"), "document exceeds maximum size", "")
	}
	return unmarshal(data, v)
}

// Marshal encodes v using the compiled-in codec. Used by tests that
// round-trip fixtures.
func Marshal(v interface{}) ([]byte, error) {
	return marshal(v)
}
