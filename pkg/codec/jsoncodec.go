// pkg/codec/jsoncodec.go
package codec

import (
	"bytes"
	"encoding/json"
)

// Codec marshals response payloads and names their content type.
type Codec interface {
	Marshal(v any) ([]byte, error)
	ContentType() string
}

type jsonCodec struct{}

// JSON never HTML-escapes payloads; the diagnostics routes serve operators,
// not browsers rendering untrusted content.
var JSON Codec = jsonCodec{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func (jsonCodec) ContentType() string { return "application/json" }
