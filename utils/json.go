package utils

import (
	"bytes"
	"encoding/json"
)

// DecodeStrict unmarshals body into v and rejects unknown fields, so patch
// payloads cannot smuggle in columns the patch type does not enumerate.
func DecodeStrict(body []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
