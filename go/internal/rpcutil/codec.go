// Package rpcutil holds the connect plumbing shared by every service: the JSON codec, error
// mapping, request logging and handler registration.
package rpcutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// JSONCodec marshals plain Go structs. It is registered under connect's "json" name so
// application/json requests work without protobuf descriptors.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Unmarshal(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	return nil
}
