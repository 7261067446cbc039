package ledgerapi

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// Codec carries the plain-struct messages of this package as JSON.
// It registers under the name "json", replacing connect's protobuf JSON codec.
var Codec connect.Codec = jsonCodec{}

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
