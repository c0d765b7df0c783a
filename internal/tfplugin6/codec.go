package tfplugin6

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

// jsonCodec implements google.golang.org/grpc/encoding.Codec. It stands in
// for the protobuf wire codec protoc-gen-go would normally generate for
// this service (see doc.go), marshaling the hand-authored message structs
// with encoding/json.
type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return Name }

// Name is the codec's content-subtype, registered with grpc's global codec
// registry in init. A grpc server picks it for calls whose content-subtype
// is Name; the transport package sets no codec option of its own, so calls
// with any other content-subtype use grpc's default codec.
const Name = "tfplugin6json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
