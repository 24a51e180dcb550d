// Package wire holds what the gRPC server and client must agree on: the
// service and method names and the google.protobuf.Struct encoding of the
// JSON payloads. Messages carry the same JSON shape as the HTTP API, so no
// generated code is needed.
package wire

import (
	"encoding/json"
	"fmt"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName = "gophfund.v1.CampaignService"

	ListCampaignsMethod = "/" + ServiceName + "/ListCampaigns"
	PingMethod          = "/" + ServiceName + "/Ping"
)

// PingResponse is the payload of a successful Ping.
type PingResponse struct {
	Status string `json:"status"`
}

// ToStruct encodes v through its JSON form.
func ToStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return s, nil
}

// FromStruct decodes s into v through its JSON form. A nil struct decodes
// as an empty object.
func FromStruct(s *structpb.Struct, v any) error {
	if s == nil {
		s = &structpb.Struct{}
	}
	data, err := protojson.Marshal(s)
	if err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}
