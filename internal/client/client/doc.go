// Package client talks to the gophfund server.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the listing endpoint and reachability checks.
//  2. A gRPC implementation (see GRPCClient) that invokes
//     gophfund.v1.CampaignService with google.protobuf.Struct payloads.
//  3. An HTTP implementation (see HTTPClient) of the same contract against
//     the JSON API, which additionally serves campaign details and
//     categories (see Detailer).
//
// # Error Handling
//
// Transport failures map to sentinels from internal/common so callers can
// use errors.Is: ErrUnavailable when the server cannot be reached,
// ErrFetchFailed when it answered with a failure, ErrNotFound for missing
// documents.
package client
