package server

import (
	"context"
	"encoding/json"
	"fmt"

	coreGrpc "github.com/algebralab/algebralab/pkg/core/grpc"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls a remote Lab service.
type Client struct {
	conn *grpc.ClientConn
}

// Dial connects to the Lab service at target ("localhost:9310").
func Dial(target string, opts ...grpc.DialOption) (*Client, error) {
	conn, err := coreGrpc.Dial(coreGrpc.DefaultClientConfig(target), opts...)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn}, nil
}

// NewClient wraps an existing connection.
func NewClient(conn *grpc.ClientConn) *Client {
	return &Client{conn: conn}
}

// Call invokes method with req and decodes the result into resp. Both are
// service request/response values or anything with the same JSON shape.
func (c *Client) Call(ctx context.Context, method string, req, resp interface{}) error {
	in, err := toStruct(req)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, "/"+ServiceName+"/"+method, in, out); err != nil {
		return err
	}
	if resp == nil {
		return nil
	}
	if err := fromStruct(out, resp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// CallJSON invokes method with a raw JSON payload and returns the raw JSON
// result.
func (c *Client) CallJSON(ctx context.Context, method string, payload []byte) ([]byte, error) {
	var req interface{} = map[string]interface{}{}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, fmt.Errorf("invalid JSON payload: %w", err)
		}
	}
	var resp json.RawMessage
	if err := c.Call(ctx, method, req, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Health reports whether the server answers SERVING for the Lab service.
func (c *Client) Health(ctx context.Context) (bool, error) {
	resp, err := healthpb.NewHealthClient(c.conn).Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	if err != nil {
		return false, err
	}
	return resp.GetStatus() == healthpb.HealthCheckResponse_SERVING, nil
}

// Close closes the connection
func (c *Client) Close() error {
	return c.conn.Close()
}
