package grpcentropy

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/entropy/entropy"
)

// Client consumes a remote Entropy service. All draws advance the one shared
// generator on the server, so clients across a deployment observe a single
// canonical sequence.
type Client struct {
	cc     *grpc.ClientConn
	client EntropyClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, client: NewEntropyClient(cc), Timeout: 0}, nil
}

// NewClient wraps an existing connection (e.g., an in-process test conn).
func NewClient(cc *grpc.ClientConn) *Client {
	return &Client{cc: cc, client: NewEntropyClient(cc)}
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout > 0 {
		return context.WithTimeout(context.Background(), c.Timeout)
	}
	return context.Background(), func() {}
}

func (c *Client) Next32() (uint32, error) {
	ctx, cancel := c.ctx()
	defer cancel()
	out, err := c.client.Next32(ctx, &emptypb.Empty{})
	if err != nil {
		return 0, mapRPC(err)
	}
	return out.GetValue(), nil
}

func (c *Client) Next64() (uint64, error) {
	ctx, cancel := c.ctx()
	defer cancel()
	out, err := c.client.Next64(ctx, &emptypb.Empty{})
	if err != nil {
		return 0, mapRPC(err)
	}
	return out.GetValue(), nil
}

func (c *Client) Fill(n uint32) ([]byte, error) {
	ctx, cancel := c.ctx()
	defer cancel()
	out, err := c.client.Fill(ctx, wrapperspb.UInt32(n))
	if err != nil {
		return nil, mapRPC(err)
	}
	return out.GetValue(), nil
}

func (c *Client) Reseed(seed []byte) error {
	ctx, cancel := c.ctx()
	defer cancel()
	_, err := c.client.Reseed(ctx, wrapperspb.Bytes(seed))
	return mapRPC(err)
}

func (c *Client) Snapshot() (entropy.Record, error) {
	ctx, cancel := c.ctx()
	defer cancel()
	out, err := c.client.Snapshot(ctx, &emptypb.Empty{})
	if err != nil {
		return entropy.Record{}, mapRPC(err)
	}
	return entropy.DecodeSnapshot(out.GetValue())
}

func (c *Client) Restore(rec entropy.Record) error {
	b, err := entropy.EncodeSnapshot(rec)
	if err != nil {
		return err
	}
	ctx, cancel := c.ctx()
	defer cancel()
	_, err = c.client.Restore(ctx, wrapperspb.Bytes(b))
	return mapRPC(err)
}
