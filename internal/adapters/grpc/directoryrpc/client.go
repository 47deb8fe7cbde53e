package directoryrpc

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client は DirectoryService の gRPC クライアントです。
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient は Client を生成します。
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) AddRecord(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, AddRecordMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) EditRecord(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, EditRecordMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteRecords(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	out := new(wrapperspb.Int64Value)
	if err := c.cc.Invoke(ctx, DeleteRecordsMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CountOf(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	out := new(wrapperspb.Int64Value)
	if err := c.cc.Invoke(ctx, CountOfMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetRecord(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GetRecordMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAll はサマリ行をすべて受信して返します。
func (c *Client) ListAll(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) ([]string, error) {
	stream, err := c.cc.NewStream(ctx, &ServiceDesc.Streams[0], ListAllMethod, opts...)
	if err != nil {
		return nil, err
	}
	if err := stream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := stream.CloseSend(); err != nil {
		return nil, err
	}

	var lines []string
	for {
		line := new(wrapperspb.StringValue)
		if err := stream.RecvMsg(line); err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return nil, err
		}
		lines = append(lines, line.GetValue())
	}
}
