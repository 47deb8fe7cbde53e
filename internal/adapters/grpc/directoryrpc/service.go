// Package directoryrpc はディレクトリサービスの gRPC サービス定義です。
// メッセージには protobuf の well-known type を用いるため、コード生成を必要としません。
package directoryrpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "educentre.directory.v1.DirectoryService"

const (
	AddRecordMethod     = "/" + ServiceName + "/AddRecord"
	EditRecordMethod    = "/" + ServiceName + "/EditRecord"
	DeleteRecordsMethod = "/" + ServiceName + "/DeleteRecords"
	CountOfMethod       = "/" + ServiceName + "/CountOf"
	GetRecordMethod     = "/" + ServiceName + "/GetRecord"
	ListAllMethod       = "/" + ServiceName + "/ListAll"
)

// DirectoryServiceServer はサーバー側で実装すべきインターフェースです。
type DirectoryServiceServer interface {
	AddRecord(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EditRecord(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteRecords(context.Context, *structpb.Struct) (*wrapperspb.Int64Value, error)
	CountOf(context.Context, *wrapperspb.StringValue) (*wrapperspb.Int64Value, error)
	GetRecord(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListAll(*wrapperspb.StringValue, ListAllServer) error
}

// ListAllServer は ListAll のサーバーストリームです。
type ListAllServer interface {
	Send(*wrapperspb.StringValue) error
	grpc.ServerStream
}

// UnimplementedDirectoryServiceServer は未実装メソッドに Unimplemented を返します。
type UnimplementedDirectoryServiceServer struct{}

func (UnimplementedDirectoryServiceServer) AddRecord(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method AddRecord not implemented")
}

func (UnimplementedDirectoryServiceServer) EditRecord(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method EditRecord not implemented")
}

func (UnimplementedDirectoryServiceServer) DeleteRecords(context.Context, *structpb.Struct) (*wrapperspb.Int64Value, error) {
	return nil, status.Error(codes.Unimplemented, "method DeleteRecords not implemented")
}

func (UnimplementedDirectoryServiceServer) CountOf(context.Context, *wrapperspb.StringValue) (*wrapperspb.Int64Value, error) {
	return nil, status.Error(codes.Unimplemented, "method CountOf not implemented")
}

func (UnimplementedDirectoryServiceServer) GetRecord(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetRecord not implemented")
}

func (UnimplementedDirectoryServiceServer) ListAll(*wrapperspb.StringValue, ListAllServer) error {
	return status.Error(codes.Unimplemented, "method ListAll not implemented")
}

// RegisterDirectoryServiceServer はサーバーにサービスを登録します。
func RegisterDirectoryServiceServer(s grpc.ServiceRegistrar, srv DirectoryServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// ServiceDesc は DirectoryService のサービス記述子です。
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*DirectoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "AddRecord", Handler: addRecordHandler},
		{MethodName: "EditRecord", Handler: editRecordHandler},
		{MethodName: "DeleteRecords", Handler: deleteRecordsHandler},
		{MethodName: "CountOf", Handler: countOfHandler},
		{MethodName: "GetRecord", Handler: getRecordHandler},
	},
	Streams: []grpc.StreamDesc{
		{StreamName: "ListAll", Handler: listAllHandler, ServerStreams: true},
	},
	Metadata: "educentre/directory/v1/directory.proto",
}

func addRecordHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DirectoryServiceServer).AddRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AddRecordMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DirectoryServiceServer).AddRecord(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func editRecordHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DirectoryServiceServer).EditRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: EditRecordMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DirectoryServiceServer).EditRecord(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func deleteRecordsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DirectoryServiceServer).DeleteRecords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DeleteRecordsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DirectoryServiceServer).DeleteRecords(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func countOfHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DirectoryServiceServer).CountOf(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CountOfMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DirectoryServiceServer).CountOf(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func getRecordHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DirectoryServiceServer).GetRecord(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GetRecordMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(DirectoryServiceServer).GetRecord(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func listAllHandler(srv any, stream grpc.ServerStream) error {
	in := new(wrapperspb.StringValue)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(DirectoryServiceServer).ListAll(in, &listAllServer{ServerStream: stream})
}

type listAllServer struct {
	grpc.ServerStream
}

func (x *listAllServer) Send(m *wrapperspb.StringValue) error {
	return x.ServerStream.SendMsg(m)
}
