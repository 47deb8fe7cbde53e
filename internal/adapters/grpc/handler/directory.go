package handler

import (
	"context"

	"github.com/ogurasousui/edu-centre-directory/internal/adapters/grpc/directoryrpc"
	"github.com/ogurasousui/edu-centre-directory/internal/core/directory"
	"github.com/ogurasousui/edu-centre-directory/internal/core/person"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// DirectoryGrpcHandler は DirectoryService の gRPC 実装です。
type DirectoryGrpcHandler struct {
	svc directory.UseCase
	directoryrpc.UnimplementedDirectoryServiceServer
}

// NewDirectoryGrpcHandler は DirectoryGrpcHandler を生成します。
func NewDirectoryGrpcHandler(svc directory.UseCase) *DirectoryGrpcHandler {
	return &DirectoryGrpcHandler{svc: svc}
}

// AddRecord はレコードを追加します。
func (h *DirectoryGrpcHandler) AddRecord(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	in, err := toAddRecordInput(req)
	if err != nil {
		return nil, toStatusError(err)
	}

	created, err := h.svc.AddRecord(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	return recordResponse(created)
}

// EditRecord は指定位置のレコードを部分更新します。
func (h *DirectoryGrpcHandler) EditRecord(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	in, err := toEditRecordInput(req)
	if err != nil {
		return nil, toStatusError(err)
	}

	updated, err := h.svc.EditRecord(ctx, in)
	if err != nil {
		return nil, toStatusError(err)
	}

	return recordResponse(updated)
}

// DeleteRecords は指定位置のレコードをまとめて削除します。
func (h *DirectoryGrpcHandler) DeleteRecords(ctx context.Context, req *structpb.Struct) (*wrapperspb.Int64Value, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	kind, err := kindField(req)
	if err != nil {
		return nil, toStatusError(err)
	}
	indices, err := intListField(req, fieldIndices)
	if err != nil {
		return nil, toStatusError(err)
	}

	removed, err := h.svc.DeleteRecords(ctx, directory.DeleteRecordsInput{Kind: kind, Indices: indices})
	if err != nil {
		return nil, toStatusError(err)
	}

	return wrapperspb.Int64(int64(removed)), nil
}

// CountOf は種別ごとの件数を返します。
func (h *DirectoryGrpcHandler) CountOf(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.Int64Value, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	kind, err := person.ParseKind(req.GetValue())
	if err != nil {
		return nil, toStatusError(err)
	}

	n, err := h.svc.CountOf(ctx, kind)
	if err != nil {
		return nil, toStatusError(err)
	}

	return wrapperspb.Int64(int64(n)), nil
}

// GetRecord は指定位置のレコードを返します。
func (h *DirectoryGrpcHandler) GetRecord(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	kind, err := kindField(req)
	if err != nil {
		return nil, toStatusError(err)
	}
	index, err := requiredIntField(req, fieldIndex)
	if err != nil {
		return nil, toStatusError(err)
	}

	found, err := h.svc.GetRecord(ctx, directory.GetRecordInput{Kind: kind, Index: index})
	if err != nil {
		return nil, toStatusError(err)
	}

	return recordResponse(found)
}

// ListAll はフィルタに一致するサマリ行をストリームで返します。空のフィルタは All とみなします。
func (h *DirectoryGrpcHandler) ListAll(req *wrapperspb.StringValue, stream directoryrpc.ListAllServer) error {
	filter := directory.FilterAll
	if raw := req.GetValue(); raw != "" {
		parsed, err := directory.ParseFilter(raw)
		if err != nil {
			return toStatusError(err)
		}
		filter = parsed
	}

	lines, err := h.svc.ListAll(stream.Context(), filter)
	if err != nil {
		return toStatusError(err)
	}

	for line := range lines {
		if err := stream.Send(wrapperspb.String(line)); err != nil {
			return err
		}
	}
	return nil
}

func recordResponse(r *person.Record) (*structpb.Struct, error) {
	out, err := toRecordStruct(r)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return out, nil
}

func toAddRecordInput(req *structpb.Struct) (directory.AddRecordInput, error) {
	var in directory.AddRecordInput

	rawKind, err := stringOrEmpty(req, fieldKind)
	if err != nil {
		return in, err
	}
	if rawKind != "" {
		kind, err := person.ParseKind(rawKind)
		if err != nil {
			return in, err
		}
		in.Kind = kind
	}

	for key, dst := range map[string]*string{
		fieldName:           &in.Name,
		fieldTelephone:      &in.Telephone,
		fieldEmail:          &in.Email,
		fieldSubject1:       &in.Subject1,
		fieldSubject2:       &in.Subject2,
		fieldSubject3:       &in.Subject3,
		fieldEmploymentType: &in.EmploymentType,
	} {
		if *dst, err = stringOrEmpty(req, key); err != nil {
			return in, err
		}
	}

	if in.Salary, err = salaryField(req); err != nil {
		return in, err
	}
	if in.WorkingHours, err = intField(req, fieldWorkingHours); err != nil {
		return in, err
	}

	return in, nil
}

func toEditRecordInput(req *structpb.Struct) (directory.EditRecordInput, error) {
	var in directory.EditRecordInput

	kind, err := kindField(req)
	if err != nil {
		return in, err
	}
	in.Kind = kind

	if in.Index, err = requiredIntField(req, fieldIndex); err != nil {
		return in, err
	}

	p := &in.Patch
	for key, dst := range map[string]**string{
		fieldName:           &p.Name,
		fieldTelephone:      &p.Telephone,
		fieldEmail:          &p.Email,
		fieldSubject1:       &p.Subject1,
		fieldSubject2:       &p.Subject2,
		fieldSubject3:       &p.Subject3,
		fieldEmploymentType: &p.EmploymentType,
	} {
		if *dst, err = stringField(req, key); err != nil {
			return in, err
		}
	}

	if p.Salary, err = salaryField(req); err != nil {
		return in, err
	}
	if p.WorkingHours, err = intField(req, fieldWorkingHours); err != nil {
		return in, err
	}

	return in, nil
}
