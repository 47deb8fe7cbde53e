package handler

import (
	"errors"

	"github.com/ogurasousui/edu-centre-directory/internal/core/person"
	"github.com/ogurasousui/edu-centre-directory/internal/core/store"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toStatusError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, person.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, store.ErrIndexOutOfRange):
		return status.Error(codes.OutOfRange, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
