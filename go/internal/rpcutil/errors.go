package rpcutil

import (
	"errors"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/mcdev12/castaway/go/internal/apperrors"
)

// ToConnectError maps an application error onto a connect status code. The error kind and,
// for validation failures, the offending field are also sent as response metadata.
func ToConnectError(err error) error {
	if err == nil {
		return nil
	}
	var ce *connect.Error
	if errors.As(err, &ce) {
		return ce
	}

	code := connect.CodeInternal
	kind := apperrors.KindOf(err)
	switch kind {
	case apperrors.KindValidation:
		code = connect.CodeInvalidArgument
	case apperrors.KindNotFound:
		code = connect.CodeNotFound
	case apperrors.KindConflict:
		code = connect.CodeFailedPrecondition
	case apperrors.KindTransaction:
		code = connect.CodeUnavailable
	}

	out := connect.NewError(code, err)
	if kind != "" {
		out.Meta().Set("Error-Kind", string(kind))
	}
	if field := apperrors.FieldOf(err); field != "" {
		out.Meta().Set("Error-Field", field)
	}
	return out
}

// ParseUUID parses a request id, reporting field on failure.
func ParseUUID(field, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, apperrors.Validation(field, "invalid uuid %q", s)
	}
	return id, nil
}
