package gqlpager

import "errors"

var (
	ErrInvalidPage         = errors.New("page must be greater than or equal to 1")
	ErrInvalidPageSize     = errors.New("page size must be greater than or equal to 1")
	ErrOffsetOverflow      = errors.New("page offset overflows int")
	ErrInvalidArgument     = errors.New("invalid pagination argument")
	ErrInvalidFieldConfig  = errors.New("invalid paginated field config")
	ErrTypeConflict        = errors.New("generated type name already bound to another type")
	ErrNoPagination        = errors.New("no pagination in context")
	ErrUnresolvedType      = errors.New("cannot resolve target type name")
	ErrReservedTypeName    = errors.New("type name is reserved")
	ErrInvalidSortArgument = errors.New("invalid sort argument")
)
