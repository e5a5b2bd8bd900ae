package catalog

import pkgerrors "github.com/yungbote/aislechef-backend/internal/pkg/errors"

var (
	ErrNotFound        = pkgerrors.ErrNotFound
	ErrInvalidArgument = pkgerrors.ErrInvalidArgument
	ErrConflict        = pkgerrors.ErrConflict
)
