package index

import apperrors "github.com/agbru/widemath/internal/errors"

// Error kinds reported by this package. Match them with errors.Is.
var (
	ErrInvalidArgument    = apperrors.ErrInvalidArgument
	ErrOutOfRange         = apperrors.ErrOutOfRange
	ErrUnsupportedVersion = apperrors.ErrUnsupportedVersion
)
