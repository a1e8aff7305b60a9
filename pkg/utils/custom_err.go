package utils

import "errors"

var (
	ErrDatabaseError = errors.New("database error")
	ErrInvalidInput  = errors.New("invalid input")
	ErrForbidden     = errors.New("forbidden")

	ErrTourNotFound                  = errors.New("tour not found")
	ErrDayIndexOutOfRange            = errors.New("day index out of range")
	ErrActivityIndexOutOfRange       = errors.New("activity index out of range")
	ErrImageIndexOutOfRange          = errors.New("image index out of range")
	ErrRecommendationIndexOutOfRange = errors.New("recommendation index out of range")
	ErrFirstDayAlternative           = errors.New("first day cannot be an alternative")
	ErrInvalidField                  = errors.New("invalid activity field")
	ErrDaysNotAdjacent               = errors.New("days are not adjacent")
	ErrInvalidOrder                  = errors.New("order is not a permutation")
	ErrNoDays                        = errors.New("tour has no days")
	ErrNotPromotable                 = errors.New("activity is already linked to the catalog")
	ErrActivityChanged               = errors.New("activity changed while it was being saved")

	ErrCountryRequired = errors.New("country is required")

	ErrSelectorNotFound = errors.New("selector session not found")
	ErrSelectorBusy     = errors.New("selector is applying a selection")
	ErrSelectorClosed   = errors.New("selector session is closed")
	ErrSelectionEmpty   = errors.New("nothing selected")

	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrUploadFailed    = errors.New("upload failed")
)
