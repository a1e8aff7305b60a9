package itinerary

import "errors"

var (
	ErrDayIndex            = errors.New("day index out of range")
	ErrActivityIndex       = errors.New("activity index out of range")
	ErrImageIndex          = errors.New("image index out of range")
	ErrRecommendationIndex = errors.New("recommendation index out of range")
	ErrUnknownField        = errors.New("unknown activity field")
	ErrFirstDayAlternative = errors.New("first day cannot be an alternative")
	ErrNotAdjacent         = errors.New("days are not adjacent")
	ErrNotPermutation      = errors.New("order is not a permutation of the current list")
	ErrNoDays              = errors.New("itinerary has no days")
)
