package lifecycle

import "errors"

// ErrInvalidRating indicates a feedback rating outside 1-5.
var ErrInvalidRating = errors.New("rating must be between 1 and 5")
