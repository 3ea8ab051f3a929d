package timegrid

import "errors"

// Layout engine errors. Malformed individual items are skipped and logged
// rather than failing a whole layout pass; an invalid grid configuration
// fails the pass, since that is a programming error rather than a
// data-quality issue.
var (
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvalidRange      = errors.New("invalid grid range")
	ErrItemOutOfGrid     = errors.New("item outside grid window")
)
