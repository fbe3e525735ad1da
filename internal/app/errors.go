package app

import "github.com/llehouerou/bookdate/internal/errmsg"

// Error ties a failure to the operation the user asked for. Context names
// the subject of the operation, such as the year text of a lookup.
type Error struct {
	Op      errmsg.Op
	Context string
	Err     error
}

func (e *Error) Error() string {
	return errmsg.FormatWith(e.Op, e.Context, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
