package expr

import (
	"github.com/ezrec/rvh/translate"
)

var f = translate.From

// ErrParseExpression is returned for an expression that does not evaluate
// to an integer representable in 64 bits.
type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("%v is not a valid expression", string(err))
}
