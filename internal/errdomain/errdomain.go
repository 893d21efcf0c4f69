// Package errdomain defines the sentinel error raised by pseries and
// pseries/eval when a precondition fails. Divergence during numerical
// evaluation is reported separately, by pseries/eval's DivergenceError.
//
// A power series built from in-memory coefficient streams has no source
// location to report, so this follows the lighter sentinel-error idiom:
// a package-level errors.New sentinel, wrapped with call-specific context
// via fmt.Errorf("%w: ...").
package errdomain

import "errors"

// ErrInvalidDomain is returned when an algebraic operation's precondition
// is violated: reciprocal or square root of a series with a zero constant
// term, composition/exponential/logarithm/inverse applied to a series
// with the wrong constant or linear term, or a non-numeric evaluation
// point. Callers should test for it with errors.Is and inspect the message
// for which precondition failed.
var ErrInvalidDomain = errors.New("pseries: invalid domain")
