package plot

import "errors"

// ErrInvalidPlotSpec is returned for malformed specs: nil or unknown
// variants, non-finite parameters, or parameters outside a variant's domain.
var ErrInvalidPlotSpec = errors.New("invalid plot spec")

// ErrDegenerateParameters is returned by Validate for specs that sample
// without error but cannot produce their feature, such as a quadratic with
// a = 0 or a system of parallel lines.
var ErrDegenerateParameters = errors.New("degenerate function parameters")
