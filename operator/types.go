package operator

import "errors"

// Order selects the difference order of the operator.
type Order int

const (
	// First builds first differences: each row contrasts one neighbor pair.
	First Order = 1
	// Second builds second differences: Laplacian-like stencils per element.
	Second Order = 2
)

func (o Order) valid() bool { return o == First || o == Second }

// Sentinel errors for operator construction.
var (
	// ErrUnsupportedOrder indicates an order outside {First, Second}.
	ErrUnsupportedOrder = errors.New("operator: unsupported difference order")
	// ErrUnsupportedDomain indicates a Domain kind with no construction rule.
	ErrUnsupportedDomain = errors.New("operator: unsupported domain kind")
	// ErrCircularGraph indicates a circular boundary requested on a graph domain.
	ErrCircularGraph = errors.New("operator: circular boundary undefined for graph domains")
	// ErrNilDifference indicates Structure was called with a nil difference matrix.
	ErrNilDifference = errors.New("operator: nil difference matrix")
)
