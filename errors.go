package fnplot

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain reports an invalid configuration: an empty or inverted
	// range, too few samples, a canvas too small to hold a graph, no data
	// to plot, an unknown color or output format.
	ErrDomain = errors.New("fnplot: domain error")

	// ErrState reports an operation on a plot which has already been
	// written.
	ErrState = errors.New("fnplot: plot already written")
)

func domainErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrDomain}, args...)...)
}
