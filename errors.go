package formtree

import "errors"

var (
	// ErrPathSyntax indicates an entry path that does not conform to the
	// bracket-path grammar (empty name, unterminated or non-numeric bracket).
	ErrPathSyntax = errors.New("formtree: malformed path")

	// ErrDuplicateKey indicates a path assigned a value more than once, or a
	// leaf and a container colliding at the same path.
	ErrDuplicateKey = errors.New("formtree: duplicate key")

	// ErrMixedArray indicates an array addressed with both explicit and
	// auto-append index styles.
	ErrMixedArray = errors.New("formtree: mixed array index styles")

	// ErrTransform indicates an entry value that cannot be coerced by its
	// path marker.
	ErrTransform = errors.New("formtree: invalid value")
)
