package preview

import "errors"

var (
	// ErrNilModel is returned when a proxy is constructed without a
	// source model. This is a caller contract violation.
	ErrNilModel = errors.New("preview: model is nil")

	// ErrNoVisibleContent is returned when the source model carries no
	// materials. The proxy is still constructed but renders nothing.
	ErrNoVisibleContent = errors.New("preview: model has no renderable content")
)
