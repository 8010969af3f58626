package export

import "errors"

var (
	// ErrNothingToRender is returned for a frame without data.
	ErrNothingToRender = errors.New("nothing to render")
	// ErrUnsupportedView is returned when a format cannot draw the view.
	ErrUnsupportedView = errors.New("view not supported by this format")
	// ErrUnknownFormat is returned for an unrecognised file extension.
	ErrUnknownFormat = errors.New("unknown export format")
)
