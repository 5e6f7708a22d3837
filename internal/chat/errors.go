package chat

import "errors"

var (
	// ErrEmptyMessage indicates the request carried no usable message.
	ErrEmptyMessage = errors.New("message is required")
)
