package chat

import "errors"

// ErrInvalidEncoding indicates a transcript line is not valid UTF-8.
var ErrInvalidEncoding = errors.New("chat: transcript is not valid UTF-8")
