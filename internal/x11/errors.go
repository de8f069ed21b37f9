package x11

import "errors"

// ErrConnClosed is returned when operating on a closed connection.
var ErrConnClosed = errors.New("x11 connection is closed")
