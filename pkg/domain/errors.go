package domain

import "errors"

// ErrUnknownEvent is returned when decoding an envelope whose event name
// has no registered decoder.
var ErrUnknownEvent = errors.New("domain: unknown event")
