package model

import "errors"

// ErrInvalidInput marks malformed input: empty series, non-positive windows
// or risk percentages, negative date deltas. Always rejected before any
// computation starts.
var ErrInvalidInput = errors.New("invalid input")

// ErrUnsupportedSignalKind is returned when performance evaluation is
// attempted on anything but a BUY signal.
var ErrUnsupportedSignalKind = errors.New("unsupported signal kind")
