package report

import "errors"

var ErrMalformedDuration = errors.New("malformed HH:MM duration")
