package domain

import "errors"

// ErrEmptyTrack reports an input with zero usable trackpoints. Fatal for
// the whole run; no output file is written.
var ErrEmptyTrack = errors.New("track contains no points")
