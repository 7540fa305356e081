package domain

import "errors"

// ErrNoChange is returned in strict mode when an edit leaves the source as it was.
var ErrNoChange = errors.New("edit did not change the source")
