package resumes

import "errors"

// ErrNotFound covers both a resume that does not exist and one owned by a
// different user. The two cases are deliberately indistinguishable so callers
// cannot probe other users' resume ids.
var ErrNotFound = errors.New("resume not found")
