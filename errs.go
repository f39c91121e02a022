package yamlflat

import "fmt"

// DuplicateValueError reports two flattened keys that assign values
// to the same position, or to a position and one of its ancestors.
//
// Key is the full path whose handling detected the conflict; Token is
// the segment of Key at which the conflict was found, which may sit
// before the end of Key when an earlier pair already claimed a prefix
// as a leaf.
type DuplicateValueError struct {
	Key   string
	Token string
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("while handling key %q, found a token %q that has at least 2 values", e.Key, e.Token)
}
