package union

import (
	"fmt"
	"strconv"
	"strings"
)

// InvalidMemberError reports a candidate that is not in the allowed member
// set. Value holds the rejected candidate and Allowed the de-duplicated
// member list, so callers can build their own messaging without re-deriving
// the set.
type InvalidMemberError struct {
	Value   string
	Allowed []string
}

// Error implements the error interface.
func (e *InvalidMemberError) Error() string {
	quoted := make([]string, len(e.Allowed))
	for i, v := range e.Allowed {
		quoted[i] = strconv.Quote(v)
	}
	return fmt.Sprintf("invalid union member: expected one of %s, got %s",
		strings.Join(quoted, " | "), strconv.Quote(e.Value))
}
