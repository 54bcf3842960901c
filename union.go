package union

import (
	"strconv"
	"strings"
)

// Union is an immutable descriptor of a closed set of string constants.
// It bundles a membership test (Contains), a validating cast (Check) and
// the canonical member list (Values) over a single defined string type T,
// so code that parses untrusted strings can narrow them to T exactly once,
// at the boundary.
//
// The zero value is a union with no members: every Contains is false and
// every Check fails.
type Union[T ~string] struct {
	values  []T
	members map[string]struct{}
}

// New builds a Union over the given members. Construction never fails:
// an empty member list is legal (every check will fail) and duplicate
// members collapse into a single entry, keeping the first occurrence's
// position. The input slice is not retained.
func New[T ~string](values ...T) Union[T] {
	u := Union[T]{
		values:  make([]T, 0, len(values)),
		members: make(map[string]struct{}, len(values)),
	}
	for _, v := range values {
		if _, ok := u.members[string(v)]; ok {
			continue
		}
		u.members[string(v)] = struct{}{}
		u.values = append(u.values, v)
	}
	return u
}

// Contains reports whether candidate is a member of the union. It is a
// pure O(1) lookup, safe for concurrent use.
func (u Union[T]) Contains(candidate string) bool {
	_, ok := u.members[candidate]
	return ok
}

// Check returns candidate retyped as T when it is a member of the union.
// Otherwise it returns the zero T and an *InvalidMemberError carrying the
// rejected value and the full member list.
func (u Union[T]) Check(candidate string) (T, error) {
	if _, ok := u.members[candidate]; !ok {
		var zero T
		return zero, &InvalidMemberError{Value: candidate, Allowed: u.allowed()}
	}
	return T(candidate), nil
}

// MustCheck is like Check but panics on a non-member. Intended for
// initialization paths where the candidate is known at compile time.
func (u Union[T]) MustCheck(candidate string) T {
	v, err := u.Check(candidate)
	if err != nil {
		panic(err)
	}
	return v
}

// Values returns the members in first-occurrence order, de-duplicated.
// The returned slice is a copy; mutating it does not affect the union.
func (u Union[T]) Values() []T {
	out := make([]T, len(u.values))
	copy(out, u.values)
	return out
}

// String renders the member list as quoted literals joined with " | ",
// e.g. `"red" | "green"`.
func (u Union[T]) String() string {
	quoted := make([]string, len(u.values))
	for i, v := range u.values {
		quoted[i] = strconv.Quote(string(v))
	}
	return strings.Join(quoted, " | ")
}

func (u Union[T]) allowed() []string {
	out := make([]string, len(u.values))
	for i, v := range u.values {
		out[i] = string(v)
	}
	return out
}
