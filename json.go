package union

import "encoding/json"

// DecodeJSON unmarshals a JSON string scalar and checks it against the
// union. Malformed JSON and non-string values surface as the json package's
// error; a well-formed string outside the member set surfaces as an
// *InvalidMemberError.
func (u Union[T]) DecodeJSON(data []byte) (T, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		var zero T
		return zero, err
	}
	return u.Check(s)
}
