package union

import "gopkg.in/yaml.v3"

// DecodeYAML unmarshals a YAML string scalar and checks it against the
// union. The contract mirrors DecodeJSON: decode errors come from the yaml
// package, membership failures are *InvalidMemberError.
func (u Union[T]) DecodeYAML(data []byte) (T, error) {
	var s string
	if err := yaml.Unmarshal(data, &s); err != nil {
		var zero T
		return zero, err
	}
	return u.Check(s)
}
