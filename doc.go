// Package union constructs runtime-checked string unions: closed sets of
// string constants with a membership test, a validating cast and the
// canonical member list.
//
// Declare a defined string type for the union, build the descriptor once,
// and use it wherever untrusted strings (JSON, YAML, environment values,
// request fields) cross into typed code:
//
//	type Env string
//
//	var Envs = union.New[Env]("dev", "staging", "prod")
//
//	env, err := Envs.Check(os.Getenv("APP_ENV"))
//	if err != nil {
//	    // *union.InvalidMemberError: expected one of "dev" | "staging" | "prod", ...
//	}
//
// Check returns the candidate retyped as Env, so the compiler enforces the
// narrowing everywhere the value flows afterwards. Descriptors are immutable
// and safe for concurrent use.
package union
