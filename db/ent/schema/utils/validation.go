package utils

import "fmt"

// EnumValidator builds a field validator that accepts only the given values.
// Schemas use it to keep status and field-kind columns on their stable string
// sets without a database-level enum type.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q is not allowed", s)
	}
}
