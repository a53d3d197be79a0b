package dispatch

import (
	"os"

	"github.com/jorge-barreto/doccheck/internal/config"
)

// ExpandVars substitutes $VAR and ${VAR} in s using vars, falling back to
// the process environment. Unknown names expand to the empty string.
func ExpandVars(s string, vars map[string]string) string {
	return os.Expand(s, func(key string) string {
		if v, ok := vars[key]; ok {
			return v
		}
		return os.Getenv(key)
	})
}

// ExpandConfigVars expands ordered var entries in declaration order.
// Each value sees the built-ins plus every custom var declared before it.
func ExpandConfigVars(vars config.OrderedVars, builtins map[string]string) map[string]string {
	lookup := make(map[string]string, len(builtins)+len(vars))
	for k, v := range builtins {
		lookup[k] = v
	}
	result := make(map[string]string, len(vars))
	for _, entry := range vars {
		val := ExpandVars(entry.Value, lookup)
		result[entry.Key] = val
		if _, builtin := builtins[entry.Key]; !builtin {
			lookup[entry.Key] = val
		}
	}
	return result
}
