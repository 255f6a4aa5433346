package runtime

import "strings"

// mergeEnv combines the create payload's current environment with the
// spec-declared mapping. Declared entries win on key collision; entries
// unique to the current list are preserved. An entry without '=' is treated
// as a key with an empty value. Ordering of the result is unspecified.
func mergeEnv(current []string, declared map[string]string) []string {
	merged := make(map[string]string, len(declared)+len(current))
	for key, value := range declared {
		merged[key] = value
	}
	for _, entry := range current {
		key, value, _ := strings.Cut(entry, "=")
		if _, ok := merged[key]; !ok {
			merged[key] = value
		}
	}

	env := make([]string, 0, len(merged))
	for key, value := range merged {
		env = append(env, key+"="+value)
	}
	return env
}
