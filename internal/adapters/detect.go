package adapters

import "strings"

// headerSet extracts the lowercased column names from the first non-empty
// line of a detection sample. Detection heuristics match column names
// against this set; they never tokenize the whole file.
func headerSet(sample string) map[string]bool {
	var line string
	for _, l := range strings.Split(sample, "\n") {
		if strings.TrimSpace(l) != "" {
			line = strings.TrimPrefix(l, "\ufeff")
			break
		}
	}
	if line == "" {
		return nil
	}
	out := make(map[string]bool)
	for _, name := range strings.FieldsFunc(line, func(r rune) bool {
		return r == rune(detectDelimiter(line))
	}) {
		out[strings.ToLower(strings.Trim(strings.TrimSpace(name), `"`))] = true
	}
	return out
}

func hasAll(h map[string]bool, names ...string) bool {
	for _, n := range names {
		if !h[n] {
			return false
		}
	}
	return len(names) > 0
}

func hasAny(h map[string]bool, names ...string) bool {
	for _, n := range names {
		if h[n] {
			return true
		}
	}
	return false
}

func sampleContains(sample, word string) bool {
	return strings.Contains(strings.ToLower(sample), strings.ToLower(word))
}
