package audit

import (
	"sort"
	"strings"
)

// IssueType represents the category of a validation finding
type IssueType int

const (
	IssueMissing IssueType = iota
	IssueEmpty
	IssueDuplicate
)

func (t IssueType) String() string {
	switch t {
	case IssueMissing:
		return "missing"
	case IssueEmpty:
		return "empty"
	case IssueDuplicate:
		return "duplicated"
	default:
		return "unknown"
	}
}

// Issue represents a single finding for one key
type Issue struct {
	Type IssueType
	Key  string
}

// CheckMissing finds required keys not defined in values.
// Required keys are deduplicated; the result is sorted.
func CheckMissing(values map[string]string, required []string) []string {
	missing := []string{}
	seen := make(map[string]bool)
	for _, key := range required {
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, exists := values[key]; !exists {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

// CheckEmpty finds keys whose value is empty or whitespace only, sorted
func CheckEmpty(values map[string]string) []string {
	empty := []string{}
	for key, value := range values {
		if strings.TrimSpace(value) == "" {
			empty = append(empty, key)
		}
	}
	sort.Strings(empty)
	return empty
}

// CheckDuplicates sorts and deduplicates the duplicate keys recorded by the parser
func CheckDuplicates(duplicates []string) []string {
	keys := make([]string, len(duplicates))
	copy(keys, duplicates)
	sort.Strings(keys)

	out := keys[:0]
	for i, key := range keys {
		if i > 0 && key == keys[i-1] {
			continue
		}
		out = append(out, key)
	}
	return out
}
