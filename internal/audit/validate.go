package audit

import "envcheck/internal/parser"

// Report aggregates the validation findings for one parsed file
type Report struct {
	Missing    []string
	Empty      []string
	Duplicates []string
}

// Validate cross-checks a parsed file against the required keys.
// It never fails and does not modify parsed.
func Validate(parsed *parser.ParsedFile, required []string) *Report {
	if parsed == nil {
		parsed = &parser.ParsedFile{}
	}
	return &Report{
		Missing:    CheckMissing(parsed.Values, required),
		Empty:      CheckEmpty(parsed.Values),
		Duplicates: CheckDuplicates(parsed.Duplicates),
	}
}

// HasErrors returns true if any key is missing, empty or duplicated
func (r *Report) HasErrors() bool {
	return len(r.Missing) > 0 || len(r.Empty) > 0 || len(r.Duplicates) > 0
}

// Issues flattens the report: missing keys first, then empty, then duplicated
func (r *Report) Issues() []Issue {
	var issues []Issue
	for _, key := range r.Missing {
		issues = append(issues, Issue{Type: IssueMissing, Key: key})
	}
	for _, key := range r.Empty {
		issues = append(issues, Issue{Type: IssueEmpty, Key: key})
	}
	for _, key := range r.Duplicates {
		issues = append(issues, Issue{Type: IssueDuplicate, Key: key})
	}
	return issues
}
