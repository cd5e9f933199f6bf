package cli

import (
	"fmt"
	"io"
	"strings"

	"envcheck/internal/audit"
	"envcheck/internal/parser"
)

// Version is set at build time with -ldflags "-X envcheck/internal/cli.Version=..."
var Version = "dev"

// FormatReport produces the line-per-key output: the presence of each
// required key first, then every finding from the report.
func FormatReport(statuses []parser.KeyStatus, report *audit.Report) string {
	var sb strings.Builder

	for _, st := range statuses {
		if st.Present {
			fmt.Fprintf(&sb, "key %s is present in the environment file\n", st.Key)
		} else {
			fmt.Fprintf(&sb, "key %s is missing from the environment file\n", st.Key)
		}
	}

	if report == nil {
		return sb.String()
	}

	for _, issue := range report.Issues() {
		sb.WriteString(FormatIssue(issue))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// FormatIssue renders a single finding
func FormatIssue(issue audit.Issue) string {
	switch issue.Type {
	case audit.IssueMissing:
		return fmt.Sprintf("key %s is missing from the environment file", issue.Key)
	case audit.IssueEmpty:
		return fmt.Sprintf("key %s is empty in the environment file", issue.Key)
	default:
		return fmt.Sprintf("key %s is %s in the environment file", issue.Key, issue.Type)
	}
}

// PrintUsage outputs help text
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "envcheck [options] <env-file>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Check a .env file for missing, empty and duplicated keys.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options:")
	fmt.Fprint(w, newFlagSet(&Config{}, io.Discard).FlagUsages())
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Exit Codes:")
	fmt.Fprintln(w, "  0  Check completed")
	fmt.Fprintln(w, "  1  Empty values found with --strict-empty")
	fmt.Fprintln(w, "  2  Fatal error (invalid arguments, unreadable or malformed file)")
}
