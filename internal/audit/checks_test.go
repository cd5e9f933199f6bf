package audit

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestCheckMissing(t *testing.T) {
	values := map[string]string{"A": "1", "C": ""}
	got := CheckMissing(values, []string{"D", "A", "B", "D", "C"})
	if diff := cmp.Diff([]string{"B", "D"}, got); diff != "" {
		t.Errorf("missing mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckMissing_NoRequired(t *testing.T) {
	if got := CheckMissing(map[string]string{"A": "1"}, nil); len(got) != 0 {
		t.Errorf("expected nothing missing, got %v", got)
	}
}

func TestCheckEmpty(t *testing.T) {
	values := map[string]string{
		"SPACES": "  ",
		"TAB":    "\t",
		"EMPTY":  "",
		"SET":    "x",
		"PADDED": " x ",
	}
	got := CheckEmpty(values)
	if diff := cmp.Diff([]string{"EMPTY", "SPACES", "TAB"}, got); diff != "" {
		t.Errorf("empty mismatch (-want +got):\n%s", diff)
	}
}

func TestCheckDuplicates(t *testing.T) {
	in := []string{"B", "A", "B", "B"}
	got := CheckDuplicates(in)
	if diff := cmp.Diff([]string{"A", "B"}, got); diff != "" {
		t.Errorf("duplicates mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"B", "A", "B", "B"}, in); diff != "" {
		t.Errorf("input must not be modified (-want +got):\n%s", diff)
	}
	if got := CheckDuplicates(nil); len(got) != 0 {
		t.Errorf("expected no duplicates, got %v", got)
	}
}

func TestIssueType_String(t *testing.T) {
	tests := map[IssueType]string{
		IssueMissing:   "missing",
		IssueEmpty:     "empty",
		IssueDuplicate: "duplicated",
		IssueType(42):  "unknown",
	}
	for typ, want := range tests {
		if got := typ.String(); got != want {
			t.Errorf("%d: got %q, want %q", typ, got, want)
		}
	}
}

// For any map, CheckEmpty returns exactly the keys whose trimmed value is
// empty, in ascending order.
func TestProperty_EmptyValueDetection(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	genValue := gen.OneGenOf(gen.AlphaString(), gen.OneConstOf("", " ", "\t", " \t "))
	genEnvMap := gen.MapOf(gen.Identifier(), genValue)

	properties.Property("CheckEmpty finds all whitespace-only values", prop.ForAll(
		func(env map[string]string) bool {
			got := CheckEmpty(env)
			if !sort.StringsAreSorted(got) {
				return false
			}
			var want []string
			for key, value := range env {
				if strings.TrimSpace(value) == "" {
					want = append(want, key)
				}
			}
			sort.Strings(want)
			return cmp.Equal(want, got, cmpopts.EquateEmpty())
		},
		genEnvMap,
	))

	properties.TestingRun(t)
}

// For any required list, CheckMissing returns the sorted, deduplicated set of
// required keys absent from the map.
func TestProperty_MissingRequiredDetection(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	genKey := gen.OneConstOf("A", "B", "C", "D", "E", "F")

	properties.Property("CheckMissing is sorted, unique and complete", prop.ForAll(
		func(env map[string]string, required []string) bool {
			got := CheckMissing(env, required)
			if !sort.StringsAreSorted(got) {
				return false
			}
			want := make(map[string]bool)
			for _, key := range required {
				if _, ok := env[key]; !ok {
					want[key] = true
				}
			}
			if len(got) != len(want) {
				return false
			}
			for _, key := range got {
				if !want[key] {
					return false
				}
			}
			return true
		},
		gen.MapOf(genKey, gen.AlphaString()),
		gen.SliceOf(genKey),
	))

	properties.TestingRun(t)
}
