package parser

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// ParsedFile contains parsed entries and the keys defined more than once
type ParsedFile struct {
	Values     map[string]string
	Duplicates []string
}

// ParseError reports a malformed line
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %d: %s", e.Line, e.Msg)
}

// ParseFile reads and parses a .env file.
// Read failures are returned as-is.
func ParseFile(path string) (*ParsedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// Parse parses .env content. The whole input is rejected on the first
// malformed line.
func Parse(content string) (*ParsedFile, error) {
	result := &ParsedFile{
		Values:     make(map[string]string),
		Duplicates: []string{},
	}

	for i, raw := range strings.Split(content, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		line = stripExport(line)

		idx := strings.Index(line, "=")
		if idx == -1 {
			return nil, &ParseError{Line: lineNo, Msg: "expected KEY=VALUE"}
		}

		key := strings.TrimSpace(line[:idx])
		if key == "" {
			return nil, &ParseError{Line: lineNo, Msg: "empty key"}
		}
		if msg := checkKey(key); msg != "" {
			return nil, &ParseError{Line: lineNo, Msg: msg}
		}

		value := unquote(strings.TrimSpace(line[idx+1:]))

		if _, exists := result.Values[key]; exists {
			result.Duplicates = append(result.Duplicates, key)
		}
		result.Values[key] = value
	}

	return result, nil
}

// ParseRequiredKeysFile reads an example file and returns its keys
func ParseRequiredKeysFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRequiredKeys(string(data))
}

// ParseRequiredKeys returns the sorted keys defined in content. Values are ignored.
func ParseRequiredKeys(content string) ([]string, error) {
	parsed, err := Parse(content)
	if err != nil {
		return nil, err
	}
	return sortedKeys(parsed.Values), nil
}

// IsValidKey reports whether key is a usable variable name: [A-Za-z0-9_]+
// not starting with a digit.
func IsValidKey(key string) bool {
	return key != "" && checkKey(key) == ""
}

// checkKey returns the parse error message for a bad non-empty key, or ""
func checkKey(key string) string {
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		case c >= '0' && c <= '9':
			if i == 0 {
				return fmt.Sprintf("invalid key: '%s' (must not start with a digit)", key)
			}
		default:
			return fmt.Sprintf("invalid key: '%s' (expected alphanumeric or underscore)", key)
		}
	}
	return ""
}

// stripExport drops a leading "export" token followed by whitespace
func stripExport(line string) string {
	const prefix = "export"
	if len(line) <= len(prefix) || !strings.HasPrefix(line, prefix) {
		return line
	}
	if c := line[len(prefix)]; c != ' ' && c != '\t' {
		return line
	}
	return strings.TrimSpace(line[len(prefix):])
}

// unquote removes one pair of surrounding quotes from a value
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// sortedKeys returns sorted keys from a map
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
