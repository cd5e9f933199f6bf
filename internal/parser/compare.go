package parser

// KeyStatus records whether a required key is defined in the target file
type KeyStatus struct {
	Key     string
	Present bool
}

// Presence checks each required key against the target values.
// Statuses follow the order of required.
func Presence(values map[string]string, required []string) []KeyStatus {
	statuses := make([]KeyStatus, 0, len(required))
	for _, key := range required {
		_, exists := values[key]
		statuses = append(statuses, KeyStatus{Key: key, Present: exists})
	}
	return statuses
}
