// Package storage persists each lifeos area as one JSON document under a
// fixed key in a key/value table.
package storage

// Storage keys, one document per area
const (
	TasksKey       = "lifeos-tasks-data"
	ProgrammingKey = "lifeos-programming-data"
	FreelancingKey = "lifeos-freelancing-data"
	UniversityKey  = "lifeos-university-data"
	NotesKey       = "lifeos-notes-data"
)

// Keys lists every key lifeos owns
var Keys = []string{TasksKey, ProgrammingKey, FreelancingKey, UniversityKey, NotesKey}

// IsKnownKey reports whether key belongs to lifeos
func IsKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}
