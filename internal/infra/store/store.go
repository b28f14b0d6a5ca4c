package store

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"wlanprofiles/internal/domain"
)

// ProfileStore maps profile names to passwords, keeping first-insertion order.
// It is not safe for concurrent use.
type ProfileStore struct {
	entries *orderedmap.OrderedMap[string, string]
}

func New() *ProfileStore {
	return &ProfileStore{entries: orderedmap.New[string, string]()}
}

// Set inserts or overwrites a single profile.
func (s *ProfileStore) Set(name, password string) {
	s.entries.Set(name, password)
}

// Merge applies records in order; the last value for a name wins and the
// name keeps the position of its first insertion.
func (s *ProfileStore) Merge(records ...domain.ProfileRecord) {
	for _, record := range records {
		s.entries.Set(record.Name, record.Password)
	}
}

func (s *ProfileStore) Get(name string) (string, error) {
	password, ok := s.entries.Get(name)
	if !ok {
		return "", domain.E(domain.CodeNotFound, "store.Get", "profile "+name+" not found", domain.ErrProfileNotFound)
	}
	return password, nil
}

func (s *ProfileStore) Len() int {
	return s.entries.Len()
}

// Records returns a copy of the stored profiles in insertion order.
func (s *ProfileStore) Records() []domain.ProfileRecord {
	records := make([]domain.ProfileRecord, 0, s.entries.Len())
	for pair := s.entries.Oldest(); pair != nil; pair = pair.Next() {
		records = append(records, domain.ProfileRecord{Name: pair.Key, Password: pair.Value})
	}
	return records
}

// Render formats the store for the console, one aligned line per profile.
func (s *ProfileStore) Render() string {
	if s.entries.Len() == 0 {
		return domain.EmptyStoreText
	}
	lines := make([]string, 0, s.entries.Len())
	for pair := s.entries.Oldest(); pair != nil; pair = pair.Next() {
		lines = append(lines, FormatLine(pair.Key, pair.Value))
	}
	return strings.Join(lines, "\n")
}

func (s *ProfileStore) String() string {
	return s.Render()
}

// FormatLine renders a name and a value in the console column layout.
func FormatLine(name, value string) string {
	return fmt.Sprintf("%-*s|  %s", domain.ProfileColumnWidth, name, value)
}
