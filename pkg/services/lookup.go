package services

import "portfolio-cms/pkg/models"

// FindByKey scans sections in sorted-name order and returns the first field
// whose key matches. Keys are unique when the store invariants hold; the
// ordering only matters if that invariant has been violated, and it keeps the
// result deterministic.
func FindByKey(snap models.Snapshot, key string) (models.ContentField, bool) {
	for _, name := range snap.Sections() {
		for _, f := range snap[name] {
			if f.Key == key {
				return f, true
			}
		}
	}
	return models.ContentField{}, false
}

// FindBySection returns the section's field list, or an empty list for an
// unknown section. Never an error.
func FindBySection(snap models.Snapshot, section string) []models.ContentField {
	fields, ok := snap[section]
	if !ok {
		return []models.ContentField{}
	}
	out := make([]models.ContentField, len(fields))
	copy(out, fields)
	return out
}

// FindByKey resolves a key against the current snapshot.
func (s *ContentService) FindByKey(key string) (models.ContentField, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FindByKey(s.snapshot, key)
}

// FindBySection resolves a section against the current snapshot.
func (s *ContentService) FindBySection(section string) []models.ContentField {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FindBySection(s.snapshot, section)
}
