package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"portfolio-cms/pkg/models"
)

// ErrDuplicateKey is returned when an update would give two fields the same key.
var ErrDuplicateKey = errors.New("field key already in use")

// ContentService is the single source of truth for editable content. It loads
// the persisted snapshot once, serializes all mutations, and republishes the
// complete snapshot to every subscriber after each change.
type ContentService struct {
	store    BlobStore
	defaults models.Snapshot
	log      *zap.Logger

	mu       sync.Mutex
	snapshot models.Snapshot
	loading  bool
	lastErr  error

	subMu   sync.Mutex
	subs    map[int]chan models.Snapshot
	nextSub int
}

func NewContentService(store BlobStore, defaults models.Snapshot, log *zap.Logger) *ContentService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContentService{
		store:    store,
		defaults: defaults.Clone(),
		log:      log,
		snapshot: models.Snapshot{},
		subs:     make(map[int]chan models.Snapshot),
	}
}

// Load retrieves the persisted snapshot. On first run it seeds storage with
// the defaults and serves those. The loading flag covers the full duration;
// on failure the prior (empty) snapshot stays in place and the error is kept.
func (s *ContentService) Load() error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	snap, err := s.fetch()

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastErr = err
		s.mu.Unlock()
		s.log.Error("content load failed", zap.Error(err))
		return err
	}
	s.snapshot = snap
	s.lastErr = nil
	s.mu.Unlock()

	s.publish(snap)
	return nil
}

func (s *ContentService) fetch() (models.Snapshot, error) {
	data, err := s.store.Read()
	if errors.Is(err, ErrNoSnapshot) {
		seed := s.defaults.Clone()
		if err := s.persist(seed); err != nil {
			return nil, fmt.Errorf("seed defaults: %w", err)
		}
		s.log.Info("seeded default content")
		return seed, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// UpdateField commits one field: replace the entry with a matching id, or
// append to the field's section (creating the section if absent). The full
// snapshot is persisted before the in-memory state changes, so a failed write
// leaves memory and storage agreeing on the old value.
func (s *ContentService) UpdateField(field models.ContentField) error {
	if err := field.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if owner, ok := s.snapshot.KeyOwner(field.Key); ok && owner != field.ID {
		return fmt.Errorf("%w: %q held by field %s", ErrDuplicateKey, field.Key, owner)
	}
	if field.ID == "" {
		field.ID = uuid.NewString()
	}

	next := s.snapshot.Clone()

	// A changed section moves the field: drop the id from wherever it lives
	// now so the key never ends up in two sections at once.
	for name, list := range next {
		if name == field.Section {
			continue
		}
		for i := range list {
			if list[i].ID == field.ID {
				next[name] = append(list[:i:i], list[i+1:]...)
				break
			}
		}
	}

	list := next[field.Section]
	replaced := false
	for i := range list {
		if list[i].ID == field.ID {
			list[i] = field
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, field)
	}
	next[field.Section] = list

	if err := s.persist(next); err != nil {
		s.lastErr = err
		s.log.Error("content update failed", zap.String("key", field.Key), zap.Error(err))
		return fmt.Errorf("persist field %q: %w", field.Key, err)
	}

	s.snapshot = next
	s.lastErr = nil
	s.publish(next)
	return nil
}

// RevertToDefault discards all edits, persisting and publishing the defaults.
// Confirmation is the caller's concern.
func (s *ContentService) RevertToDefault() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.defaults.Clone()
	if err := s.persist(next); err != nil {
		s.lastErr = err
		s.log.Error("content revert failed", zap.Error(err))
		return fmt.Errorf("persist defaults: %w", err)
	}

	s.snapshot = next
	s.lastErr = nil
	s.publish(next)
	return nil
}

func (s *ContentService) persist(snap models.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return s.store.Write(data)
}

// Snapshot returns a deep copy of the current state.
func (s *ContentService) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.Clone()
}

// Loading reports whether the initial load is still in flight.
func (s *ContentService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last load or persist error, nil after any success.
func (s *ContentService) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Subscribe registers a consumer for snapshot publications. Every mutation
// delivers the complete new snapshot. The returned cancel func must be called
// on teardown; slow consumers miss intermediate snapshots rather than block
// the publisher.
func (s *ContentService) Subscribe() (<-chan models.Snapshot, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan models.Snapshot, 8)
	s.subs[id] = ch

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (s *ContentService) publish(snap models.Snapshot) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- snap.Clone():
		default:
		}
	}
}
