package store

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"editions-app/internal/domain/catalog"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MutationResult reports the outcome of an optimistic mutation. On failure
// the store has already restored the pre-mutation records; they are returned
// so callers can show what was reverted.
type MutationResult struct {
	OK         bool
	RolledBack []catalog.Edition
}

// Store holds the canonical in-memory copy of the full record set, loaded
// once per session. Mutations are applied optimistically: the cache changes
// first, the remote write follows, and a failed write restores the exact
// pre-mutation record.
//
// Two concurrent mutations to the same edition can race; the last server
// write wins. There is no version check. Callers are expected to disable
// controls via SavingIDs while a write is in flight.
type Store struct {
	remote Remote
	log    *zap.Logger

	mu           sync.RWMutex
	editions     map[uint]*catalog.Edition
	prints       map[uint]*catalog.Print
	distributors map[uint]*catalog.Distributor
	loadErr      string
	saving       map[uint]struct{}
}

func New(remote Remote, log *zap.Logger) *Store {
	return &Store{
		remote:       remote,
		log:          log,
		editions:     make(map[uint]*catalog.Edition),
		prints:       make(map[uint]*catalog.Print),
		distributors: make(map[uint]*catalog.Distributor),
		saving:       make(map[uint]struct{}),
	}
}

// Load fetches the entire record set in one pass. On failure the error is
// recorded as the store's load error and whatever was cached before stays;
// aggregation simply runs over what is present.
func (s *Store) Load(ctx context.Context) error {
	editions, err := s.remote.FetchEditions(ctx)
	if err != nil {
		return s.failLoad("loading editions", err)
	}
	prints, err := s.remote.FetchPrints(ctx)
	if err != nil {
		return s.failLoad("loading prints", err)
	}
	distributors, err := s.remote.FetchDistributors(ctx)
	if err != nil {
		return s.failLoad("loading distributors", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.prints = make(map[uint]*catalog.Print, len(prints))
	for i := range prints {
		p := prints[i]
		p.Editions = nil
		s.prints[p.ID] = &p
	}
	s.distributors = make(map[uint]*catalog.Distributor, len(distributors))
	for i := range distributors {
		d := distributors[i]
		d.Editions = nil
		s.distributors[d.ID] = &d
	}
	s.editions = make(map[uint]*catalog.Edition, len(editions))
	for i := range editions {
		e := editions[i]
		s.resolveLocked(&e)
		s.editions[e.ID] = &e
	}
	s.loadErr = ""
	return nil
}

// Refresh is the explicit re-fetch trigger, used after record creation.
func (s *Store) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

func (s *Store) failLoad(stage string, err error) error {
	s.log.Error("store load failed", zap.String("stage", stage), zap.Error(err))
	s.mu.Lock()
	s.loadErr = stage + ": " + err.Error()
	s.mu.Unlock()
	return err
}

// LoadError returns the last load failure as a display string, empty when
// the last load succeeded.
func (s *Store) LoadError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

// resolveLocked re-points the edition's joined print/distributor at the
// cached records. Called after load and after any FK change.
func (s *Store) resolveLocked(e *catalog.Edition) {
	e.Print = s.prints[e.PrintID]
	if e.DistributorID != nil {
		e.Distributor = s.distributors[*e.DistributorID]
	} else {
		e.Distributor = nil
	}
}

// Editions returns a copy of every cached edition, ordered by id. The
// joined records are copied too, so callers can never reach store state.
func (s *Store) Editions() []catalog.Edition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Edition, 0, len(s.editions))
	for _, e := range s.editions {
		out = append(out, copyEdition(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Prints() []catalog.Print {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Print, 0, len(s.prints))
	for _, p := range s.prints {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Distributors() []catalog.Distributor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]catalog.Distributor, 0, len(s.distributors))
	for _, d := range s.distributors {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Edition returns one cached edition by id.
func (s *Store) Edition(id uint) (catalog.Edition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.editions[id]
	if !ok {
		return catalog.Edition{}, false
	}
	return copyEdition(e), true
}

// UpdateEdition applies the patch to the cached record immediately,
// persists it remotely, and restores the exact pre-mutation record if the
// write fails. The result carries no error: a failed write is OK=false and
// the caller decides whether to retry.
func (s *Store) UpdateEdition(ctx context.Context, id uint, patch EditionPatch) MutationResult {
	return s.update([]uint{id}, patch, func(fields map[string]any) error {
		return s.remote.UpdateEdition(ctx, id, fields)
	})
}

// UpdateEditions is the bulk variant: one batched remote write, and an
// all-or-nothing client-side rollback. The batch is not atomic across
// client and server; a crash mid-flight diverges until the next reload.
func (s *Store) UpdateEditions(ctx context.Context, ids []uint, patch EditionPatch) MutationResult {
	return s.update(ids, patch, func(fields map[string]any) error {
		return s.remote.UpdateEditions(ctx, ids, fields)
	})
}

func (s *Store) update(ids []uint, patch EditionPatch, write func(map[string]any) error) MutationResult {
	fields := patch.Fields()
	if len(fields) == 0 {
		return MutationResult{OK: true}
	}

	s.mu.Lock()
	preImages := make([]catalog.Edition, 0, len(ids))
	touched := make([]*catalog.Edition, 0, len(ids))
	for _, id := range ids {
		e, ok := s.editions[id]
		if !ok {
			s.mu.Unlock()
			s.log.Warn("update for unknown edition", zap.Uint("id", id))
			return MutationResult{OK: false}
		}
		preImages = append(preImages, *e)
		touched = append(touched, e)
	}
	for _, e := range touched {
		patch.apply(e)
		s.resolveLocked(e)
		s.saving[e.ID] = struct{}{}
	}
	s.mu.Unlock()

	err := write(fields)

	s.mu.Lock()
	for _, id := range ids {
		delete(s.saving, id)
	}
	if err != nil {
		for i, e := range touched {
			*e = preImages[i]
		}
		s.mu.Unlock()
		s.log.Warn("mutation failed, rolled back",
			zap.Uints("ids", ids), zap.Error(err))
		return MutationResult{OK: false, RolledBack: preImages}
	}
	postImages := make([]catalog.Edition, len(touched))
	for i, e := range touched {
		postImages[i] = *e
	}
	s.mu.Unlock()

	s.logActivity(patch, preImages, postImages)
	return MutationResult{OK: true}
}

// logActivity writes audit entries fire-and-forget. A failed insert is
// logged and dropped; it never surfaces to the mutation's caller.
func (s *Store) logActivity(patch EditionPatch, pre, post []catalog.Edition) {
	mutationID := uuid.NewString()
	description := patch.Describe()
	changed := strings.Join(patch.FieldNames(), ",")

	go func() {
		for i := range pre {
			entry := &catalog.ActivityEntry{
				MutationID:    mutationID,
				Table:         "editions",
				RecordID:      pre[i].ID,
				Action:        catalog.ActivityActionUpdate,
				Description:   description,
				ChangedFields: changed,
				OldValues:     marshalRecord(pre[i]),
				NewValues:     marshalRecord(post[i]),
			}
			if err := s.remote.InsertActivity(context.Background(), entry); err != nil {
				s.log.Warn("activity log write failed",
					zap.Uint("record_id", pre[i].ID), zap.Error(err))
			}
		}
	}()
}

func marshalRecord(e catalog.Edition) string {
	e.Print = nil
	e.Distributor = nil
	b, err := json.Marshal(e)
	if err != nil {
		return ""
	}
	return string(b)
}

// CreatePrintWithEditions inserts a new print plus its editions remotely,
// then refreshes the cache. Used by the artwork-creation flow, not by the
// optimistic path.
func (s *Store) CreatePrintWithEditions(ctx context.Context, print *catalog.Print, editions []catalog.Edition) error {
	if err := s.remote.CreatePrintWithEditions(ctx, print, editions); err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// IsSaving reports whether any mutation is in flight.
func (s *Store) IsSaving() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.saving) > 0
}

// SavingIDs lists editions with in-flight mutations, for disabling the
// affected rows in the UI.
func (s *Store) SavingIDs() []uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]uint, 0, len(s.saving))
	for id := range s.saving {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func copyEdition(e *catalog.Edition) catalog.Edition {
	out := *e
	if out.Print != nil {
		p := *out.Print
		out.Print = &p
	}
	if out.Distributor != nil {
		d := *out.Distributor
		out.Distributor = &d
	}
	return out
}
