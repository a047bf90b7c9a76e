package service

import (
	"context"
	"log"
	"sync"

	"github.com/ascend-community/backend/internal/model"
	"github.com/google/uuid"
)

// saveKey identifies the (user, plan) pair a snapshot belongs to.
type saveKey struct {
	UserID uuid.UUID
	PlanID uuid.UUID
}

func (k saveKey) String() string {
	return k.UserID.String() + "/" + k.PlanID.String()
}

type persistFunc func(ctx context.Context, key saveKey, snapshot *model.PlanData) error

// planSaver runs the auto-save pipeline: every edit enqueues a full plan
// snapshot, at most one save per plan is in flight, and while one is in
// flight only the latest enqueued snapshot is kept. Rapid edits coalesce
// and an older snapshot can never land after a newer one.
type planSaver struct {
	persist persistFunc
	onError func(key saveKey, err error)

	mu      sync.Mutex
	wg      sync.WaitGroup
	pending map[saveKey]*model.PlanData
	active  map[saveKey]chan struct{}
}

func newPlanSaver(persist persistFunc, onError func(key saveKey, err error)) *planSaver {
	return &planSaver{
		persist: persist,
		onError: onError,
		pending: make(map[saveKey]*model.PlanData),
		active:  make(map[saveKey]chan struct{}),
	}
}

// Enqueue schedules a snapshot persist. The caller keeps editing its own
// copy; the snapshot must already be detached via Clone.
func (s *planSaver) Enqueue(key saveKey, snapshot *model.PlanData) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, inFlight := s.active[key]; inFlight {
		// Supersede whatever was queued; last snapshot wins.
		s.pending[key] = snapshot
		return
	}

	done := make(chan struct{})
	s.active[key] = done
	s.wg.Add(1)
	go s.run(key, snapshot, done)
}

func (s *planSaver) run(key saveKey, snapshot *model.PlanData, done chan struct{}) {
	defer s.wg.Done()
	for {
		if err := s.persist(context.Background(), key, snapshot); err != nil {
			log.Printf("[plan] autosave failed for %s: %v", key, err)
			if s.onError != nil {
				s.onError(key, err)
			}
		}

		s.mu.Lock()
		next, ok := s.pending[key]
		if !ok {
			delete(s.active, key)
			close(done)
			s.mu.Unlock()
			return
		}
		delete(s.pending, key)
		snapshot = next
		s.mu.Unlock()
	}
}

// Flush drops any queued snapshot for the key and waits for an in-flight
// save to complete. Called before a synchronous persist or delete so a
// stale autosave cannot land afterwards.
func (s *planSaver) Flush(key saveKey) {
	s.mu.Lock()
	delete(s.pending, key)
	done, inFlight := s.active[key]
	s.mu.Unlock()

	if inFlight {
		<-done
	}
}

// Wait blocks until all scheduled saves have been attempted.
func (s *planSaver) Wait() {
	s.wg.Wait()
}
