package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/campushq/scheduler-api/internal/dto"
)

// TimetableProposal is a generated timetable held until the caller fetches,
// exports or discards it.
type TimetableProposal struct {
	ProposalID  string                         `json:"proposal_id"`
	Sections    []dto.TimetableSectionResponse `json:"sections"`
	Shortfalls  []dto.TimetableShortfall       `json:"shortfalls"`
	Stats       dto.TimetableStats             `json:"stats"`
	RequestedAt time.Time                      `json:"requested_at"`
}

// ProposalStore keeps generated proposals for later retrieval. Entries
// expire after the configured TTL.
type ProposalStore interface {
	Save(ctx context.Context, proposal TimetableProposal) error
	Get(ctx context.Context, id string) (TimetableProposal, bool, error)
	Delete(ctx context.Context, id string) error
}

type memoryProposalStore struct {
	ttl   time.Duration
	mu    sync.RWMutex
	items map[string]TimetableProposal
}

// NewMemoryProposalStore keeps proposals in process memory.
func NewMemoryProposalStore(ttl time.Duration) ProposalStore {
	return &memoryProposalStore{
		ttl:   ttl,
		items: make(map[string]TimetableProposal),
	}
}

func (s *memoryProposalStore) Save(_ context.Context, proposal TimetableProposal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[proposal.ProposalID] = proposal
	return nil
}

func (s *memoryProposalStore) Get(ctx context.Context, id string) (TimetableProposal, bool, error) {
	s.mu.RLock()
	proposal, ok := s.items[id]
	s.mu.RUnlock()
	if !ok {
		return TimetableProposal{}, false, nil
	}
	if time.Since(proposal.RequestedAt) > s.ttl {
		_ = s.Delete(ctx, id)
		return TimetableProposal{}, false, nil
	}
	return proposal, true, nil
}

func (s *memoryProposalStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.items, id)
	s.mu.Unlock()
	return nil
}

type redisProposalStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisProposalStore keeps proposals in Redis so restarts and multiple
// instances share them.
func NewRedisProposalStore(client *redis.Client, ttl time.Duration) ProposalStore {
	return &redisProposalStore{client: client, ttl: ttl}
}

func proposalKey(id string) string {
	return "scheduler:proposal:" + id
}

func (s *redisProposalStore) Save(ctx context.Context, proposal TimetableProposal) error {
	payload, err := json.Marshal(proposal)
	if err != nil {
		return fmt.Errorf("marshal proposal: %w", err)
	}
	if err := s.client.Set(ctx, proposalKey(proposal.ProposalID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("store proposal: %w", err)
	}
	return nil
}

func (s *redisProposalStore) Get(ctx context.Context, id string) (TimetableProposal, bool, error) {
	payload, err := s.client.Get(ctx, proposalKey(id)).Bytes()
	if err == redis.Nil {
		return TimetableProposal{}, false, nil
	}
	if err != nil {
		return TimetableProposal{}, false, fmt.Errorf("load proposal: %w", err)
	}
	var proposal TimetableProposal
	if err := json.Unmarshal(payload, &proposal); err != nil {
		return TimetableProposal{}, false, fmt.Errorf("decode proposal: %w", err)
	}
	return proposal, true, nil
}

func (s *redisProposalStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, proposalKey(id)).Err(); err != nil {
		return fmt.Errorf("delete proposal: %w", err)
	}
	return nil
}
