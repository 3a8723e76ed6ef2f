package memory

import (
	"sync"

	"agoraverse/internal/domain/econ"
)

// Store backs the in-memory repositories. Writers go through TxManager,
// which holds the store lock for the whole transaction, matching the
// serialized-apply behavior of the SQL adapter.
type Store struct {
	mu         sync.RWMutex
	agents     map[string]econ.Agent
	states     map[string]econ.AgentState
	wallets    map[string]econ.Wallet
	intents    map[string]econ.Intent
	events     []econ.Event
	properties map[string]econ.Property
	businesses map[string]econ.Business
	cooldowns  map[string]int64
	rows       map[string][]map[string]any
	clockTick  int64
	clockSet   bool
}

func NewStore() *Store {
	return &Store{
		agents:     make(map[string]econ.Agent),
		states:     make(map[string]econ.AgentState),
		wallets:    make(map[string]econ.Wallet),
		intents:    make(map[string]econ.Intent),
		properties: make(map[string]econ.Property),
		businesses: make(map[string]econ.Business),
		cooldowns:  make(map[string]int64),
		rows:       make(map[string][]map[string]any),
	}
}

func (s *Store) SeedAgent(agent econ.Agent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents[agent.ID] = agent
}

func (s *Store) SeedState(state econ.AgentState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[state.AgentID] = state
}

func (s *Store) SeedWallet(wallet econ.Wallet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wallets[wallet.AgentID] = wallet
}

func (s *Store) SeedProperty(property econ.Property) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.properties[property.ID] = property
}

func (s *Store) SeedBusiness(business econ.Business) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.businesses[business.ID] = business
}

// Rows returns the raw created rows for an auxiliary table (votes, forum
// posts, moderation logs). Test helper.
func (s *Store) Rows(table string) []map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rows[table]
}
