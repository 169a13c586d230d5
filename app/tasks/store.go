package tasks

import (
	"sync"
	"time"

	"sheetcal/app/calendar"
)

// Document is one rendered calendar, ready to serve or inspect.
type Document struct {
	Name     string
	Slug     string
	Body     string
	Events   int
	Combined bool
	Path     string
}

// Store holds the documents and stats of the most recent successful build.
// Updates replace the whole set; readers never observe a half-built run.
type Store struct {
	mu      sync.RWMutex
	docs    map[string]Document
	order   []string
	stats   calendar.Stats
	builtAt time.Time
}

func NewStore() *Store {
	return &Store{docs: make(map[string]Document)}
}

func (s *Store) Update(docs []Document, stats calendar.Stats) {
	next := make(map[string]Document, len(docs))
	order := make([]string, 0, len(docs))
	for _, doc := range docs {
		next[doc.Slug] = doc
		order = append(order, doc.Slug)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = next
	s.order = order
	s.stats = stats
	s.builtAt = time.Now()
}

func (s *Store) Get(slug string) (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[slug]
	return doc, ok
}

func (s *Store) List() []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	docs := make([]Document, 0, len(s.order))
	for _, slug := range s.order {
		docs = append(docs, s.docs[slug])
	}
	return docs
}

func (s *Store) Stats() (calendar.Stats, time.Time) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats, s.builtAt
}
