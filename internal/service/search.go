package service

import (
	"strings"

	"github.com/JithinPanicker/day-flow/internal/journal"
	"github.com/JithinPanicker/day-flow/internal/store"
)

// SearchResult contains search results
type SearchResult struct {
	Entries []*journal.Entry
	Query   string
}

// SearchService finds day entries by journal text or slot headings.
type SearchService struct {
	store *store.Store
}

// NewSearchService creates a new SearchService
func NewSearchService(st *store.Store) *SearchService {
	return &SearchService{store: st}
}

// Search returns entries matching the query, newest first.
func (s *SearchService) Search(query string) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	entries, err := s.store.Search(query)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Entries: entries, Query: query}, nil
}
