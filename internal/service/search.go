package service

import (
	"context"
	"errors"
	"sync"

	"lexibook/internal/domain"
	"lexibook/internal/repository"

	"go.uber.org/zap"
)

// noSynonymsError is synthesized locally when a synonym search yields no
// usable results. It is not a network error.
func noSynonymsError() *domain.LookupError {
	return &domain.LookupError{
		Title:      "No Synonyms Found",
		Message:    "Looks like the word you searched does not contain a synonym in our database",
		Resolution: "",
	}
}

// SearchService orchestrates dictionary lookups and holds the current
// result set and error state for the view. A direct search and a synonym
// search are mutually exclusive in effect: each clears the other's output.
type SearchService struct {
	gateway repository.DictionaryGateway
	loader  *LoadingSignal
	logger  *zap.Logger

	mu      sync.Mutex
	results []domain.Word
	lastErr *domain.LookupError
	// generation tags each search so a stale in-flight resolution cannot
	// overwrite the output of a newer search
	generation uint64
}

// NewSearchService creates a new search orchestrator
func NewSearchService(gateway repository.DictionaryGateway, loader *LoadingSignal, logger *zap.Logger) *SearchService {
	return &SearchService{
		gateway: gateway,
		loader:  loader,
		logger:  logger,
	}
}

// Results returns the current result set
func (s *SearchService) Results() []domain.Word {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Word{}, s.results...)
}

// Err returns the current search error, or nil when the last search succeeded
func (s *SearchService) Err() *domain.LookupError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Search performs a direct lookup of word. On success the result set is
// replaced with the response and the error state cleared; on failure the
// result set is cleared and the error state holds the normalized upstream
// payload. Callers chain navigation on the returned values.
func (s *SearchService) Search(ctx context.Context, word string) ([]domain.Word, error) {
	s.loader.Start()
	defer s.loader.Complete()

	gen := s.begin()

	words, err := s.gateway.FetchWord(ctx, word)
	if err != nil {
		s.logger.Warn("Word lookup failed", zap.String("word", word), zap.Error(err))
		s.fail(gen, err)
		return nil, err
	}

	s.succeed(gen, words)
	return words, nil
}

// FindSynonyms looks up word, extracts the synonyms of the first returned
// entry (all meanings flattened), then fetches every synonym concurrently.
// Individual fan-out failures are tolerated; the aggregate of the successful
// lookups becomes the result set. An empty synonym list or an aggregate with
// no successes yields the "No Synonyms Found" error without aborting.
func (s *SearchService) FindSynonyms(ctx context.Context, word string) ([]domain.Word, error) {
	s.loader.Start()
	defer s.loader.Complete()

	gen := s.begin()

	words, err := s.gateway.FetchWord(ctx, word)
	if err != nil {
		s.logger.Warn("Synonym base lookup failed", zap.String("word", word), zap.Error(err))
		s.fail(gen, err)
		return nil, err
	}

	// Only the first entry of a multi-entry lookup is considered
	var synonyms []string
	if len(words) > 0 {
		synonyms = words[0].Synonyms()
	}

	if len(synonyms) == 0 {
		lookupErr := noSynonymsError()
		s.fail(gen, lookupErr)
		return nil, lookupErr
	}

	aggregate := s.fetchAll(ctx, synonyms)
	if len(aggregate) == 0 {
		lookupErr := noSynonymsError()
		s.fail(gen, lookupErr)
		return nil, lookupErr
	}

	s.succeed(gen, aggregate)
	return aggregate, nil
}

// fetchAll launches one lookup per word, waits for all of them to settle,
// and returns the successful results flattened in input order
func (s *SearchService) fetchAll(ctx context.Context, words []string) []domain.Word {
	settled := make([][]domain.Word, len(words))

	var wg sync.WaitGroup
	for i, w := range words {
		wg.Add(1)
		go func(i int, w string) {
			defer wg.Done()
			entries, err := s.gateway.FetchWord(ctx, w)
			if err != nil {
				// A per-word failure does not abort the batch
				s.logger.Debug("Synonym lookup failed", zap.String("word", w), zap.Error(err))
				return
			}
			settled[i] = entries
		}(i, w)
	}
	wg.Wait()

	var aggregate []domain.Word
	for _, entries := range settled {
		aggregate = append(aggregate, entries...)
	}
	return aggregate
}

// begin advances the generation and returns the token for this search
func (s *SearchService) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

func (s *SearchService) succeed(gen uint64, words []domain.Word) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		// A newer search started while this one was in flight
		return
	}
	s.results = words
	s.lastErr = nil
}

func (s *SearchService) fail(gen uint64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return
	}
	s.results = nil
	s.lastErr = toLookupError(err)
}

// toLookupError normalizes any search-path failure into the shape the view
// renders. Upstream payloads pass through; anything else gets a generic
// message.
func toLookupError(err error) *domain.LookupError {
	var lookupErr *domain.LookupError
	if errors.As(err, &lookupErr) {
		return lookupErr
	}
	return &domain.LookupError{
		Title:      "Something Went Wrong",
		Message:    "The dictionary could not be reached.",
		Resolution: "Check your connection and try again.",
	}
}
