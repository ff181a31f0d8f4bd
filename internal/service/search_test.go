package service

import (
	"context"
	"errors"
	"testing"

	"lexibook/internal/domain"
	"lexibook/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newSearchService(gateway *testutil.MockDictionaryGateway) *SearchService {
	return NewSearchService(gateway, NewLoadingSignal(), testutil.NewTestLogger())
}

func notFoundError() *domain.LookupError {
	return &domain.LookupError{
		Title:      "No Definitions Found",
		Message:    "Sorry pal, we couldn't find definitions for the word you were looking for.",
		Resolution: "You can try the search again at later time or head to the web instead.",
	}
}

func TestSearchService_Search(t *testing.T) {
	gateway := new(testutil.MockDictionaryGateway)
	service := newSearchService(gateway)

	entries := []domain.Word{testutil.NewTestWord("run", "verb", "sprint")}
	gateway.On("FetchWord", mock.Anything, "run").Return(entries, nil)

	words, err := service.Search(context.Background(), "run")

	assert.NoError(t, err)
	assert.Equal(t, entries, words)
	assert.Equal(t, entries, service.Results())
	assert.Nil(t, service.Err())
	gateway.AssertExpectations(t)
}

func TestSearchService_Search_Failure(t *testing.T) {
	gateway := new(testutil.MockDictionaryGateway)
	service := newSearchService(gateway)

	// Seed a previous successful search
	gateway.On("FetchWord", mock.Anything, "run").Return([]domain.Word{testutil.NewTestWord("run", "verb")}, nil)
	_, err := service.Search(context.Background(), "run")
	assert.NoError(t, err)

	gateway.On("FetchWord", mock.Anything, "zzzz").Return(nil, notFoundError())

	words, err := service.Search(context.Background(), "zzzz")

	assert.Error(t, err)
	assert.Nil(t, words)
	// Failure clears the previous results and sets the upstream payload
	assert.Empty(t, service.Results())
	assert.NotNil(t, service.Err())
	assert.Equal(t, "No Definitions Found", service.Err().Title)
}

func TestSearchService_Search_Idempotent(t *testing.T) {
	gateway := new(testutil.MockDictionaryGateway)
	service := newSearchService(gateway)

	entries := []domain.Word{testutil.NewTestWord("run", "verb", "sprint")}
	gateway.On("FetchWord", mock.Anything, "run").Return(entries, nil)

	first, err := service.Search(context.Background(), "run")
	assert.NoError(t, err)
	second, err := service.Search(context.Background(), "run")
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, entries, service.Results())
}

func TestSearchService_Search_GenericErrorNormalized(t *testing.T) {
	gateway := new(testutil.MockDictionaryGateway)
	service := newSearchService(gateway)

	gateway.On("FetchWord", mock.Anything, "run").Return(nil, errors.New("dial tcp: connection refused"))

	_, err := service.Search(context.Background(), "run")

	assert.Error(t, err)
	assert.NotNil(t, service.Err())
	assert.Equal(t, "Something Went Wrong", service.Err().Title)
	assert.NotEmpty(t, service.Err().Resolution)
}

func TestSearchService_FindSynonyms_PartialFailure(t *testing.T) {
	gateway := new(testutil.MockDictionaryGateway)
	service := newSearchService(gateway)

	happy := testutil.NewTestWord("happy", "adjective", "glad", "cheerful")
	gladEntries := []domain.Word{testutil.NewTestWord("glad", "adjective")}

	gateway.On("FetchWord", mock.Anything, "happy").Return([]domain.Word{happy}, nil)
	gateway.On("FetchWord", mock.Anything, "glad").Return(gladEntries, nil)
	gateway.On("FetchWord", mock.Anything, "cheerful").Return(nil, notFoundError())

	words, err := service.FindSynonyms(context.Background(), "happy")

	// One failed fan-out call does not abort the batch
	assert.NoError(t, err)
	assert.Equal(t, gladEntries, words)
	assert.Equal(t, gladEntries, service.Results())
	assert.Nil(t, service.Err())
	gateway.AssertExpectations(t)
}

func TestSearchService_FindSynonyms_SynonymsFromAllMeaningsOfFirstEntry(t *testing.T) {
	gateway := new(testutil.MockDictionaryGateway)
	service := newSearchService(gateway)

	first := domain.Word{
		Word: "fast",
		Meanings: []domain.Meaning{
			{PartOfSpeech: "adjective", Synonyms: []string{"quick"}},
			{PartOfSpeech: "adverb", Synonyms: []string{"swiftly"}},
		},
	}
	// The second entry's synonyms are never consulted
	second := testutil.NewTestWord("fast", "verb", "abstain")

	gateway.On("FetchWord", mock.Anything, "fast").Return([]domain.Word{first, second}, nil)
	gateway.On("FetchWord", mock.Anything, "quick").Return([]domain.Word{testutil.NewTestWord("quick", "adjective")}, nil)
	gateway.On("FetchWord", mock.Anything, "swiftly").Return([]domain.Word{testutil.NewTestWord("swiftly", "adverb")}, nil)

	words, err := service.FindSynonyms(context.Background(), "fast")

	assert.NoError(t, err)
	assert.Len(t, words, 2)
	// Aggregation preserves the synonym-list order
	assert.Equal(t, "quick", words[0].Word)
	assert.Equal(t, "swiftly", words[1].Word)
	gateway.AssertNotCalled(t, "FetchWord", mock.Anything, "abstain")
}

func TestSearchService_FindSynonyms_EmptySynonymList(t *testing.T) {
	gateway := new(testutil.MockDictionaryGateway)
	service := newSearchService(gateway)

	gateway.On("FetchWord", mock.Anything, "sesquipedalian").
		Return([]domain.Word{testutil.NewTestWord("sesquipedalian", "adjective")}, nil)

	words, err := service.FindSynonyms(context.Background(), "sesquipedalian")

	assert.Error(t, err)
	assert.Nil(t, words)
	assert.Empty(t, service.Results())
	assert.NotNil(t, service.Err())
	assert.Equal(t, "No Synonyms Found", service.Err().Title)

	// No fan-out calls were issued
	gateway.AssertNumberOfCalls(t, "FetchWord", 1)
}

func TestSearchService_FindSynonyms_AllFanOutCallsFail(t *testing.T) {
	gateway := new(testutil.MockDictionaryGateway)
	service := newSearchService(gateway)

	happy := testutil.NewTestWord("happy", "adjective", "glad", "cheerful")
	gateway.On("FetchWord", mock.Anything, "happy").Return([]domain.Word{happy}, nil)
	gateway.On("FetchWord", mock.Anything, "glad").Return(nil, notFoundError())
	gateway.On("FetchWord", mock.Anything, "cheerful").Return(nil, notFoundError())

	words, err := service.FindSynonyms(context.Background(), "happy")

	assert.Error(t, err)
	assert.Nil(t, words)
	assert.NotNil(t, service.Err())
	assert.Equal(t, "No Synonyms Found", service.Err().Title)
}

func TestSearchService_FindSynonyms_BaseLookupFails(t *testing.T) {
	gateway := new(testutil.MockDictionaryGateway)
	service := newSearchService(gateway)

	gateway.On("FetchWord", mock.Anything, "zzzz").Return(nil, notFoundError())

	words, err := service.FindSynonyms(context.Background(), "zzzz")

	assert.Error(t, err)
	assert.Nil(t, words)
	assert.Equal(t, "No Definitions Found", service.Err().Title)
	gateway.AssertNumberOfCalls(t, "FetchWord", 1)
}

func TestSearchService_StaleSearchDoesNotOverwriteNewerResults(t *testing.T) {
	gateway := new(testutil.MockDictionaryGateway)
	service := newSearchService(gateway)

	newer := []domain.Word{testutil.NewTestWord("walk", "verb")}
	stale := []domain.Word{testutil.NewTestWord("run", "verb")}

	// The first search resolves only after a second search has completed
	started := make(chan struct{})
	release := make(chan struct{})
	gateway.On("FetchWord", mock.Anything, "run").Run(func(mock.Arguments) {
		close(started)
		<-release
	}).Return(stale, nil)
	gateway.On("FetchWord", mock.Anything, "walk").Return(newer, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		service.Search(context.Background(), "run")
	}()
	<-started

	// Second search takes a newer generation before the first resolves
	_, err := service.Search(context.Background(), "walk")
	assert.NoError(t, err)

	close(release)
	<-done

	assert.Equal(t, newer, service.Results())
	assert.Nil(t, service.Err())
}
