package service

import (
	"context"
	"testing"

	"locations-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSearchRepository is a mock implementation of the SearchRepository interface
type MockSearchRepository struct {
	mock.Mock
}

func (m *MockSearchRepository) SearchNodesByTokens(ctx context.Context, tokens []string, limit int) ([]models.GeoNode, error) {
	args := m.Called(ctx, tokens, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GeoNode), args.Error(1)
}

func (m *MockSearchRepository) GetNodesByIDs(ctx context.Context, ids []int) ([]models.GeoNode, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GeoNode), args.Error(1)
}

func (m *MockSearchRepository) GetNodesByParentIDs(ctx context.Context, parentIDs []int) ([]models.GeoNode, error) {
	args := m.Called(ctx, parentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GeoNode), args.Error(1)
}

func (m *MockSearchRepository) GetStatesWithCountryByIDs(ctx context.Context, ids []int) ([]models.StateInfo, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StateInfo), args.Error(1)
}

func intPtr(i int) *int { return &i }

func TestSearchService_Search_ShortQuery(t *testing.T) {
	mockRepo := new(MockSearchRepository)
	svc := NewSearchService(mockRepo)

	for _, q := range []string{"", "a", " a ", "  "} {
		results, err := svc.Search(context.Background(), q, 20)
		require.NoError(t, err)
		assert.Empty(t, results)
	}

	// Tokens under 2 characters are dropped; a query of only such tokens is
	// rejected the same way.
	results, err := svc.Search(context.Background(), "a b c", 20)
	require.NoError(t, err)
	assert.Empty(t, results)

	mockRepo.AssertNotCalled(t, "SearchNodesByTokens")
}

func TestSearchService_Search_NoResults(t *testing.T) {
	mockRepo := new(MockSearchRepository)
	svc := NewSearchService(mockRepo)

	mockRepo.On("SearchNodesByTokens", mock.Anything, []string{"nowhere"}, 60).Return([]models.GeoNode{}, nil)

	results, err := svc.Search(context.Background(), "Nowhere", 20)

	require.NoError(t, err)
	assert.Equal(t, []models.SearchResult{}, results)
	mockRepo.AssertExpectations(t)
}

func TestSearchService_Search_SuppressesAmbiguousDepth3(t *testing.T) {
	mockRepo := new(MockSearchRepository)
	svc := NewSearchService(mockRepo)

	stateID := intPtr(1)
	mockRepo.On("SearchNodesByTokens", mock.Anything, []string{"villa"}, 60).Return([]models.GeoNode{
		{ID: 1, Name: "Villa Crespo", Depth: 3, StateID: stateID},
		{ID: 2, Name: "Villa Urquiza", Depth: 3, StateID: stateID},
	}, nil)
	// Node 1 has two children, node 2 has one.
	mockRepo.On("GetNodesByParentIDs", mock.Anything, []int{1, 2}).Return([]models.GeoNode{
		{ID: 11, Name: "Villa Crespo Norte", Depth: 4, ParentLocationID: intPtr(1)},
		{ID: 12, Name: "Villa Crespo Sur", Depth: 4, ParentLocationID: intPtr(1)},
		{ID: 13, Name: "Villa Urquiza Centro", Depth: 4, ParentLocationID: intPtr(2)},
	}, nil)
	mockRepo.On("GetStatesWithCountryByIDs", mock.Anything, []int{1}).Return([]models.StateInfo{
		{ID: 1, Name: "Capital Federal", CountryName: "Argentina"},
	}, nil)

	results, err := svc.Search(context.Background(), "villa", 20)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 2, results[0].ID)
	assert.Equal(t, "Villa Urquiza", results[0].Name)
	assert.Equal(t, "Capital Federal, Argentina", results[0].Display)
	mockRepo.AssertExpectations(t)
}

func TestSearchService_Search_MultiTokenMatchesViaChain(t *testing.T) {
	mockRepo := new(MockSearchRepository)
	svc := NewSearchService(mockRepo)

	// Two "Palermo" nodes in different states; only the one whose chain
	// carries CABA satisfies the second token.
	mockRepo.On("SearchNodesByTokens", mock.Anything, []string{"palermo", "caba"}, 60).Return([]models.GeoNode{
		{ID: 10, Name: "Palermo", Depth: 3, StateID: intPtr(2)},
		{ID: 20, Name: "Palermo", Depth: 3, StateID: intPtr(9)},
	}, nil)
	mockRepo.On("GetNodesByParentIDs", mock.Anything, []int{10, 20}).Return([]models.GeoNode{}, nil)
	mockRepo.On("GetStatesWithCountryByIDs", mock.Anything, []int{2, 9}).Return([]models.StateInfo{
		{ID: 2, Name: "CABA", CountryName: "Argentina"},
		{ID: 9, Name: "Salta", CountryName: "Argentina"},
	}, nil)

	results, err := svc.Search(context.Background(), "palermo caba", 20)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 10, results[0].ID)
	assert.Equal(t, "CABA, Argentina", results[0].Display)
	mockRepo.AssertExpectations(t)
}

func TestSearchService_Search_WalksAncestorsUpward(t *testing.T) {
	mockRepo := new(MockSearchRepository)
	svc := NewSearchService(mockRepo)

	// Depth-5 hit whose state is two hops up the chain.
	mockRepo.On("SearchNodesByTokens", mock.Anything, []string{"botanico"}, 60).Return([]models.GeoNode{
		{ID: 30, Name: "Botanico", Depth: 5, ParentLocationID: intPtr(20)},
	}, nil)
	mockRepo.On("GetNodesByIDs", mock.Anything, []int{20}).Return([]models.GeoNode{
		{ID: 20, Name: "Palermo Chico", Depth: 4, ParentLocationID: intPtr(10)},
	}, nil)
	mockRepo.On("GetNodesByIDs", mock.Anything, []int{10}).Return([]models.GeoNode{
		{ID: 10, Name: "Palermo", Depth: 3, StateID: intPtr(2)},
	}, nil)
	mockRepo.On("GetStatesWithCountryByIDs", mock.Anything, []int{2}).Return([]models.StateInfo{
		{ID: 2, Name: "CABA", CountryName: "Argentina"},
	}, nil)

	results, err := svc.Search(context.Background(), "Botánico", 20)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Palermo Chico, Palermo, CABA, Argentina", results[0].Display)
	mockRepo.AssertExpectations(t)
}

func TestSearchService_Search_SkipsDuplicateStateInChain(t *testing.T) {
	mockRepo := new(MockSearchRepository)
	svc := NewSearchService(mockRepo)

	// Node and state share the name; the breadcrumb must not read
	// "Palermo, Palermo, Argentina".
	mockRepo.On("SearchNodesByTokens", mock.Anything, []string{"palermo"}, 60).Return([]models.GeoNode{
		{ID: 10, Name: "Palermo", Depth: 3, StateID: intPtr(2)},
	}, nil)
	mockRepo.On("GetNodesByParentIDs", mock.Anything, []int{10}).Return([]models.GeoNode{}, nil)
	mockRepo.On("GetStatesWithCountryByIDs", mock.Anything, []int{2}).Return([]models.StateInfo{
		{ID: 2, Name: "Palermo", CountryName: "Argentina"},
	}, nil)

	results, err := svc.Search(context.Background(), "palermo", 20)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Argentina", results[0].Display)
	mockRepo.AssertExpectations(t)
}

func TestSearchService_Search_CycleTerminates(t *testing.T) {
	mockRepo := new(MockSearchRepository)
	svc := NewSearchService(mockRepo)

	// Artificial cycle: Alpha -> Beta -> Alpha.
	mockRepo.On("SearchNodesByTokens", mock.Anything, []string{"alpha"}, 60).Return([]models.GeoNode{
		{ID: 1, Name: "Alpha", Depth: 4, ParentLocationID: intPtr(2)},
	}, nil)
	mockRepo.On("GetNodesByIDs", mock.Anything, []int{2}).Return([]models.GeoNode{
		{ID: 2, Name: "Beta", Depth: 3, ParentLocationID: intPtr(1), StateID: intPtr(1)},
	}, nil)
	mockRepo.On("GetStatesWithCountryByIDs", mock.Anything, []int{1}).Return([]models.StateInfo{
		{ID: 1, Name: "Buenos Aires", CountryName: "Argentina"},
	}, nil)

	results, err := svc.Search(context.Background(), "alpha", 20)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Beta, Buenos Aires, Argentina", results[0].Display)
	mockRepo.AssertExpectations(t)
}

func TestSearchService_Search_TruncatesToLimit(t *testing.T) {
	mockRepo := new(MockSearchRepository)
	svc := NewSearchService(mockRepo)

	nodes := []models.GeoNode{
		{ID: 1, Name: "San Martin", Depth: 4},
		{ID: 2, Name: "San Isidro", Depth: 4},
		{ID: 3, Name: "San Fernando", Depth: 4},
	}
	mockRepo.On("SearchNodesByTokens", mock.Anything, []string{"san"}, 42).Return(nodes, nil)

	results, err := svc.Search(context.Background(), "san", 2)

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, 1, results[0].ID)
	assert.Equal(t, 2, results[1].ID)
	mockRepo.AssertExpectations(t)
}

func TestSearchService_Search_RepositoryError(t *testing.T) {
	mockRepo := new(MockSearchRepository)
	svc := NewSearchService(mockRepo)

	mockRepo.On("SearchNodesByTokens", mock.Anything, []string{"rosario"}, 60).Return(nil, assert.AnError)

	_, err := svc.Search(context.Background(), "rosario", 20)

	assert.Error(t, err)
}
