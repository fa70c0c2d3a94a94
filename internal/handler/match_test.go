package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"locations-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMatchService is a mock implementation of the MatchService interface
type MockMatchService struct {
	mock.Mock
}

func (m *MockMatchService) Match(ctx context.Context, place models.NormalizedPlace) (models.MatchResult, error) {
	args := m.Called(ctx, place)
	return args.Get(0).(models.MatchResult), args.Error(1)
}

func TestMatchHandler_Match(t *testing.T) {
	gin.SetMode(gin.TestMode)

	deepest := 10
	matched := models.MatchResult{
		Country:           &models.LevelMatch{ID: 1, Name: "Argentina", Status: models.MatchExact},
		State:             &models.LevelMatch{ID: 7, Name: "Costa Atlantica", Status: models.MatchExact},
		Location:          &models.LevelMatch{ID: 10, Name: "Mar del Plata", Status: models.MatchExact},
		DeepestLocationID: &deepest,
	}

	tests := []struct {
		name           string
		body           string
		mockResult     models.MatchResult
		mockError      error
		expectService  bool
		expectedStatus int
	}{
		{
			name:           "invalid JSON body",
			body:           "{not json",
			expectService:  false,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "successful match",
			body:           `{"country_code":"AR","administrative_area_level_1":"Buenos Aires","locality":"Mar del Plata","lat":-38.0,"lng":-57.55}`,
			mockResult:     matched,
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "no match is still a 200",
			body:           `{"locality":"Nowhere"}`,
			mockResult:     models.MatchResult{},
			expectService:  true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "service error",
			body:           `{"country_code":"AR"}`,
			mockError:      assert.AnError,
			expectService:  true,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockMatchService)
			handler := NewMatchHandler(mockSvc)

			if tt.expectService {
				mockSvc.On("Match", mock.Anything, mock.AnythingOfType("models.NormalizedPlace")).
					Return(tt.mockResult, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/locations/match", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.Match(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var result models.MatchResult
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
				assert.Equal(t, tt.mockResult, result)
			}

			if tt.expectService {
				mockSvc.AssertExpectations(t)
			}
		})
	}
}
