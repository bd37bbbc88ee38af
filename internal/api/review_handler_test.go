package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stayhub/stayhub-api/internal/api/shared"
	"github.com/stayhub/stayhub-api/internal/domain"
	"github.com/stayhub/stayhub-api/internal/service"
	"github.com/stayhub/stayhub-api/internal/store"
)

// MockReviewService mocks the service.ReviewService interface
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Create(
	ctx context.Context,
	identity domain.Identity,
	input service.CreateReviewInput,
) (*domain.Review, error) {
	args := m.Called(ctx, identity, input)
	review, _ := args.Get(0).(*domain.Review)
	return review, args.Error(1)
}

func (m *MockReviewService) Get(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	args := m.Called(ctx, id)
	review, _ := args.Get(0).(*domain.Review)
	return review, args.Error(1)
}

func (m *MockReviewService) List(ctx context.Context) ([]*domain.Review, error) {
	args := m.Called(ctx)
	reviews, _ := args.Get(0).([]*domain.Review)
	return reviews, args.Error(1)
}

func (m *MockReviewService) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	args := m.Called(ctx, placeID)
	reviews, _ := args.Get(0).([]*domain.Review)
	return reviews, args.Error(1)
}

func (m *MockReviewService) ListByAuthor(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error) {
	args := m.Called(ctx, userID)
	reviews, _ := args.Get(0).([]*domain.Review)
	return reviews, args.Error(1)
}

func (m *MockReviewService) Update(
	ctx context.Context,
	identity domain.Identity,
	id uuid.UUID,
	input service.UpdateReviewInput,
) (*domain.Review, error) {
	args := m.Called(ctx, identity, id, input)
	review, _ := args.Get(0).(*domain.Review)
	return review, args.Error(1)
}

func (m *MockReviewService) Delete(ctx context.Context, identity domain.Identity, id uuid.UUID) error {
	args := m.Called(ctx, identity, id)
	return args.Error(0)
}

// withIdentity places the caller identity in the request context the way the
// auth middleware does.
func withIdentity(r *http.Request, identity domain.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), shared.IdentityContextKey, identity)
	return r.WithContext(ctx)
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func mustReview(t *testing.T, userID, placeID uuid.UUID) *domain.Review {
	t.Helper()
	review, err := domain.NewReview(userID, placeID, "Great stay", 4)
	require.NoError(t, err)
	return review
}

func TestReviewHandler_Create(t *testing.T) {
	callerID := uuid.New()
	placeID := uuid.New()
	identity := domain.Identity{SubjectID: callerID}

	t.Run("comment field", func(t *testing.T) {
		svc := &MockReviewService{}
		handler := NewReviewHandler(svc)

		svc.On("Create", mock.Anything, identity, mock.MatchedBy(func(in service.CreateReviewInput) bool {
			return in.Comment == "Lovely place" && in.Rating == 4 && in.PlaceID == placeID
		})).Return(mustReview(t, callerID, placeID), nil)

		body, _ := json.Marshal(map[string]interface{}{
			"comment":  "Lovely place",
			"rating":   4,
			"place_id": placeID,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", bytes.NewReader(body))
		req = withIdentity(req, identity)
		rr := httptest.NewRecorder()

		handler.Create(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		svc.AssertExpectations(t)
	})

	t.Run("legacy text field is accepted as comment", func(t *testing.T) {
		svc := &MockReviewService{}
		handler := NewReviewHandler(svc)

		svc.On("Create", mock.Anything, identity, mock.MatchedBy(func(in service.CreateReviewInput) bool {
			return in.Comment == "nice"
		})).Return(mustReview(t, callerID, placeID), nil)

		body, _ := json.Marshal(map[string]interface{}{
			"text":     "nice",
			"rating":   4,
			"place_id": placeID,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", bytes.NewReader(body))
		req = withIdentity(req, identity)
		rr := httptest.NewRecorder()

		handler.Create(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		svc.AssertExpectations(t)
	})

	t.Run("comment wins when both fields are present", func(t *testing.T) {
		svc := &MockReviewService{}
		handler := NewReviewHandler(svc)

		svc.On("Create", mock.Anything, identity, mock.MatchedBy(func(in service.CreateReviewInput) bool {
			return in.Comment == "canonical"
		})).Return(mustReview(t, callerID, placeID), nil)

		body, _ := json.Marshal(map[string]interface{}{
			"comment":  "canonical",
			"text":     "legacy",
			"rating":   4,
			"place_id": placeID,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", bytes.NewReader(body))
		req = withIdentity(req, identity)
		rr := httptest.NewRecorder()

		handler.Create(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		svc.AssertExpectations(t)
	})

	t.Run("missing rating is a 400", func(t *testing.T) {
		svc := &MockReviewService{}
		handler := NewReviewHandler(svc)

		body, _ := json.Marshal(map[string]interface{}{
			"comment":  "Lovely place",
			"place_id": placeID,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", bytes.NewReader(body))
		req = withIdentity(req, identity)
		rr := httptest.NewRecorder()

		handler.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("out-of-range rating is a 400", func(t *testing.T) {
		svc := &MockReviewService{}
		handler := NewReviewHandler(svc)

		body, _ := json.Marshal(map[string]interface{}{
			"comment":  "Lovely place",
			"rating":   6,
			"place_id": placeID,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", bytes.NewReader(body))
		req = withIdentity(req, identity)
		rr := httptest.NewRecorder()

		handler.Create(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing identity is a 401", func(t *testing.T) {
		svc := &MockReviewService{}
		handler := NewReviewHandler(svc)

		body, _ := json.Marshal(map[string]interface{}{
			"comment":  "Lovely place",
			"rating":   4,
			"place_id": placeID,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.Create(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("missing place maps to 404", func(t *testing.T) {
		svc := &MockReviewService{}
		handler := NewReviewHandler(svc)

		svc.On("Create", mock.Anything, identity, mock.Anything).
			Return(nil, store.ErrPlaceNotFound)

		body, _ := json.Marshal(map[string]interface{}{
			"comment":  "Lovely place",
			"rating":   4,
			"place_id": placeID,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/reviews", bytes.NewReader(body))
		req = withIdentity(req, identity)
		rr := httptest.NewRecorder()

		handler.Create(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestReviewHandler_Update(t *testing.T) {
	callerID := uuid.New()
	reviewID := uuid.New()
	identity := domain.Identity{SubjectID: callerID}

	t.Run("text alias works on update too", func(t *testing.T) {
		svc := &MockReviewService{}
		handler := NewReviewHandler(svc)

		svc.On("Update", mock.Anything, identity, reviewID, mock.MatchedBy(func(in service.UpdateReviewInput) bool {
			return in.Comment != nil && *in.Comment == "updated text" && in.Rating == nil
		})).Return(mustReview(t, callerID, uuid.New()), nil)

		body, _ := json.Marshal(map[string]interface{}{"text": "updated text"})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/reviews/"+reviewID.String(), bytes.NewReader(body))
		req = withIdentity(req, identity)
		req = withURLParam(req, "id", reviewID.String())
		rr := httptest.NewRecorder()

		handler.Update(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		svc.AssertExpectations(t)
	})

	t.Run("forbidden maps to 403", func(t *testing.T) {
		svc := &MockReviewService{}
		handler := NewReviewHandler(svc)

		svc.On("Update", mock.Anything, identity, reviewID, mock.Anything).
			Return(nil, service.ErrForbidden)

		body, _ := json.Marshal(map[string]interface{}{"rating": 2})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/reviews/"+reviewID.String(), bytes.NewReader(body))
		req = withIdentity(req, identity)
		req = withURLParam(req, "id", reviewID.String())
		rr := httptest.NewRecorder()

		handler.Update(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		svc := &MockReviewService{}
		handler := NewReviewHandler(svc)

		body, _ := json.Marshal(map[string]interface{}{"rating": 2})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/reviews/not-a-uuid", bytes.NewReader(body))
		req = withIdentity(req, identity)
		req = withURLParam(req, "id", "not-a-uuid")
		rr := httptest.NewRecorder()

		handler.Update(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestReviewHandler_Delete(t *testing.T) {
	callerID := uuid.New()
	reviewID := uuid.New()
	identity := domain.Identity{SubjectID: callerID}

	t.Run("success returns 204", func(t *testing.T) {
		svc := &MockReviewService{}
		handler := NewReviewHandler(svc)

		svc.On("Delete", mock.Anything, identity, reviewID).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/reviews/"+reviewID.String(), nil)
		req = withIdentity(req, identity)
		req = withURLParam(req, "id", reviewID.String())
		rr := httptest.NewRecorder()

		handler.Delete(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("missing review maps to 404", func(t *testing.T) {
		svc := &MockReviewService{}
		handler := NewReviewHandler(svc)

		svc.On("Delete", mock.Anything, identity, reviewID).Return(store.ErrReviewNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/reviews/"+reviewID.String(), nil)
		req = withIdentity(req, identity)
		req = withURLParam(req, "id", reviewID.String())
		rr := httptest.NewRecorder()

		handler.Delete(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
