package raffles

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/misterwinner/raffle/internal/domain"
	"github.com/misterwinner/raffle/internal/dto"
	"github.com/misterwinner/raffle/internal/service/raffleservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*RaffleHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListRafflesHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "Defaults to active raffles",
			target: "/api/raffles",
			prepareMock: func() {
				service.EXPECT().ListActive(gomock.Any()).Return([]domain.Raffle{
					{ID: 1, Status: domain.ActiveRaffleStatus},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:   "Status filter",
			target: "/api/raffles?status=completed",
			prepareMock: func() {
				service.EXPECT().ListByStatus(gomock.Any(), "completed").Return([]domain.Raffle{
					{ID: 2, Status: domain.CompletedRaffleStatus},
					{ID: 3, Status: domain.CompletedRaffleStatus},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "Search query",
			target: "/api/raffles?q=julio",
			prepareMock: func() {
				service.EXPECT().Search(gomock.Any(), "julio").Return([]domain.Raffle{
					{ID: 1, Title: "Rifa Especial de Julio"},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:   "Recent raffles",
			target: "/api/raffles?recent=3",
			prepareMock: func() {
				service.EXPECT().Recent(gomock.Any(), 3).Return([]domain.Raffle{
					{ID: 5, Status: domain.ActiveRaffleStatus},
					{ID: 4, Status: domain.CompletedRaffleStatus},
					{ID: 3, Status: domain.CompletedRaffleStatus},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  3,
		},
		{
			name:         "Invalid recent limit",
			target:       "/api/raffles?recent=abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Internal error",
			target: "/api/raffles",
			prepareMock: func() {
				service.EXPECT().ListActive(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()
			handler.ListRaffles(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.RaffleResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestGetRaffleHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		raffleID     string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:     "Raffle found",
			raffleID: "1",
			prepareMock: func() {
				service.EXPECT().GetByID(gomock.Any(), 1).Return(&domain.Raffle{
					ID:     1,
					Title:  "Rifa Especial",
					Type:   4,
					Prizes: []domain.Prize{{Position: 1, Name: "Teléfono Inteligente", Amount: 500}},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid raffle id",
			raffleID:     "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "Raffle not found",
			raffleID: "99",
			prepareMock: func() {
				service.EXPECT().GetByID(gomock.Any(), 99).Return(nil, raffleservice.ErrRaffleNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:     "Internal error",
			raffleID: "1",
			prepareMock: func() {
				service.EXPECT().GetByID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/api/raffles/"+tt.raffleID, nil)
			r = withURLParam(r, "id", tt.raffleID)
			w := httptest.NewRecorder()
			handler.GetRaffle(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetProgressHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().Progress(gomock.Any(), 1).Return(&raffleservice.Progress{
		Sold:       7800,
		Total:      10000,
		Percentage: 78,
	}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/raffles/1/progress", nil)
	r = withURLParam(r, "id", "1")
	w := httptest.NewRecorder()
	handler.GetProgress(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.RaffleProgressResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, 7800, body.Sold)
	assert.Equal(t, 78, body.Percentage)
}

func TestCreateRaffleHandler(t *testing.T) {
	handler, service := NewMock(t)
	drawDate := time.Date(2025, 7, 30, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Raffle created",
			body: `{"title":"Rifa Especial","type":4,"price_per_number":2,"draw_date":"2025-07-30T20:00:00Z","prizes":[{"position":1,"name":"Teléfono Inteligente","amount":500}]}`,
			prepareMock: func() {
				prizes := []domain.Prize{{Position: 1, Name: "Teléfono Inteligente", Amount: 500}}
				service.EXPECT().
					Create(gomock.Any(), "Rifa Especial", 4, 2.0, prizes, drawDate).
					Return(&domain.Raffle{ID: 1, Title: "Rifa Especial", Type: 4, TotalNumbers: 10000, Prizes: prizes}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Invalid request body",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Validation error",
			body: `{"title":"Rifa","type":3,"price_per_number":2,"draw_date":"2025-07-30T20:00:00Z","prizes":[{"position":1,"name":"Premio","amount":10}]}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), "Rifa", 3, 2.0, gomock.Any(), drawDate).
					Return(nil, raffleservice.ErrInvalidRaffleType)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Internal error",
			body: `{"title":"Rifa","type":2,"price_per_number":2,"draw_date":"2025-07-30T20:00:00Z","prizes":[{"position":1,"name":"Premio","amount":10}]}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), "Rifa", 2, 2.0, gomock.Any(), drawDate).
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/api/admin/raffles", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			handler.CreateRaffle(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestUpdateStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		raffleID     string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:     "Status updated",
			raffleID: "1",
			body:     `{"status":"completed"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), 1, "completed").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "Raffle not found",
			raffleID: "99",
			body:     `{"status":"completed"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), 99, "completed").Return(raffleservice.ErrRaffleNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:     "Invalid transition",
			raffleID: "1",
			body:     `{"status":"active"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), 1, "active").Return(raffleservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPatch, "/api/admin/raffles/"+tt.raffleID+"/status", bytes.NewBufferString(tt.body))
			r = withURLParam(r, "id", tt.raffleID)
			w := httptest.NewRecorder()
			handler.UpdateStatus(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
