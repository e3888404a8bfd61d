package winners

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/misterwinner/raffle/internal/domain"
	"github.com/misterwinner/raffle/internal/dto"
	"github.com/misterwinner/raffle/internal/service/winnerservice"
	"github.com/misterwinner/raffle/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WinnerHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func sampleWinners() []domain.Winner {
	return []domain.Winner{
		{ID: 1, RaffleID: 1, PurchaseID: 10, UserID: 1, WinningNumber: "42", PrizePosition: 1, PrizeName: "Teléfono Inteligente", PrizeAmount: 500.0, Status: domain.PendingWinnerStatus},
		{ID: 2, RaffleID: 1, PurchaseID: 11, UserID: 3, WinningNumber: "07", PrizePosition: 2, PrizeName: "Tablet", PrizeAmount: 200.0, Status: domain.PendingWinnerStatus},
	}
}

func TestGetRecentWinnersHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		target       string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "Recent winners with explicit limit",
			target: "/api/winners?limit=2",
			prepareMock: func() {
				service.EXPECT().Recent(gomock.Any(), 2).Return(sampleWinners(), nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "Missing limit passed through as zero",
			target: "/api/winners",
			prepareMock: func() {
				service.EXPECT().Recent(gomock.Any(), 0).Return(sampleWinners()[:1], nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{
			name:   "Service failure",
			target: "/api/winners",
			prepareMock: func() {
				service.EXPECT().Recent(gomock.Any(), 0).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()
			handler.GetRecentWinners(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.WinnerResponseDTO
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}

func TestGetUserWinnersHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "User winners returned",
			prepareMock: func() {
				service.EXPECT().ByUser(gomock.Any(), 1).Return(sampleWinners()[:1], nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().ByUser(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest(http.MethodGet, "/api/user/winners", "")
			w := httptest.NewRecorder()
			handler.GetUserWinners(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.WinnerResponseDTO
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, "42", body[0].WinningNumber)
			}
		})
	}
}

func TestDrawHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		raffleID     string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:     "Winners drawn",
			raffleID: "1",
			prepareMock: func() {
				service.EXPECT().Draw(gomock.Any(), 1).Return(sampleWinners(), nil)
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
				service.EXPECT().Draw(gomock.Any(), 99).Return(nil, winnerservice.ErrRaffleNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:     "Raffle cancelled",
			raffleID: "2",
			prepareMock: func() {
				service.EXPECT().Draw(gomock.Any(), 2).Return(nil, winnerservice.ErrRaffleCancelled)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:     "No numbers sold",
			raffleID: "3",
			prepareMock: func() {
				service.EXPECT().Draw(gomock.Any(), 3).Return(nil, winnerservice.ErrNoNumbersSold)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:     "Already drawn",
			raffleID: "4",
			prepareMock: func() {
				service.EXPECT().Draw(gomock.Any(), 4).Return(nil, winnerservice.ErrAlreadyDrawn)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:     "Service failure",
			raffleID: "5",
			prepareMock: func() {
				service.EXPECT().Draw(gomock.Any(), 5).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest(http.MethodPost, "/api/admin/raffles/"+tt.raffleID+"/draw", "")
			r = withURLParam(r, "id", tt.raffleID)
			w := httptest.NewRecorder()
			handler.Draw(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.WinnerResponseDTO
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Len(t, body, 2)
				assert.Equal(t, 1, body[0].PrizePosition)
			}
		})
	}
}

func TestUpdateWinnerStatusHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		winnerID     string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:     "Status updated",
			winnerID: "1",
			body:     `{"status":"contacted"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), 1, "contacted").Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid winner id",
			winnerID:     "abc",
			body:         `{"status":"contacted"}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			winnerID:     "1",
			body:         `{invalid`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:     "Winner not found",
			winnerID: "99",
			body:     `{"status":"contacted"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), 99, "contacted").Return(winnerservice.ErrWinnerNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:     "Backwards transition rejected",
			winnerID: "1",
			body:     `{"status":"pending"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), 1, "pending").Return(winnerservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:     "Service failure",
			winnerID: "1",
			body:     `{"status":"contacted"}`,
			prepareMock: func() {
				service.EXPECT().UpdateStatus(gomock.Any(), 1, "contacted").Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := authedRequest(http.MethodPatch, "/api/admin/winners/"+tt.winnerID+"/status", tt.body)
			r = withURLParam(r, "id", tt.winnerID)
			w := httptest.NewRecorder()
			handler.UpdateStatus(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
