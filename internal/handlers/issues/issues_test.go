package issues

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GlebRadaev/library/internal/circulation"
	"github.com/GlebRadaev/library/internal/domain"
	"github.com/GlebRadaev/library/internal/dto"
	"github.com/GlebRadaev/library/internal/service/issueservice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*IssueHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	return New(service), service
}

func withParams(r *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func intPtr(v int) *int {
	return &v
}

func TestCreateIssue(t *testing.T) {
	dateIssue := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	dateReturn := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Draft created",
			body: `{"book_id":1,"card_id":3,"return_day_id":2,"date_issue":"2024-01-01T00:00:00Z"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, in domain.NewIssue) (*domain.BookIssue, error) {
					assert.Equal(t, 1, in.BookID)
					assert.Equal(t, 3, in.CardID)
					assert.Equal(t, 2, *in.ReturnDayID)
					assert.True(t, dateIssue.Equal(*in.DateIssue))
					return &domain.BookIssue{
						ID: 1, IssueCode: "BI/00001", BookID: 1, CardID: 3, ReturnDayID: intPtr(2),
						DateIssue: dateIssue, DateReturn: &dateReturn, State: domain.IssueDraft,
					}, nil
				})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Missing card",
			body:          `{"book_id":1}`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "card_id: failed required",
		},
		{
			name: "Card at its limit",
			body: `{"book_id":1,"card_id":3}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, circulation.ErrBorrowLimit)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "book issue limit is over on this card",
		},
		{
			name: "Unknown card",
			body: `{"book_id":1,"card_id":3}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, issueservice.ErrCardNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "card not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.CreateIssue(rr, httptest.NewRequest(http.MethodPost, "/api/issues", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedError)
				return
			}
			var issue dto.IssueResponseDTO
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&issue))
			assert.Equal(t, "BI/00001", issue.IssueCode)
			assert.Equal(t, "draft", issue.State)
			assert.True(t, dateReturn.Equal(*issue.DateReturn))
		})
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name         string
		action       string
		id           string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "Issue",
			action: "issue",
			id:     "4",
			prepareMock: func(service *MockService) {
				service.EXPECT().Issue(gomock.Any(), 4).Return(&domain.BookIssue{ID: 4, State: domain.IssueIssued}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Borrow limit",
			action: "reissue",
			id:     "4",
			prepareMock: func(service *MockService) {
				service.EXPECT().Reissue(gomock.Any(), 4).Return(nil, circulation.ErrBorrowLimit)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"book issue limit is over on this card"}`,
		},
		{
			name:   "Unpaid fines",
			action: "issue",
			id:     "4",
			prepareMock: func(service *MockService) {
				service.EXPECT().Issue(gomock.Any(), 4).Return(nil, fmt.Errorf("%w: BI/00002", circulation.ErrOutstandingFine))
			},
			expectedCode: http.StatusPaymentRequired,
			expectedBody: `{"message":"you can not request for a book until the fine is paid: BI/00002"}`,
		},
		{
			name:   "Missing address",
			action: "fine",
			id:     "4",
			prepareMock: func(service *MockService) {
				service.EXPECT().Fine(gomock.Any(), 4).Return(nil, circulation.ErrMissingAddress)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:   "Invalid transition",
			action: "pay",
			id:     "4",
			prepareMock: func(service *MockService) {
				service.EXPECT().Pay(gomock.Any(), 4).Return(nil, fmt.Errorf("%w: draft -> paid", circulation.ErrInvalidTransition))
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"message":"action not allowed in current state: draft -> paid"}`,
		},
		{
			name:   "Lost",
			action: "lost",
			id:     "4",
			prepareMock: func(service *MockService) {
				service.EXPECT().Lost(gomock.Any(), 4).Return(&domain.BookIssue{ID: 4, State: domain.IssueLost, LostPenalty: 40}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Unknown action",
			action:       "renew",
			id:           "4",
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"Unknown action"}`,
		},
		{
			name:         "Invalid id",
			action:       "return",
			id:           "x",
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"invalid id"}`,
		},
		{
			name:   "Not found",
			action: "cancel",
			id:     "5",
			prepareMock: func(service *MockService) {
				service.EXPECT().Cancel(gomock.Any(), 5).Return(nil, issueservice.ErrIssueNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := withParams(httptest.NewRequest(http.MethodPost, "/api/issues/"+tt.id+"/"+tt.action, nil), "id", tt.id, "action", tt.action)
			rr := httptest.NewRecorder()
			handler.Transition(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, rr.Body.String())
			}
		})
	}
}

func TestListIssues(t *testing.T) {
	t.Run("Filters by card and state", func(t *testing.T) {
		handler, service := NewMock(t)
		state := domain.IssueFine
		service.EXPECT().List(gomock.Any(), domain.IssueFilter{CardID: intPtr(3), State: &state}).
			Return([]domain.BookIssue{{ID: 1, CardID: 3, State: domain.IssueFine, Penalty: 15}}, nil)

		rr := httptest.NewRecorder()
		handler.ListIssues(rr, httptest.NewRequest(http.MethodGet, "/api/issues?card_id=3&state=fine", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		var issues []dto.IssueResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&issues))
		require.Len(t, issues, 1)
		assert.Equal(t, 15.0, issues[0].Penalty)
	})

	t.Run("Unknown state", func(t *testing.T) {
		handler, _ := NewMock(t)

		rr := httptest.NewRecorder()
		handler.ListIssues(rr, httptest.NewRequest(http.MethodGet, "/api/issues?state=overdue", nil))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Nothing found", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().List(gomock.Any(), domain.IssueFilter{}).Return(nil, nil)

		rr := httptest.NewRecorder()
		handler.ListIssues(rr, httptest.NewRequest(http.MethodGet, "/api/issues", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})
}

func TestGetInvoice(t *testing.T) {
	t.Run("Invoice with lines", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Invoice(gomock.Any(), 4).Return(&domain.Invoice{
			ID: 1, UID: "inv-1", IssueID: 4, Type: domain.OutInvoice, Partner: "Ann Smith", Reference: "BI/00004",
			Status: domain.InvoiceOpen,
			Lines: []domain.InvoiceLine{
				{Name: circulation.LostFineLine, PriceUnit: 40},
				{Name: circulation.LatePenaltyLine, PriceUnit: 15},
			},
		}, nil)

		rr := httptest.NewRecorder()
		handler.GetInvoice(rr, withParams(httptest.NewRequest(http.MethodGet, "/api/issues/4/invoice", nil), "id", "4"))

		assert.Equal(t, http.StatusOK, rr.Code)
		var inv dto.InvoiceResponseDTO
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&inv))
		assert.Equal(t, 55.0, inv.Total)
		assert.Len(t, inv.Lines, 2)
		assert.Equal(t, "open", inv.Status)
	})

	t.Run("No invoice", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().Invoice(gomock.Any(), 4).Return(nil, issueservice.ErrInvoiceNotFound)

		rr := httptest.NewRecorder()
		handler.GetInvoice(rr, withParams(httptest.NewRequest(http.MethodGet, "/api/issues/4/invoice", nil), "id", "4"))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
