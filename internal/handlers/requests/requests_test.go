package requests

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/library/internal/circulation"
	"github.com/GlebRadaev/library/internal/domain"
	"github.com/GlebRadaev/library/internal/service/requestservice"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*RequestHandler, *MockService) {
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

func TestCreateRequest(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		prepareMock  func(service *MockService)
		expectedCode int
		expectedBody string
	}{
		{
			name: "Existing book",
			body: `{"card_id":3,"type":"existing","book_id":1}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), domain.NewRequest{CardID: 3, Type: domain.RequestExisting, BookID: intPtr(1)}).
					Return(&domain.BookRequest{ID: 2, ReqID: "BR/00002", CardID: 3, Type: domain.RequestExisting, BookID: intPtr(1), BookName: "Dune", State: domain.RequestDraft}, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"id":2,"req_id":"BR/00002","card_id":3,"type":"existing","book_id":1,"book_name":"Dune","state":"draft"}`,
		},
		{
			name:         "Unknown type",
			body:         `{"card_id":3,"type":"other"}`,
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"type: failed oneof=existing new"}`,
		},
		{
			name: "New book without a name",
			body: `{"card_id":3,"type":"new"}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, requestservice.ErrInvalidRequest)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"invalid book request"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			rr := httptest.NewRecorder()
			handler.CreateRequest(rr, httptest.NewRequest(http.MethodPost, "/api/requests", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name         string
		action       string
		prepareMock  func(service *MockService)
		expectedCode int
	}{
		{
			name:   "Confirm",
			action: "confirm",
			prepareMock: func(service *MockService) {
				service.EXPECT().Confirm(gomock.Any(), 2).Return(&domain.BookRequest{ID: 2, IssueID: intPtr(5), State: domain.RequestConfirm}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Confirm a new book",
			action: "confirm",
			prepareMock: func(service *MockService) {
				service.EXPECT().Confirm(gomock.Any(), 2).Return(nil, requestservice.ErrNotInCatalog)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "Confirm over the limit",
			action: "confirm",
			prepareMock: func(service *MockService) {
				service.EXPECT().Confirm(gomock.Any(), 2).Return(nil, circulation.ErrBorrowLimit)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "Draft after confirm",
			action: "draft",
			prepareMock: func(service *MockService) {
				service.EXPECT().Draft(gomock.Any(), 2).Return(nil, requestservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "Cancel unknown request",
			action: "cancel",
			prepareMock: func(service *MockService) {
				service.EXPECT().Cancel(gomock.Any(), 2).Return(nil, requestservice.ErrRequestNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Unknown action",
			action:       "approve",
			prepareMock:  func(service *MockService) {},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			req := withParams(httptest.NewRequest(http.MethodPost, "/api/requests/2/"+tt.action, nil), "id", "2", "action", tt.action)
			rr := httptest.NewRecorder()
			handler.Transition(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListRequests(t *testing.T) {
	handler, service := NewMock(t)
	state := domain.RequestDraft
	service.EXPECT().List(gomock.Any(), domain.RequestFilter{State: &state}).Return([]domain.BookRequest{{ID: 1, State: domain.RequestDraft}}, nil)

	rr := httptest.NewRecorder()
	handler.ListRequests(rr, httptest.NewRequest(http.MethodGet, "/api/requests?state=draft", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{"id":1,"req_id":"","card_id":0,"type":"","book_name":"","state":"draft"}]`, rr.Body.String())

	rr = httptest.NewRecorder()
	handler.ListRequests(rr, httptest.NewRequest(http.MethodGet, "/api/requests?card_id=-1", nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
