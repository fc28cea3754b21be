package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/library/internal/domain"
	catalogrepo "github.com/GlebRadaev/library/internal/repo/catalog-repo"
	"github.com/GlebRadaev/library/internal/service/catalogservice"
	"github.com/GlebRadaev/library/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*CatalogHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func withID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestCreateBook(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Book created",
			body: `{"name":"Dune","price":40,"author_id":1}`,
			prepareMock: func() {
				service.EXPECT().CreateBook(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *domain.Book) error {
					assert.Equal(t, "Dune", b.Name)
					assert.Equal(t, 1, *b.AuthorID)
					b.ID = 7
					b.Availability = domain.Available
					return nil
				})
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"name":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:          "Missing name",
			body:          `{"price":40}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "name: failed required",
		},
		{
			name:          "Unknown availability",
			body:          `{"name":"Dune","availability":"sold"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "availability: failed oneof=available notavailable",
		},
		{
			name: "Unknown author",
			body: `{"name":"Dune","author_id":99}`,
			prepareMock: func() {
				service.EXPECT().CreateBook(gomock.Any(), gomock.Any()).Return(catalogrepo.ErrUnknownReference)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: catalogrepo.ErrUnknownReference.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := httptest.NewRequest(http.MethodPost, "/api/catalog/books", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.CreateBook(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError != "" {
				var resp utils.Response
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Message)
				return
			}
			var book domain.Book
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&book))
			assert.Equal(t, 7, book.ID)
			assert.Equal(t, domain.Available, book.Availability)
		})
	}
}

func TestCreateAuthorDuplicate(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().CreateAuthor(gomock.Any(), gomock.Any()).Return(catalogrepo.ErrAuthorExists)

	req := httptest.NewRequest(http.MethodPost, "/api/catalog/authors", bytes.NewBufferString(`{"name":"Frank Herbert"}`))
	rr := httptest.NewRecorder()
	handler.CreateAuthor(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"message":"the name of the author must be unique"}`, rr.Body.String())
}

func TestCreateRackDefaultsToActive(t *testing.T) {
	handler, service := NewMock(t)
	service.EXPECT().CreateRack(gomock.Any(), &domain.Rack{Name: "Science fiction", Code: "R-12", Active: true}).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/catalog/racks", bytes.NewBufferString(`{"name":"Science fiction","code":"R-12"}`))
	rr := httptest.NewRecorder()
	handler.CreateRack(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestGetBook(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		id           string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Found",
			id:   "7",
			prepareMock: func() {
				service.EXPECT().GetBook(gomock.Any(), 7).Return(&domain.Book{ID: 7, Name: "Dune"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid id",
			id:           "seven",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not found",
			id:   "8",
			prepareMock: func() {
				service.EXPECT().GetBook(gomock.Any(), 8).Return(nil, catalogservice.ErrBookNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal server error",
			id:   "9",
			prepareMock: func() {
				service.EXPECT().GetBook(gomock.Any(), 9).Return(nil, errors.New("database error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			req := withID(httptest.NewRequest(http.MethodGet, "/api/catalog/books/"+tt.id, nil), tt.id)
			rr := httptest.NewRecorder()
			handler.GetBook(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestListReturnDays(t *testing.T) {
	t.Run("Empty catalog", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ListReturnDays(gomock.Any()).Return(nil, nil)

		rr := httptest.NewRecorder()
		handler.ListReturnDays(rr, httptest.NewRequest(http.MethodGet, "/api/catalog/return-days", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("Policies", func(t *testing.T) {
		handler, service := NewMock(t)
		service.EXPECT().ListReturnDays(gomock.Any()).Return([]domain.ReturnDay{{ID: 1, Day: 14, Code: "2W", FineAmount: 5}}, nil)

		rr := httptest.NewRecorder()
		handler.ListReturnDays(rr, httptest.NewRequest(http.MethodGet, "/api/catalog/return-days", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[{"id":1,"day":14,"code":"2W","fine_amt":5}]`, rr.Body.String())
	})
}
