package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/GlebRadaev/library/docs"
	"github.com/GlebRadaev/library/internal/handlers/auth"
	"github.com/GlebRadaev/library/internal/handlers/cards"
	"github.com/GlebRadaev/library/internal/handlers/catalog"
	"github.com/GlebRadaev/library/internal/handlers/issues"
	"github.com/GlebRadaev/library/internal/handlers/members"
	"github.com/GlebRadaev/library/internal/handlers/requests"
	"github.com/GlebRadaev/library/internal/service"
	pkgauth "github.com/GlebRadaev/library/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:    auth.NewMockService(ctrl),
		CatalogService: catalog.NewMockService(ctrl),
		MemberService:  members.NewMockService(ctrl),
		CardService:    cards.NewMockService(ctrl),
		IssueService:   issues.NewMockService(ctrl),
		RequestService: requests.NewMockService(ctrl),
	}

	h := New(services, pkgauth.NewMockJWTServiceInterface(ctrl))
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.IssueHandler)
	assert.NotNil(t, h.RequestHandler)
}

func newRouter(t *testing.T) (chi.Router, *pkgauth.MockJWTServiceInterface, *MockIssueHandler, *MockRequestHandler) {
	ctrl := gomock.NewController(t)

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockCatalogHandler := NewMockCatalogHandler(ctrl)
	mockMemberHandler := NewMockMemberHandler(ctrl)
	mockCardHandler := NewMockCardHandler(ctrl)
	mockIssueHandler := NewMockIssueHandler(ctrl)
	mockRequestHandler := NewMockRequestHandler(ctrl)
	jwtService := pkgauth.NewMockJWTServiceInterface(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().ListBooks(gomock.Any(), gomock.Any()).AnyTimes()
	mockCatalogHandler.EXPECT().GetBook(gomock.Any(), gomock.Any()).AnyTimes()
	mockMemberHandler.EXPECT().GetStudent(gomock.Any(), gomock.Any()).AnyTimes()
	mockCardHandler.EXPECT().GetCardByCode(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:    mockAuthHandler,
		CatalogHandler: mockCatalogHandler,
		MemberHandler:  mockMemberHandler,
		CardHandler:    mockCardHandler,
		IssueHandler:   mockIssueHandler,
		RequestHandler: mockRequestHandler,
		jwtService:     jwtService,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)
	return router, jwtService, mockIssueHandler, mockRequestHandler
}

func TestInitRoutesWithoutToken(t *testing.T) {
	router, _, _, _ := newRouter(t)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/staff/register", http.StatusOK},
		{"POST", "/api/staff/login", http.StatusOK},
		{"GET", "/api/catalog/books", http.StatusUnauthorized},
		{"POST", "/api/catalog/authors", http.StatusUnauthorized},
		{"POST", "/api/members/students", http.StatusUnauthorized},
		{"GET", "/api/cards", http.StatusUnauthorized},
		{"POST", "/api/issues", http.StatusUnauthorized},
		{"POST", "/api/issues/1/issue", http.StatusUnauthorized},
		{"GET", "/api/issues/1/invoice", http.StatusUnauthorized},
		{"POST", "/api/requests/1/confirm", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutesWithToken(t *testing.T) {
	router, jwtService, issueHandler, requestHandler := newRouter(t)
	jwtService.EXPECT().ValidateToken("good").Return(&pkgauth.Claims{StaffID: 1}, nil).AnyTimes()
	jwtService.EXPECT().ValidateToken("bad").Return(nil, pkgauth.ErrInvalidToken).AnyTimes()

	issueHandler.EXPECT().Transition(gomock.Any(), gomock.Any()).Do(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", chi.URLParam(r, "id"))
		assert.Equal(t, "fine", chi.URLParam(r, "action"))
		assert.Equal(t, 1, r.Context().Value(pkgauth.StaffIDKey))
	})
	issueHandler.EXPECT().GetInvoice(gomock.Any(), gomock.Any()).Do(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", chi.URLParam(r, "id"))
	})
	requestHandler.EXPECT().Transition(gomock.Any(), gomock.Any()).Do(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "confirm", chi.URLParam(r, "action"))
	})

	tests := []struct {
		method string
		url    string
		token  string
		status int
	}{
		{"GET", "/api/catalog/books", "good", http.StatusOK},
		{"GET", "/api/catalog/books/3", "good", http.StatusOK},
		{"GET", "/api/members/students/2", "good", http.StatusOK},
		{"GET", "/api/cards/code/000000018", "good", http.StatusOK},
		{"POST", "/api/issues/7/fine", "good", http.StatusOK},
		{"GET", "/api/issues/7/invoice", "good", http.StatusOK},
		{"POST", "/api/requests/2/confirm", "good", http.StatusOK},
		{"GET", "/api/catalog/books", "bad", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer "+tt.token)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
