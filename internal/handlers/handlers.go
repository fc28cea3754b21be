package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/library/docs"
	authhandlers "github.com/GlebRadaev/library/internal/handlers/auth"
	cardhandlers "github.com/GlebRadaev/library/internal/handlers/cards"
	cataloghandlers "github.com/GlebRadaev/library/internal/handlers/catalog"
	issuehandlers "github.com/GlebRadaev/library/internal/handlers/issues"
	memberhandlers "github.com/GlebRadaev/library/internal/handlers/members"
	requesthandlers "github.com/GlebRadaev/library/internal/handlers/requests"
	"github.com/GlebRadaev/library/internal/service"
	"github.com/GlebRadaev/library/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CatalogHandler interface {
	CreatePriceCategory(w http.ResponseWriter, r *http.Request)
	ListPriceCategories(w http.ResponseWriter, r *http.Request)
	CreateRack(w http.ResponseWriter, r *http.Request)
	ListRacks(w http.ResponseWriter, r *http.Request)
	CreateCollection(w http.ResponseWriter, r *http.Request)
	ListCollections(w http.ResponseWriter, r *http.Request)
	CreateReturnDay(w http.ResponseWriter, r *http.Request)
	ListReturnDays(w http.ResponseWriter, r *http.Request)
	CreateAuthor(w http.ResponseWriter, r *http.Request)
	ListAuthors(w http.ResponseWriter, r *http.Request)
	CreateBook(w http.ResponseWriter, r *http.Request)
	GetBook(w http.ResponseWriter, r *http.Request)
	ListBooks(w http.ResponseWriter, r *http.Request)
}

type MemberHandler interface {
	CreateStudent(w http.ResponseWriter, r *http.Request)
	GetStudent(w http.ResponseWriter, r *http.Request)
	CreateTeacher(w http.ResponseWriter, r *http.Request)
	GetTeacher(w http.ResponseWriter, r *http.Request)
}

type CardHandler interface {
	CreateCard(w http.ResponseWriter, r *http.Request)
	GetCard(w http.ResponseWriter, r *http.Request)
	GetCardByCode(w http.ResponseWriter, r *http.Request)
	ListCards(w http.ResponseWriter, r *http.Request)
}

type IssueHandler interface {
	CreateIssue(w http.ResponseWriter, r *http.Request)
	GetIssue(w http.ResponseWriter, r *http.Request)
	ListIssues(w http.ResponseWriter, r *http.Request)
	Transition(w http.ResponseWriter, r *http.Request)
	GetInvoice(w http.ResponseWriter, r *http.Request)
}

type RequestHandler interface {
	CreateRequest(w http.ResponseWriter, r *http.Request)
	GetRequest(w http.ResponseWriter, r *http.Request)
	ListRequests(w http.ResponseWriter, r *http.Request)
	Transition(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler    AuthHandler
	CatalogHandler CatalogHandler
	MemberHandler  MemberHandler
	CardHandler    CardHandler
	IssueHandler   IssueHandler
	RequestHandler RequestHandler
	jwtService     auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:    authhandlers.New(s.AuthService),
		CatalogHandler: cataloghandlers.New(s.CatalogService),
		MemberHandler:  memberhandlers.New(s.MemberService),
		CardHandler:    cardhandlers.New(s.CardService),
		IssueHandler:   issuehandlers.New(s.IssueService),
		RequestHandler: requesthandlers.New(s.RequestService),
		jwtService:     jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/staff", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))

			r.Route("/catalog", func(r chi.Router) {
				r.Post("/price-categories", h.CatalogHandler.CreatePriceCategory)
				r.Get("/price-categories", h.CatalogHandler.ListPriceCategories)
				r.Post("/racks", h.CatalogHandler.CreateRack)
				r.Get("/racks", h.CatalogHandler.ListRacks)
				r.Post("/collections", h.CatalogHandler.CreateCollection)
				r.Get("/collections", h.CatalogHandler.ListCollections)
				r.Post("/return-days", h.CatalogHandler.CreateReturnDay)
				r.Get("/return-days", h.CatalogHandler.ListReturnDays)
				r.Post("/authors", h.CatalogHandler.CreateAuthor)
				r.Get("/authors", h.CatalogHandler.ListAuthors)
				r.Post("/books", h.CatalogHandler.CreateBook)
				r.Get("/books", h.CatalogHandler.ListBooks)
				r.Get("/books/{id}", h.CatalogHandler.GetBook)
			})
			r.Route("/members", func(r chi.Router) {
				r.Post("/students", h.MemberHandler.CreateStudent)
				r.Get("/students/{id}", h.MemberHandler.GetStudent)
				r.Post("/teachers", h.MemberHandler.CreateTeacher)
				r.Get("/teachers/{id}", h.MemberHandler.GetTeacher)
			})
			r.Route("/cards", func(r chi.Router) {
				r.Post("/", h.CardHandler.CreateCard)
				r.Get("/", h.CardHandler.ListCards)
				r.Get("/{id}", h.CardHandler.GetCard)
				r.Get("/code/{code}", h.CardHandler.GetCardByCode)
			})
			r.Route("/issues", func(r chi.Router) {
				r.Post("/", h.IssueHandler.CreateIssue)
				r.Get("/", h.IssueHandler.ListIssues)
				r.Get("/{id}", h.IssueHandler.GetIssue)
				r.Get("/{id}/invoice", h.IssueHandler.GetInvoice)
				r.Post("/{id}/{action}", h.IssueHandler.Transition)
			})
			r.Route("/requests", func(r chi.Router) {
				r.Post("/", h.RequestHandler.CreateRequest)
				r.Get("/", h.RequestHandler.ListRequests)
				r.Get("/{id}", h.RequestHandler.GetRequest)
				r.Post("/{id}/{action}", h.RequestHandler.Transition)
			})
		})
	})

	return r
}
