package service

import (
	"github.com/GlebRadaev/library/internal/handlers/auth"
	"github.com/GlebRadaev/library/internal/handlers/cards"
	"github.com/GlebRadaev/library/internal/handlers/catalog"
	"github.com/GlebRadaev/library/internal/handlers/issues"
	"github.com/GlebRadaev/library/internal/handlers/members"
	"github.com/GlebRadaev/library/internal/handlers/requests"

	pkgauth "github.com/GlebRadaev/library/pkg/auth"

	"github.com/GlebRadaev/library/internal/repo"
	authservice "github.com/GlebRadaev/library/internal/service/authservice"
	cardservice "github.com/GlebRadaev/library/internal/service/cardservice"
	catalogservice "github.com/GlebRadaev/library/internal/service/catalogservice"
	issueservice "github.com/GlebRadaev/library/internal/service/issueservice"
	requestservice "github.com/GlebRadaev/library/internal/service/requestservice"
)

type Services struct {
	AuthService    auth.Service
	CatalogService catalog.Service
	MemberService  members.Service
	CardService    cards.Service
	IssueService   issues.Service
	RequestService requests.Service
}

func New(repo *repo.Repositories, jwtService pkgauth.JWTServiceInterface) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService)
	catalogService := catalogservice.New(repo.CatalogRepo)
	cardService := cardservice.New(repo.CardRepo, repo.TXManager)
	issueService := issueservice.New(repo.IssueRepo, repo.InvoiceRepo, repo.CardRepo, repo.CatalogRepo, repo.TXManager)
	requestService := requestservice.New(repo.RequestRepo, repo.CatalogRepo, repo.CardRepo, issueService, repo.TXManager)

	return &Services{
		AuthService:    authService,
		CatalogService: catalogService,
		MemberService:  cardService,
		CardService:    cardService,
		IssueService:   issueService,
		RequestService: requestService,
	}
}
