package repo

import (
	"github.com/GlebRadaev/library/internal/finesweep"
	"github.com/GlebRadaev/library/internal/pg"
	cardrepo "github.com/GlebRadaev/library/internal/repo/card-repo"
	catalogrepo "github.com/GlebRadaev/library/internal/repo/catalog-repo"
	invoicerepo "github.com/GlebRadaev/library/internal/repo/invoice-repo"
	issuerepo "github.com/GlebRadaev/library/internal/repo/issue-repo"
	requestrepo "github.com/GlebRadaev/library/internal/repo/request-repo"
	userrepo "github.com/GlebRadaev/library/internal/repo/user-repo"
	"github.com/GlebRadaev/library/internal/service/authservice"
	"github.com/GlebRadaev/library/internal/service/cardservice"
	"github.com/GlebRadaev/library/internal/service/catalogservice"
	"github.com/GlebRadaev/library/internal/service/issueservice"
	"github.com/GlebRadaev/library/internal/service/requestservice"
)

type CatalogRepo interface {
	catalogservice.Repo
	issueservice.CatalogRepo
}

type CardRepo interface {
	cardservice.Repo
	issueservice.CardRepo
}

type IssueRepo interface {
	issueservice.IssueRepo
	finesweep.Repo
}

type Repositories struct {
	UserRepo    authservice.Repo
	CatalogRepo CatalogRepo
	CardRepo    CardRepo
	IssueRepo   IssueRepo
	InvoiceRepo issueservice.InvoiceRepo
	RequestRepo requestservice.Repo
	TXManager   pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		UserRepo:    userrepo.New(conn),
		CatalogRepo: catalogrepo.New(conn),
		CardRepo:    cardrepo.New(conn),
		IssueRepo:   issuerepo.New(conn),
		InvoiceRepo: invoicerepo.New(conn),
		RequestRepo: requestrepo.New(conn),
		TXManager:   txManager,
	}
}
