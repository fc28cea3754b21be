package requestservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/library/internal/circulation"
	"github.com/GlebRadaev/library/internal/domain"
	"github.com/GlebRadaev/library/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=requestservice.go -destination=mock_requestservice.go -package=requestservice

type Repo interface {
	Create(ctx context.Context, req *domain.BookRequest) error
	Get(ctx context.Context, id int) (*domain.BookRequest, error)
	Lock(ctx context.Context, id int) (*domain.BookRequest, error)
	List(ctx context.Context, filter domain.RequestFilter) ([]domain.BookRequest, error)
	Update(ctx context.Context, req *domain.BookRequest) error
}

type CatalogRepo interface {
	GetBook(ctx context.Context, id int) (*domain.Book, error)
}

type CardRepo interface {
	GetCard(ctx context.Context, id int) (*domain.Card, error)
}

// IssueCreator opens the checkout for a confirmed request.
type IssueCreator interface {
	Create(ctx context.Context, in domain.NewIssue) (*domain.BookIssue, error)
}

var (
	ErrRequestNotFound   = errors.New("book request not found")
	ErrCardNotFound      = errors.New("card not found")
	ErrBookNotFound      = errors.New("book not found")
	ErrInvalidRequest    = errors.New("invalid book request")
	ErrNotInCatalog      = errors.New("a request for a new book can't be confirmed until the book is in the catalog")
	ErrInvalidTransition = errors.New("action not allowed in current request state")
)

type Service struct {
	repo      Repo
	catalog   CatalogRepo
	cards     CardRepo
	issues    IssueCreator
	txManager pg.TXManager
}

func New(repo Repo, catalog CatalogRepo, cards CardRepo, issues IssueCreator, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		catalog:   catalog,
		cards:     cards,
		issues:    issues,
		txManager: txManager,
	}
}

func (s *Service) Create(ctx context.Context, in domain.NewRequest) (*domain.BookRequest, error) {
	req := &domain.BookRequest{
		CardID: in.CardID,
		Type:   in.Type,
		State:  domain.RequestDraft,
	}

	var book *domain.Book
	switch in.Type {
	case domain.RequestExisting:
		if in.BookID == nil {
			return nil, fmt.Errorf("%w: book is required for an existing book", ErrInvalidRequest)
		}
		var err error
		book, err = s.catalog.GetBook(ctx, *in.BookID)
		if err != nil {
			return nil, err
		}
		if book == nil {
			return nil, ErrBookNotFound
		}
		req.BookID = in.BookID
	case domain.RequestNew:
		if in.NewBookName == "" {
			return nil, fmt.Errorf("%w: name is required for a new book", ErrInvalidRequest)
		}
		req.NewBookName = in.NewBookName
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidRequest, in.Type)
	}
	req.BookName = circulation.BookName(in.Type, book, in.NewBookName)

	card, err := s.cards.GetCard(ctx, in.CardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	zap.L().Info("book request created", zap.String("req_id", req.ReqID), zap.String("book", req.BookName))
	return req, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.BookRequest, error) {
	req, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	return req, nil
}

func (s *Service) List(ctx context.Context, filter domain.RequestFilter) ([]domain.BookRequest, error) {
	return s.repo.List(ctx, filter)
}

// Confirm turns a draft request into a book issue. Confirming a request
// a second time returns it unchanged with the issue created the first time.
func (s *Service) Confirm(ctx context.Context, id int) (*domain.BookRequest, error) {
	var req *domain.BookRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		req, err = s.lock(ctx, id)
		if err != nil {
			return err
		}
		if req.State == domain.RequestConfirm && req.IssueID != nil {
			return nil
		}
		if req.State != domain.RequestDraft || req.IssueID != nil {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, req.State, domain.RequestConfirm)
		}
		if req.Type != domain.RequestExisting || req.BookID == nil {
			return ErrNotInCatalog
		}

		issue, err := s.issues.Create(ctx, domain.NewIssue{BookID: *req.BookID, CardID: req.CardID})
		if err != nil {
			return err
		}
		req.IssueID = &issue.ID
		req.State = domain.RequestConfirm
		return s.repo.Update(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("book request confirmed", zap.String("req_id", req.ReqID), zap.Intp("issue_id", req.IssueID))
	return req, nil
}

func (s *Service) Cancel(ctx context.Context, id int) (*domain.BookRequest, error) {
	return s.move(ctx, id, domain.RequestCancel)
}

// Draft reopens a cancelled request that has not been confirmed.
func (s *Service) Draft(ctx context.Context, id int) (*domain.BookRequest, error) {
	return s.move(ctx, id, domain.RequestDraft)
}

func (s *Service) move(ctx context.Context, id int, to domain.RequestState) (*domain.BookRequest, error) {
	var req *domain.BookRequest
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		req, err = s.lock(ctx, id)
		if err != nil {
			return err
		}
		// A request that already produced an issue can't be reopened.
		if to == domain.RequestDraft && (req.State == domain.RequestConfirm || req.IssueID != nil) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, req.State, to)
		}
		req.State = to
		return s.repo.Update(ctx, req)
	})
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (s *Service) lock(ctx context.Context, id int) (*domain.BookRequest, error) {
	req, err := s.repo.Lock(ctx, id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrRequestNotFound
	}
	return req, nil
}
