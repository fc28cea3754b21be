package issueservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/library/internal/circulation"
	"github.com/GlebRadaev/library/internal/domain"
	"github.com/GlebRadaev/library/internal/pg"
	"go.uber.org/zap"
)

//go:generate mockgen -source=issueservice.go -destination=mock_issueservice.go -package=issueservice

type IssueRepo interface {
	Create(ctx context.Context, i *domain.BookIssue) error
	Get(ctx context.Context, id int) (*domain.BookIssue, error)
	Lock(ctx context.Context, id int) (*domain.BookIssue, error)
	List(ctx context.Context, filter domain.IssueFilter) ([]domain.BookIssue, error)
	Update(ctx context.Context, i *domain.BookIssue) error
	CountActive(ctx context.Context, cardID, excludeID int) (int, error)
}

type InvoiceRepo interface {
	CreateInvoice(ctx context.Context, inv *domain.Invoice) error
	GetInvoice(ctx context.Context, id int) (*domain.Invoice, error)
	SetInvoiceStatus(ctx context.Context, id int, status domain.InvoiceStatus) error
	CreateScrap(ctx context.Context, s *domain.Scrap) error
}

type CardRepo interface {
	LockCard(ctx context.Context, id int) (*domain.Card, error)
	GetStudent(ctx context.Context, id int) (*domain.Student, error)
	GetTeacher(ctx context.Context, id int) (*domain.Teacher, error)
}

type CatalogRepo interface {
	GetBook(ctx context.Context, id int) (*domain.Book, error)
	GetReturnDay(ctx context.Context, id int) (*domain.ReturnDay, error)
	SetAvailability(ctx context.Context, bookID int, availability domain.Availability) error
}

var (
	ErrIssueNotFound     = errors.New("book issue not found")
	ErrCardNotFound      = errors.New("card not found")
	ErrBookNotFound      = errors.New("book not found")
	ErrReturnDayNotFound = errors.New("return policy not found")
	ErrInvoiceNotFound   = errors.New("no invoice for this book issue")
)

type Service struct {
	issues    IssueRepo
	invoices  InvoiceRepo
	cards     CardRepo
	catalog   CatalogRepo
	txManager pg.TXManager
	now       func() time.Time
}

func New(issues IssueRepo, invoices InvoiceRepo, cards CardRepo, catalog CatalogRepo, txManager pg.TXManager) *Service {
	return &Service{
		issues:    issues,
		invoices:  invoices,
		cards:     cards,
		catalog:   catalog,
		txManager: txManager,
		now:       time.Now,
	}
}

// Create opens a draft issue for the card and book. It joins the caller's
// transaction when there is one, which lets request confirmation create the
// issue atomically.
func (s *Service) Create(ctx context.Context, in domain.NewIssue) (*domain.BookIssue, error) {
	var issue *domain.BookIssue
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		card, err := s.cards.LockCard(ctx, in.CardID)
		if err != nil {
			return err
		}
		if card == nil {
			return ErrCardNotFound
		}

		book, err := s.catalog.GetBook(ctx, in.BookID)
		if err != nil {
			return err
		}
		if book == nil {
			return ErrBookNotFound
		}

		var policy *domain.ReturnDay
		if in.ReturnDayID != nil {
			policy, err = s.catalog.GetReturnDay(ctx, *in.ReturnDayID)
			if err != nil {
				return err
			}
			if policy == nil {
				return ErrReturnDayNotFound
			}
		}

		issue = &domain.BookIssue{
			BookID:      in.BookID,
			ReturnDayID: in.ReturnDayID,
			DateIssue:   s.now().UTC(),
			State:       domain.IssueDraft,
		}
		if in.DateIssue != nil {
			issue.DateIssue = in.DateIssue.UTC()
		}
		circulation.FillFromCard(issue, *card)
		circulation.Recompute(issue, policy, book.Price, s.now())

		if err := s.checkLimit(ctx, card, issue, domain.IssueDraft); err != nil {
			return err
		}
		return s.issues.Create(ctx, issue)
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("book issue created", zap.String("issue_code", issue.IssueCode), zap.Int("card_id", issue.CardID))
	return issue, nil
}

func (s *Service) Get(ctx context.Context, id int) (*domain.BookIssue, error) {
	issue, err := s.issues.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, ErrIssueNotFound
	}
	if err := s.derive(ctx, issue); err != nil {
		return nil, err
	}
	return issue, nil
}

func (s *Service) List(ctx context.Context, filter domain.IssueFilter) ([]domain.BookIssue, error) {
	issues, err := s.issues.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	for i := range issues {
		if err := s.derive(ctx, &issues[i]); err != nil {
			return nil, err
		}
	}
	return issues, nil
}

// derive refreshes the computed fields of an issue at the current time.
func (s *Service) derive(ctx context.Context, issue *domain.BookIssue) error {
	var policy *domain.ReturnDay
	if issue.ReturnDayID != nil {
		p, err := s.catalog.GetReturnDay(ctx, *issue.ReturnDayID)
		if err != nil {
			return err
		}
		policy = p
	}

	var price float64
	if issue.State == domain.IssueLost {
		book, err := s.catalog.GetBook(ctx, issue.BookID)
		if err != nil {
			return err
		}
		if book != nil {
			price = book.Price
		}
	}

	circulation.Recompute(issue, policy, price, s.now())
	return nil
}

// checkLimit enforces the borrow limit for an issue about to enter target.
// The card row must already be locked.
func (s *Service) checkLimit(ctx context.Context, card *domain.Card, issue *domain.BookIssue, target domain.IssueState) error {
	others, err := s.issues.CountActive(ctx, card.ID, issue.ID)
	if err != nil {
		return err
	}
	active := others
	if circulation.IsActive(target) {
		active++
	}
	if err := circulation.CheckBorrowLimit(card.BookLimit, active, target); err != nil {
		zap.L().Info("borrow limit reached", zap.String("card", card.Code), zap.Int("limit", card.BookLimit))
		return err
	}
	return nil
}

type action func(ctx context.Context, issue *domain.BookIssue) error

// transition runs one workflow action on a locked issue: it validates the
// move, applies the action's side effects, recomputes derived fields and
// stores the result.
func (s *Service) transition(ctx context.Context, id int, to domain.IssueState, apply action) (*domain.BookIssue, error) {
	var issue *domain.BookIssue
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		issue, err = s.issues.Lock(ctx, id)
		if err != nil {
			return err
		}
		if issue == nil {
			return ErrIssueNotFound
		}
		if err := circulation.CheckTransition(issue.State, to); err != nil {
			return err
		}
		if err := s.derive(ctx, issue); err != nil {
			return err
		}

		if apply != nil {
			if err := apply(ctx, issue); err != nil {
				return err
			}
		}
		issue.State = to
		if err := s.derive(ctx, issue); err != nil {
			return err
		}
		return s.issues.Update(ctx, issue)
	})
	if err != nil {
		zap.L().Info("book issue action rejected", zap.Int("id", id), zap.String("to", string(to)), zap.Error(err))
		return nil, err
	}
	zap.L().Info("book issue moved", zap.String("issue_code", issue.IssueCode), zap.String("state", string(issue.State)))
	return issue, nil
}

func (s *Service) lockCard(ctx context.Context, issue *domain.BookIssue) (*domain.Card, error) {
	card, err := s.cards.LockCard(ctx, issue.CardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}
	return card, nil
}

// Issue hands the book out. Cards with an unpaid fine or at their borrow
// limit are refused.
func (s *Service) Issue(ctx context.Context, id int) (*domain.BookIssue, error) {
	return s.transition(ctx, id, domain.IssueIssued, func(ctx context.Context, issue *domain.BookIssue) error {
		card, err := s.lockCard(ctx, issue)
		if err != nil {
			return err
		}

		fined := domain.IssueFine
		open, err := s.issues.List(ctx, domain.IssueFilter{CardID: &card.ID, State: &fined})
		if err != nil {
			return err
		}
		if err := circulation.OutstandingFines(open); err != nil {
			return err
		}

		return s.checkLimit(ctx, card, issue, domain.IssueIssued)
	})
}

// Reissue renews the loan from today.
func (s *Service) Reissue(ctx context.Context, id int) (*domain.BookIssue, error) {
	return s.transition(ctx, id, domain.IssueReissue, func(ctx context.Context, issue *domain.BookIssue) error {
		card, err := s.lockCard(ctx, issue)
		if err != nil {
			return err
		}
		if err := s.checkLimit(ctx, card, issue, domain.IssueReissue); err != nil {
			return err
		}
		issue.DateIssue = s.now().UTC()
		return nil
	})
}

func (s *Service) Return(ctx context.Context, id int) (*domain.BookIssue, error) {
	return s.transition(ctx, id, domain.IssueReturn, func(ctx context.Context, issue *domain.BookIssue) error {
		now := s.now().UTC()
		issue.ActualReturnDate = &now
		return s.catalog.SetAvailability(ctx, issue.BookID, domain.Available)
	})
}

// Lost writes the book off; the lost fine is the catalog price.
func (s *Service) Lost(ctx context.Context, id int) (*domain.BookIssue, error) {
	return s.transition(ctx, id, domain.IssueLost, func(ctx context.Context, issue *domain.BookIssue) error {
		return s.invoices.CreateScrap(ctx, &domain.Scrap{
			BookID:  issue.BookID,
			IssueID: issue.ID,
			Origin:  circulation.LostOrigin(*issue),
		})
	})
}

func (s *Service) Cancel(ctx context.Context, id int) (*domain.BookIssue, error) {
	return s.transition(ctx, id, domain.IssueCancel, nil)
}

// Draft resets a cancelled issue. A draft still counts against the card's
// capacity check, so a full card can't reopen one.
func (s *Service) Draft(ctx context.Context, id int) (*domain.BookIssue, error) {
	return s.transition(ctx, id, domain.IssueDraft, func(ctx context.Context, issue *domain.BookIssue) error {
		card, err := s.lockCard(ctx, issue)
		if err != nil {
			return err
		}
		return s.checkLimit(ctx, card, issue, domain.IssueDraft)
	})
}

// Fine bills the borrower for the lost and late penalties of the issue.
func (s *Service) Fine(ctx context.Context, id int) (*domain.BookIssue, error) {
	return s.transition(ctx, id, domain.IssueFine, func(ctx context.Context, issue *domain.BookIssue) error {
		partner, address, err := s.billTo(ctx, issue)
		if err != nil {
			return err
		}
		inv := &domain.Invoice{
			IssueID:   issue.ID,
			Type:      domain.OutInvoice,
			Partner:   partner,
			Address:   address,
			Reference: issue.IssueCode,
			Status:    domain.InvoiceOpen,
			Lines:     circulation.FineLines(*issue),
		}
		if err := s.invoices.CreateInvoice(ctx, inv); err != nil {
			return err
		}
		issue.InvoiceID = &inv.ID
		return nil
	})
}

func (s *Service) billTo(ctx context.Context, issue *domain.BookIssue) (string, string, error) {
	switch {
	case issue.StudentID != nil:
		student, err := s.cards.GetStudent(ctx, *issue.StudentID)
		if err != nil {
			return "", "", err
		}
		if student == nil || student.ContactAddress == "" {
			return "", "", circulation.ErrMissingAddress
		}
		return student.Name, student.ContactAddress, nil
	case issue.TeacherID != nil:
		teacher, err := s.cards.GetTeacher(ctx, *issue.TeacherID)
		if err != nil {
			return "", "", err
		}
		if teacher == nil || teacher.HomeAddress == "" {
			return "", "", circulation.ErrMissingAddress
		}
		return teacher.Name, teacher.HomeAddress, nil
	}
	return "", "", circulation.ErrMissingAddress
}

// Pay settles the fine invoice of the issue.
func (s *Service) Pay(ctx context.Context, id int) (*domain.BookIssue, error) {
	return s.transition(ctx, id, domain.IssuePaid, func(ctx context.Context, issue *domain.BookIssue) error {
		if issue.InvoiceID == nil {
			return ErrInvoiceNotFound
		}
		return s.invoices.SetInvoiceStatus(ctx, *issue.InvoiceID, domain.InvoicePaid)
	})
}

func (s *Service) Invoice(ctx context.Context, id int) (*domain.Invoice, error) {
	issue, err := s.issues.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if issue == nil {
		return nil, ErrIssueNotFound
	}
	if issue.InvoiceID == nil {
		return nil, ErrInvoiceNotFound
	}
	inv, err := s.invoices.GetInvoice(ctx, *issue.InvoiceID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, ErrInvoiceNotFound
	}
	return inv, nil
}
