package cardservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/library/internal/circulation"
	"github.com/GlebRadaev/library/internal/domain"
	"github.com/GlebRadaev/library/internal/pg"
	"github.com/GlebRadaev/library/pkg/validate"
	"go.uber.org/zap"
)

//go:generate mockgen -source=cardservice.go -destination=mock_cardservice.go -package=cardservice

type Repo interface {
	CreateStudent(ctx context.Context, s *domain.Student) error
	GetStudent(ctx context.Context, id int) (*domain.Student, error)
	CreateTeacher(ctx context.Context, t *domain.Teacher) error
	GetTeacher(ctx context.Context, id int) (*domain.Teacher, error)
	NextCardSeq(ctx context.Context) (int64, error)
	CreateCard(ctx context.Context, c *domain.Card) error
	GetCard(ctx context.Context, id int) (*domain.Card, error)
	GetCardByCode(ctx context.Context, code string) (*domain.Card, error)
	ListCards(ctx context.Context) ([]domain.Card, error)
}

var (
	ErrCardNotFound    = errors.New("card not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrInvalidHolder   = errors.New("card must reference exactly one student or teacher matching its user type")
	ErrInvalidCardCode = errors.New("card code has an invalid check digit")
)

type Service struct {
	repo      Repo
	txManager pg.TXManager
}

func New(repo Repo, txManager pg.TXManager) *Service {
	return &Service{
		repo:      repo,
		txManager: txManager,
	}
}

func (s *Service) CreateStudent(ctx context.Context, student *domain.Student) error {
	return s.repo.CreateStudent(ctx, student)
}

func (s *Service) GetStudent(ctx context.Context, id int) (*domain.Student, error) {
	student, err := s.repo.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrStudentNotFound
	}
	return student, nil
}

func (s *Service) CreateTeacher(ctx context.Context, teacher *domain.Teacher) error {
	return s.repo.CreateTeacher(ctx, teacher)
}

func (s *Service) GetTeacher(ctx context.Context, id int) (*domain.Teacher, error) {
	teacher, err := s.repo.GetTeacher(ctx, id)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, ErrTeacherNotFound
	}
	return teacher, nil
}

// CreateCard checks the holder, copies the holder's details onto the card
// and assigns the next card number.
func (s *Service) CreateCard(ctx context.Context, card *domain.Card) error {
	switch {
	case card.User == domain.HolderStudent && card.StudentID != nil && card.TeacherID == nil:
	case card.User == domain.HolderTeacher && card.TeacherID != nil && card.StudentID == nil:
	default:
		return ErrInvalidHolder
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.fillHolder(ctx, card); err != nil {
			return err
		}

		seq, err := s.repo.NextCardSeq(ctx)
		if err != nil {
			return err
		}
		code, err := validate.CardCode(seq)
		if err != nil {
			return err
		}
		card.Code = code

		if err := s.repo.CreateCard(ctx, card); err != nil {
			return err
		}
		zap.L().Info("card created", zap.String("code", card.Code), zap.String("holder", card.HolderName))
		return nil
	})
}

func (s *Service) fillHolder(ctx context.Context, card *domain.Card) error {
	if card.User == domain.HolderStudent {
		student, err := s.GetStudent(ctx, *card.StudentID)
		if err != nil {
			return err
		}
		circulation.FillFromStudent(card, *student)
		return nil
	}

	teacher, err := s.GetTeacher(ctx, *card.TeacherID)
	if err != nil {
		return err
	}
	card.HolderName = teacher.Name
	card.Standard = ""
	card.RollNo = 0
	return nil
}

func (s *Service) GetCard(ctx context.Context, id int) (*domain.Card, error) {
	card, err := s.repo.GetCard(ctx, id)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}
	return card, nil
}

func (s *Service) GetCardByCode(ctx context.Context, code string) (*domain.Card, error) {
	if !validate.IsLuhn(code) {
		return nil, ErrInvalidCardCode
	}
	card, err := s.repo.GetCardByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCardNotFound
	}
	return card, nil
}

func (s *Service) ListCards(ctx context.Context) ([]domain.Card, error) {
	return s.repo.ListCards(ctx)
}
