package catalogservice

import (
	"context"
	"errors"

	"github.com/GlebRadaev/library/internal/domain"
	"go.uber.org/zap"
)

//go:generate mockgen -source=catalogservice.go -destination=mock_catalogservice.go -package=catalogservice

type Repo interface {
	CreatePriceCategory(ctx context.Context, c *domain.PriceCategory) error
	ListPriceCategories(ctx context.Context) ([]domain.PriceCategory, error)
	CreateRack(ctx context.Context, rack *domain.Rack) error
	ListRacks(ctx context.Context) ([]domain.Rack, error)
	CreateCollection(ctx context.Context, c *domain.Collection) error
	ListCollections(ctx context.Context) ([]domain.Collection, error)
	CreateReturnDay(ctx context.Context, rd *domain.ReturnDay) error
	ListReturnDays(ctx context.Context) ([]domain.ReturnDay, error)
	CreateAuthor(ctx context.Context, a *domain.Author) error
	ListAuthors(ctx context.Context) ([]domain.Author, error)
	CreateBook(ctx context.Context, b *domain.Book) error
	GetBook(ctx context.Context, id int) (*domain.Book, error)
	ListBooks(ctx context.Context) ([]domain.Book, error)
}

var (
	ErrBookNotFound     = errors.New("book not found")
	ErrInvalidReturnDay = errors.New("return policy needs at least one day and a non-negative fine")
)

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) CreatePriceCategory(ctx context.Context, c *domain.PriceCategory) error {
	return s.repo.CreatePriceCategory(ctx, c)
}

func (s *Service) ListPriceCategories(ctx context.Context) ([]domain.PriceCategory, error) {
	return s.repo.ListPriceCategories(ctx)
}

func (s *Service) CreateRack(ctx context.Context, rack *domain.Rack) error {
	return s.repo.CreateRack(ctx, rack)
}

func (s *Service) ListRacks(ctx context.Context) ([]domain.Rack, error) {
	return s.repo.ListRacks(ctx)
}

func (s *Service) CreateCollection(ctx context.Context, c *domain.Collection) error {
	return s.repo.CreateCollection(ctx, c)
}

func (s *Service) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	return s.repo.ListCollections(ctx)
}

func (s *Service) CreateReturnDay(ctx context.Context, rd *domain.ReturnDay) error {
	if rd.Day < 1 || rd.FineAmount < 0 {
		return ErrInvalidReturnDay
	}
	return s.repo.CreateReturnDay(ctx, rd)
}

func (s *Service) ListReturnDays(ctx context.Context) ([]domain.ReturnDay, error) {
	return s.repo.ListReturnDays(ctx)
}

func (s *Service) CreateAuthor(ctx context.Context, a *domain.Author) error {
	if err := s.repo.CreateAuthor(ctx, a); err != nil {
		zap.L().Info("author not created", zap.String("name", a.Name), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	return s.repo.ListAuthors(ctx)
}

func (s *Service) CreateBook(ctx context.Context, b *domain.Book) error {
	if b.Availability == "" {
		b.Availability = domain.Available
	}
	return s.repo.CreateBook(ctx, b)
}

func (s *Service) GetBook(ctx context.Context, id int) (*domain.Book, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, ErrBookNotFound
	}
	return book, nil
}

func (s *Service) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return s.repo.ListBooks(ctx)
}
