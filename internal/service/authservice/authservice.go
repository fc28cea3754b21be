package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/GlebRadaev/library/internal/domain"
	"github.com/GlebRadaev/library/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

var (
	ErrLoginTaken         = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const tokenTTL = 8 * time.Hour

type Service struct {
	userRepo    Repo
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		userRepo:    repo,
		hashService: hashService,
		jwtService:  jwtService,
	}
}

func (s *Service) Register(ctx context.Context, login, password string) (*domain.User, error) {
	existingUser, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil {
		zap.L().Error("can't find staff user", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("staff user already exists", zap.String("login", login))
		return nil, ErrLoginTaken
	}
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}
	user, err := s.userRepo.Create(ctx, &domain.User{
		Login:        login,
		PasswordHash: hashedPassword,
	})
	if err != nil {
		zap.L().Error("can't create staff user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("staff user registered", zap.String("login", login))
	return user, nil
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByLogin(ctx, login)
	if err != nil || user == nil {
		zap.L().Info("invalid credentials", zap.String("login", login), zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("staff user authenticated", zap.String("login", login))
	return user, nil
}

func (s *Service) GenerateToken(userID int) (string, error) {
	token, err := s.jwtService.GenerateJWT(userID, time.Now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
