package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/Domenick1991/goglobe/internal/auth"
	"github.com/Domenick1991/goglobe/internal/domain"
	"github.com/Domenick1991/goglobe/internal/repository"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid user input")
)

const minPasswordLength = 8

type UserUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type TokenIssuer interface {
	Issue(user *domain.User) (string, time.Time, error)
}

type RegisterInput struct {
	Name      string
	Surname   string
	Email     string
	Password  string
	BirthDate *time.Time
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.User
}

type UserService struct {
	repo   repository.UserRepository
	tokens TokenIssuer
	log    logrus.FieldLogger
}

func NewUserService(repo repository.UserRepository, tokens TokenIssuer, log logrus.FieldLogger) *UserService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &UserService{repo: repo, tokens: tokens, log: log}
}

// Register creates a Client. Administrators are provisioned out of band.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	email := strings.TrimSpace(in.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: email is not valid", ErrInvalidInput)
	}
	if len(in.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Surname) == "" {
		return nil, fmt.Errorf("%w: name and surname are required", ErrInvalidInput)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         in.Name,
		Surname:      in.Surname,
		Email:        email,
		PasswordHash: hash,
		Kind:         domain.UserKindClient,
		BirthDate:    in.BirthDate,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	s.log.WithField("user_id", user.ID).Info("client registered")
	return user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, expires, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: expires, User: user}, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return u, err
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

var _ UserUseCase = (*UserService)(nil)
