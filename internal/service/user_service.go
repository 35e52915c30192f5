package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/internal/repository"
	"github.com/limbo/serenity/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

const guestIDPrefix = "guest_"

type UserService struct {
	repo repository.AccountsRepositoryI
	now  Clock
}

func NewUserService(accountsRepo repository.AccountsRepositoryI, now Clock) *UserService {
	if now == nil {
		now = time.Now
	}
	return &UserService{
		repo: accountsRepo,
		now:  now,
	}
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (us *UserService) SignUp(ctx context.Context, req *SignUpRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	account := &entity.Account{
		User: entity.User{
			ID:    uuid.Must(uuid.NewV7()).String(),
			Email: repository.NormalizeEmail(req.Email),
			Name:  strings.TrimSpace(req.Name),
		},
		PasswordHash: passwordHash,
		CreatedAt:    us.now(),
	}
	err = us.repo.Create(ctx, account)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	user := account.User
	return &user, nil
}

func (us *UserService) Login(ctx context.Context, req *LoginRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	account, err := us.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	user := account.User
	return &user, nil
}

// Guest makes a new throwaway identity. Guests have no account record.
func (us *UserService) Guest() *entity.User {
	return GuestUser(guestIDPrefix + uuid.NewString())
}

// GuestUser describes the guest identity with the given id.
func GuestUser(id string) *entity.User {
	return &entity.User{
		ID:      id,
		Email:   guestEmail,
		Name:    guestName,
		IsGuest: true,
	}
}

func IsGuestID(id string) bool {
	return strings.HasPrefix(id, guestIDPrefix)
}

func (us *UserService) GetByID(ctx context.Context, id string) (*entity.User, error) {
	account, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	user := account.User
	return &user, nil
}

func (us *UserService) DeleteAccount(ctx context.Context, id, password string) error {
	account, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository searching error: " + err.Error())
	}
	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password))
	if err != nil {
		return errorvalues.ErrWrongCredentials
	}
	err = us.repo.Delete(ctx, account.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}
