package repository

import (
	"context"
	"errors"
	"strings"

	errorvalues "github.com/limbo/serenity/internal/error_values"
	"github.com/limbo/serenity/pkg/entity"
)

const AccountsNamespace = "accounts"

type AccountsRepository struct {
	kv KVStoreI
}

func NewAccountsRepo(store KVStoreI) *AccountsRepository {
	return &AccountsRepository{
		kv: NewNamespaced(store, AccountsNamespace),
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func accountKey(email string) string {
	return "account:" + NormalizeEmail(email)
}

func accountIDKey(id string) string {
	return "account_id:" + id
}

func (ar *AccountsRepository) Create(ctx context.Context, account *entity.Account) error {
	if account == nil {
		return errors.New("account is nil")
	}
	raw, err := EncodeJSON(account)
	if err != nil {
		return errors.New("encoding account error: " + err.Error())
	}
	// the email key is the uniqueness claim, the id index is written only by its winner
	created, err := ar.kv.SetIfAbsent(ctx, accountKey(account.Email), raw)
	if err != nil {
		return errors.New("creating account error: " + err.Error())
	}
	if !created {
		return errorvalues.ErrUserExists
	}
	if err = ar.kv.Set(ctx, accountIDKey(account.ID), NormalizeEmail(account.Email)); err != nil {
		if rmErr := ar.kv.Remove(ctx, accountKey(account.Email)); rmErr != nil {
			err = errors.Join(err, rmErr)
		}
		return errors.New("creating account index error: " + err.Error())
	}
	return nil
}

func (ar *AccountsRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var account entity.Account
	found, err := LoadJSON(ctx, ar.kv, accountKey(email), &account)
	if err != nil {
		return nil, errors.New("searching account by email error: " + err.Error())
	}
	if !found {
		return nil, errorvalues.ErrUserNotFound
	}
	return &account, nil
}

func (ar *AccountsRepository) FindByID(ctx context.Context, id string) (*entity.Account, error) {
	email, err := ar.kv.Get(ctx, accountIDKey(id))
	if err != nil {
		if errors.Is(err, errorvalues.ErrKeyNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching account by id error: " + err.Error())
	}
	return ar.FindByEmail(ctx, email)
}

func (ar *AccountsRepository) Delete(ctx context.Context, id string) error {
	account, err := ar.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err = ar.kv.Remove(ctx, accountKey(account.Email)); err != nil {
		return errors.New("deleting account error: " + err.Error())
	}
	if err = ar.kv.Remove(ctx, accountIDKey(id)); err != nil {
		return errors.New("deleting account index error: " + err.Error())
	}
	return nil
}
