package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/longdzai22/KolConnection/internal/common"
	"github.com/longdzai22/KolConnection/internal/store"
	"github.com/longdzai22/KolConnection/pkg/model"
)

// UserRepository persists accounts plus the per-user state that lives next to
// them: the signed-in session, CV snapshots and uploaded CV PDFs.
type UserRepository struct {
	kv store.Store
}

func (r *UserRepository) load(ctx context.Context) ([]model.User, error) {
	return loadList[model.User](ctx, r.kv, KeyUsers)
}

func (r *UserRepository) save(ctx context.Context, users []model.User) error {
	return saveList(ctx, r.kv, KeyUsers, users)
}

// List returns all accounts.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	return r.load(ctx)
}

// FindByEmail matches case-insensitively.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	users, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			u := users[i]
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

// Create appends a new account; the email must be unused.
func (r *UserRepository) Create(ctx context.Context, user model.User) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, user.Email) {
			return fmt.Errorf("user %s: %w", user.Email, common.ErrDuplicateUser)
		}
	}
	users = append(users, user)
	return r.save(ctx, users)
}

// Update rewrites the account with the same id.
func (r *UserRepository) Update(ctx context.Context, user model.User) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			return r.save(ctx, users)
		}
	}
	return common.ErrNotFound
}

// Delete removes the account with the given id.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	users, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := users[:0:0]
	removed := false
	for _, u := range users {
		if u.ID == id {
			removed = true
			continue
		}
		kept = append(kept, u)
	}
	if !removed {
		return common.ErrNotFound
	}
	return r.save(ctx, kept)
}

// ToggleLock flips the locked flag and returns the new state.
func (r *UserRepository) ToggleLock(ctx context.Context, id string) (bool, error) {
	users, err := r.load(ctx)
	if err != nil {
		return false, err
	}
	for i := range users {
		if users[i].ID == id {
			users[i].Locked = !users[i].Locked
			if err := r.save(ctx, users); err != nil {
				return false, err
			}
			return users[i].Locked, nil
		}
	}
	return false, common.ErrNotFound
}

// Session returns the signed-in user, or nil when nobody is signed in.
func (r *UserRepository) Session(ctx context.Context) (*model.Session, error) {
	raw, err := r.kv.Get(ctx, KeySession)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", KeySession, err)
	}
	if raw == nil {
		return nil, nil
	}
	var s model.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode %s: %w", KeySession, err)
	}
	return &s, nil
}

func (r *UserRepository) SetSession(ctx context.Context, s model.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode %s: %w", KeySession, err)
	}
	if err := r.kv.Set(ctx, KeySession, raw); err != nil {
		return fmt.Errorf("save %s: %w", KeySession, err)
	}
	return nil
}

func (r *UserRepository) ClearSession(ctx context.Context) error {
	return r.kv.Remove(ctx, KeySession)
}

// CV returns the stored CV snapshot for email, or nil.
func (r *UserRepository) CV(ctx context.Context, email string) (*model.CV, error) {
	cvs, err := loadMap[model.CV](ctx, r.kv, KeyCVs)
	if err != nil {
		return nil, err
	}
	cv, ok := cvs[strings.ToLower(email)]
	if !ok {
		return nil, nil
	}
	return &cv, nil
}

func (r *UserRepository) SaveCV(ctx context.Context, email string, cv model.CV) error {
	cvs, err := loadMap[model.CV](ctx, r.kv, KeyCVs)
	if err != nil {
		return err
	}
	cvs[strings.ToLower(email)] = cv
	return saveMap(ctx, r.kv, KeyCVs, cvs)
}

// PDF returns the stored CV PDF data URL for email, or "".
func (r *UserRepository) PDF(ctx context.Context, email string) (string, error) {
	pdfs, err := loadMap[string](ctx, r.kv, KeyPDFs)
	if err != nil {
		return "", err
	}
	return pdfs[strings.ToLower(email)], nil
}

func (r *UserRepository) SavePDF(ctx context.Context, email, dataURL string) error {
	pdfs, err := loadMap[string](ctx, r.kv, KeyPDFs)
	if err != nil {
		return err
	}
	pdfs[strings.ToLower(email)] = dataURL
	return saveMap(ctx, r.kv, KeyPDFs, pdfs)
}

func (r *UserRepository) RemovePDF(ctx context.Context, email string) error {
	pdfs, err := loadMap[string](ctx, r.kv, KeyPDFs)
	if err != nil {
		return err
	}
	delete(pdfs, strings.ToLower(email))
	return saveMap(ctx, r.kv, KeyPDFs, pdfs)
}
