// Package identity manages accounts, the signed-in session and the seeker's
// CV material. The workflow engine only ever reads the session; it never
// mutates identity state.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/longdzai22/KolConnection/internal/common"
	"github.com/longdzai22/KolConnection/internal/repository"
	"github.com/longdzai22/KolConnection/pkg"
	"github.com/longdzai22/KolConnection/pkg/model"
)

// MaxPDFSize caps an uploaded CV document at 2 MB of base64 data URL.
const MaxPDFSize = 2 * 1024 * 1024

var (
	ErrInvalidCredentials = errors.New("email or password is incorrect")
	ErrLocked             = errors.New("account is locked")
	ErrNotSignedIn        = errors.New("nobody is signed in")
	ErrPDFTooLarge        = errors.New("cv pdf exceeds the 2MB limit")
	ErrNotPDF             = errors.New("cv upload must be a pdf data url")
)

type Service struct {
	users *repository.UserRepository
}

func NewService(repo *repository.Repository) *Service {
	return &Service{users: repo.Users}
}

// Register creates an account. Admins are seeded, never registered.
func (s *Service) Register(ctx context.Context, email, name, password string, role model.Role) (model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return model.User{}, fmt.Errorf("register: invalid email %q", email)
	}
	if password == "" {
		return model.User{}, fmt.Errorf("register: password is required")
	}
	if role != model.RoleSeeker && role != model.RolePoster {
		return model.User{}, fmt.Errorf("register: role must be seeker or poster")
	}
	if name == "" {
		name = pkg.EmailName(email)
	}
	hash, err := pkg.HashPassword(password)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}
	user := model.User{
		ID:       uuid.NewString(),
		Email:    email,
		Name:     name,
		Role:     role,
		Password: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// Login verifies the password and stores the session. Locked accounts cannot
// sign in.
func (s *Service) Login(ctx context.Context, email, password string) (model.Session, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return model.Session{}, ErrInvalidCredentials
		}
		return model.Session{}, err
	}
	if user.Locked {
		return model.Session{}, ErrLocked
	}
	if err := pkg.ComparePassword(user.Password, password); err != nil {
		return model.Session{}, ErrInvalidCredentials
	}
	sess := model.Session{Email: user.Email, Role: user.Role, Name: user.Name}
	if sess.Name == "" {
		sess.Name = pkg.EmailName(user.Email)
	}
	if err := s.users.SetSession(ctx, sess); err != nil {
		return model.Session{}, err
	}
	return sess, nil
}

// Logout clears the session. CVs and uploads stay.
func (s *Service) Logout(ctx context.Context) error {
	return s.users.ClearSession(ctx)
}

// Current returns the signed-in user, or nil when nobody is.
func (s *Service) Current(ctx context.Context) (*model.Session, error) {
	return s.users.Session(ctx)
}

func (s *Service) requireSession(ctx context.Context) (*model.Session, error) {
	sess, err := s.users.Session(ctx)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrNotSignedIn
	}
	return sess, nil
}

// SaveCV stores the signed-in seeker's structured CV.
func (s *Service) SaveCV(ctx context.Context, cv model.CV) error {
	sess, err := s.requireSession(ctx)
	if err != nil {
		return err
	}
	return s.users.SaveCV(ctx, sess.Email, cv)
}

// CV returns the stored CV snapshot for email, or nil.
func (s *Service) CV(ctx context.Context, email string) (*model.CV, error) {
	return s.users.CV(ctx, email)
}

// SavePDF stores the signed-in user's CV document as a data URL.
func (s *Service) SavePDF(ctx context.Context, dataURL string) error {
	sess, err := s.requireSession(ctx)
	if err != nil {
		return err
	}
	if !strings.HasPrefix(dataURL, "data:application/pdf") {
		return ErrNotPDF
	}
	if len(dataURL) > MaxPDFSize {
		return ErrPDFTooLarge
	}
	return s.users.SavePDF(ctx, sess.Email, dataURL)
}

// PDF returns the stored CV document for email, or "".
func (s *Service) PDF(ctx context.Context, email string) (string, error) {
	return s.users.PDF(ctx, email)
}

// RemovePDF discards the signed-in user's CV document.
func (s *Service) RemovePDF(ctx context.Context) error {
	sess, err := s.requireSession(ctx)
	if err != nil {
		return err
	}
	return s.users.RemovePDF(ctx, sess.Email)
}
