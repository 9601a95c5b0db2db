// Package admin implements the management screen's operations: accounts,
// categories, service packages and booking stats.
package admin

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/longdzai22/KolConnection/internal/repository"
	"github.com/longdzai22/KolConnection/pkg"
	"github.com/longdzai22/KolConnection/pkg/model"
)

type Service struct {
	users      *repository.UserRepository
	categories *repository.CategoryRepository
	packages   *repository.PackageRepository
	bookings   *repository.BookingRepository
}

func NewService(repo *repository.Repository) *Service {
	return &Service{
		users:      repo.Users,
		categories: repo.Categories,
		packages:   repo.Packages,
		bookings:   repo.Bookings,
	}
}

// Users lists every account.
func (s *Service) Users(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

// AddUser creates an account without a password; such accounts cannot sign in
// until one is set.
func (s *Service) AddUser(ctx context.Context, email, name string, role model.Role) (model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return model.User{}, fmt.Errorf("add user: email is required")
	}
	if name == "" {
		name = pkg.EmailName(email)
	}
	user := model.User{ID: uuid.NewString(), Email: email, Name: name, Role: role}
	if err := s.users.Create(ctx, user); err != nil {
		return model.User{}, err
	}
	return user, nil
}

// UpdateUser rewrites name and role; email is immutable.
func (s *Service) UpdateUser(ctx context.Context, id, name string, role model.Role) error {
	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.ID == id {
			u.Name = name
			u.Role = role
			return s.users.Update(ctx, u)
		}
	}
	return fmt.Errorf("update user %s: not found", id)
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

func (s *Service) ToggleLock(ctx context.Context, id string) (bool, error) {
	return s.users.ToggleLock(ctx, id)
}

func (s *Service) Categories(ctx context.Context) ([]model.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) AddCategory(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("add category: name is required")
	}
	return s.categories.Add(ctx, model.Category(name))
}

func (s *Service) RemoveCategory(ctx context.Context, name string) error {
	return s.categories.Remove(ctx, model.Category(name))
}

func (s *Service) Packages(ctx context.Context) ([]model.Package, error) {
	return s.packages.List(ctx)
}

func (s *Service) AddPackage(ctx context.Context, name string, price float64) (model.Package, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Package{}, fmt.Errorf("add package: name is required")
	}
	p := model.Package{ID: uuid.NewString(), Name: name, Price: price}
	if err := s.packages.Add(ctx, p); err != nil {
		return model.Package{}, err
	}
	return p, nil
}

func (s *Service) RemovePackage(ctx context.Context, id string) error {
	return s.packages.Remove(ctx, id)
}

// Stats is the dashboard summary over bookings.
type Stats struct {
	Bookings      int
	AverageAmount int
	SuccessRate   int
}

// BookingStats aggregates count, rounded average amount and success
// percentage.
func (s *Service) BookingStats(ctx context.Context) (Stats, error) {
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{Bookings: len(bookings)}
	if len(bookings) == 0 {
		return st, nil
	}
	var total float64
	success := 0
	for _, b := range bookings {
		total += b.Amount
		if b.Status == model.BookingSuccess {
			success++
		}
	}
	st.AverageAmount = int(math.Round(total / float64(len(bookings))))
	st.SuccessRate = int(math.Round(100 * float64(success) / float64(len(bookings))))
	return st, nil
}

// Seed writes the demo fixtures for any collection that is still empty, as
// the admin screen did on first load.
func (s *Service) Seed(ctx context.Context) error {
	users, err := s.users.List(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		seedUsers := []model.User{
			{ID: "b1", Role: model.RolePoster, Email: "brand@ravi.vn", Name: "RAVI"},
			{ID: "k1", Role: model.RoleSeeker, Email: "koc1@kol.local", Name: "KOC A"},
		}
		for _, u := range seedUsers {
			if err := s.users.Create(ctx, u); err != nil {
				return err
			}
		}
	}
	cats, err := s.categories.List(ctx)
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		for _, c := range []string{"marketing", "sales", "it"} {
			if err := s.categories.Add(ctx, model.Category(c)); err != nil {
				return err
			}
		}
	}
	packs, err := s.packages.List(ctx)
	if err != nil {
		return err
	}
	if len(packs) == 0 {
		seedPacks := []model.Package{
			{ID: "p1", Name: "Basic", Price: 100},
			{ID: "p2", Name: "Pro", Price: 300},
		}
		for _, p := range seedPacks {
			if err := s.packages.Add(ctx, p); err != nil {
				return err
			}
		}
	}
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		now := time.Now().UnixMilli()
		seedBookings := []model.Booking{
			{ID: "bk1", Amount: 150, Status: model.BookingSuccess, Date: now - 24*time.Hour.Milliseconds()},
			{ID: "bk2", Amount: 250, Status: model.BookingPending, Date: now},
		}
		for _, b := range seedBookings {
			if err := s.bookings.Add(ctx, b); err != nil {
				return err
			}
		}
	}
	return nil
}
