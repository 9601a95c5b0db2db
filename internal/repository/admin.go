package repository

import (
	"context"

	"github.com/longdzai22/KolConnection/internal/common"
	"github.com/longdzai22/KolConnection/internal/store"
	"github.com/longdzai22/KolConnection/pkg/model"
)

// CategoryRepository persists the admin-managed category names.
type CategoryRepository struct {
	kv store.Store
}

func (r *CategoryRepository) List(ctx context.Context) ([]model.Category, error) {
	return loadList[model.Category](ctx, r.kv, KeyCategories)
}

func (r *CategoryRepository) Add(ctx context.Context, c model.Category) error {
	cats, err := r.List(ctx)
	if err != nil {
		return err
	}
	for _, have := range cats {
		if have == c {
			return nil
		}
	}
	cats = append(cats, c)
	return saveList(ctx, r.kv, KeyCategories, cats)
}

func (r *CategoryRepository) Remove(ctx context.Context, c model.Category) error {
	cats, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := cats[:0:0]
	for _, have := range cats {
		if have != c {
			kept = append(kept, have)
		}
	}
	return saveList(ctx, r.kv, KeyCategories, kept)
}

// PackageRepository persists the admin-managed service packages.
type PackageRepository struct {
	kv store.Store
}

func (r *PackageRepository) List(ctx context.Context) ([]model.Package, error) {
	return loadList[model.Package](ctx, r.kv, KeyPackages)
}

func (r *PackageRepository) Add(ctx context.Context, p model.Package) error {
	packs, err := r.List(ctx)
	if err != nil {
		return err
	}
	packs = append(packs, p)
	return saveList(ctx, r.kv, KeyPackages, packs)
}

func (r *PackageRepository) Remove(ctx context.Context, id string) error {
	packs, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := packs[:0:0]
	removed := false
	for _, p := range packs {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return common.ErrNotFound
	}
	return saveList(ctx, r.kv, KeyPackages, kept)
}

// BookingRepository persists the billing records the admin dashboard
// aggregates.
type BookingRepository struct {
	kv store.Store
}

func (r *BookingRepository) List(ctx context.Context) ([]model.Booking, error) {
	return loadList[model.Booking](ctx, r.kv, KeyBookings)
}

func (r *BookingRepository) Add(ctx context.Context, b model.Booking) error {
	bookings, err := r.List(ctx)
	if err != nil {
		return err
	}
	bookings = append(bookings, b)
	return saveList(ctx, r.kv, KeyBookings, bookings)
}
