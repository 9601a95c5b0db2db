// Package repository provides CRUD over the domain collections. Each
// collection is one JSON array under a well-known store key; every mutation
// re-reads the collection immediately before writing so two back-to-back
// operations against different keys never clobber each other through a stale
// snapshot.
package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/longdzai22/KolConnection/internal/store"
)

// Store keys for the persisted collections.
const (
	KeyApplications = "tcv_applications"
	KeyOffers       = "tcv_offers"
	KeyLocalJobs    = "tcv_jobs_local"
	KeyUsers        = "tcv_users"
	KeyCategories   = "tcv_categories"
	KeyPackages     = "tcv_packages"
	KeyBookings     = "tcv_bookings"
	KeyCVs          = "tcv_cv"
	KeyPDFs         = "tcv_cv_pdf_map"
	KeySession      = "tcv_session"
)

// Repository aggregates the entity repositories over one store.
type Repository struct {
	Applications *ApplicationRepository
	Offers       *OfferRepository
	Jobs         *JobRepository
	Users        *UserRepository
	Categories   *CategoryRepository
	Packages     *PackageRepository
	Bookings     *BookingRepository
}

func New(kv store.Store) *Repository {
	apps := &ApplicationRepository{kv: kv}
	return &Repository{
		Applications: apps,
		Offers:       &OfferRepository{kv: kv, apps: apps},
		Jobs:         &JobRepository{kv: kv},
		Users:        &UserRepository{kv: kv},
		Categories:   &CategoryRepository{kv: kv},
		Packages:     &PackageRepository{kv: kv},
		Bookings:     &BookingRepository{kv: kv},
	}
}

// loadList reads the JSON array stored under key. A missing key yields an
// empty list.
func loadList[T any](ctx context.Context, kv store.Store, key string) ([]T, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if raw == nil {
		return nil, nil
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return list, nil
}

func saveList[T any](ctx context.Context, kv store.Store, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func loadMap[V any](ctx context.Context, kv store.Store, key string) (map[string]V, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	m := map[string]V{}
	if raw == nil {
		return m, nil
	}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return m, nil
}

func saveMap[V any](ctx context.Context, kv store.Store, key string, m map[string]V) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
