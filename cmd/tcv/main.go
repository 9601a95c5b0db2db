package main

import (
	"context"
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/longdzai22/KolConnection/internal/admin"
	"github.com/longdzai22/KolConnection/internal/catalog"
	"github.com/longdzai22/KolConnection/internal/config"
	"github.com/longdzai22/KolConnection/internal/identity"
	"github.com/longdzai22/KolConnection/internal/logger"
	"github.com/longdzai22/KolConnection/internal/repository"
	"github.com/longdzai22/KolConnection/internal/store"
	"github.com/longdzai22/KolConnection/internal/workflow"
)

type application struct {
	Logger     *zap.Logger
	Config     *config.Config
	Repository *repository.Repository
	Engine     *workflow.Engine
	Catalog    *catalog.Service
	Identity   *identity.Service
	Admin      *admin.Service
}

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()
	sugar := log.Sugar()
	sugar.Infof("config loaded, env=%s store=%s", cfg.Env, cfg.Store.Backend)

	kv, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		sugar.Fatal(err)
	}
	defer closeStore()

	var dataset []byte
	if cfg.Jobs.Dataset != "" {
		dataset, err = os.ReadFile(cfg.Jobs.Dataset)
		if err != nil {
			sugar.Fatalf("read jobs dataset: %v", err)
		}
	}

	repo := repository.New(kv)
	cat, err := catalog.NewService(repo, dataset)
	if err != nil {
		sugar.Fatal(err)
	}

	app := &application{
		Logger:     log,
		Config:     cfg,
		Repository: repo,
		Engine:     workflow.NewEngine(repo),
		Catalog:    cat,
		Identity:   identity.NewService(repo),
		Admin:      admin.NewService(repo),
	}

	root := &cobra.Command{
		Use:           "tcv",
		Short:         "TCV job board over a key-value store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(app.seedCmd(), app.demoCmd(), app.jobsCmd())

	if err := root.ExecuteContext(ctx); err != nil {
		sugar.Fatal(err)
	}
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return store.NewMemory(), func() {}, nil
	case config.BackendFile:
		f := store.NewFile(cfg.Store.File)
		if err := f.EnsureDir(); err != nil {
			return nil, nil, fmt.Errorf("prepare store file: %w", err)
		}
		return f, func() {}, nil
	case config.BackendRedis:
		r := store.NewRedis(cfg.Store.RedisAddr, cfg.Store.RedisPassword, cfg.Store.RedisDB)
		if err := r.Ping(ctx); err != nil {
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return r, func() { r.Close() }, nil
	case config.BackendPostgres:
		p, err := store.NewPostgres(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return p, func() { p.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
