package docstore

import (
	"context"
	"log/slog"
	"os"

	"smartfit/config"
	"smartfit/internal/domain/constants"
	"smartfit/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// StoreParams holds dependencies for NewStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	App    *firebase.App `optional:"true"`
	Feed   *ChangeFeed
}

// NewStore creates the configured Store, decorated with the change feed.
func NewStore(params StoreParams) (Store, error) {
	cfg := params.Config.Store
	logger := params.Logger

	var (
		store Store
		err   error
	)

	switch cfg.Provider {
	case constants.StoreProviderMemory:
		store, err = newMemoryStore(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		logger.Info("Using in-memory document store", slog.String("seed_file", cfg.SeedFile))

	case constants.StoreProviderFirebase:
		var databaseURL string
		if params.Config.Firebase != nil {
			databaseURL = params.Config.Firebase.DatabaseURL
		}
		store, err = NewFirebaseStore(params.Ctx, params.App, databaseURL, cfg.RootPath, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Firebase Realtime Database store", slog.String("root", cfg.RootPath))

	default:
		return nil, errors.Errorf("unknown store provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing document store")

			return store.Close()
		},
	})

	return WithChangeFeed(store, params.Feed), nil
}

func newMemoryStore(seedFile string) (Store, error) {
	if seedFile == "" {
		return NewMemoryStore(), nil
	}

	data, err := os.ReadFile(seedFile)
	if err != nil {
		return nil, errors.Wrapf(err, "read seed file %s", seedFile)
	}

	return NewMemoryStoreFromJSON(data)
}

// WatcherParams holds dependencies for ProvideWatcher, injected by Fx
type WatcherParams struct {
	fx.In

	Store  Store
	Feed   *ChangeFeed
	Config *config.Config
	Logger *slog.Logger
}

// ProvideWatcher creates the Watcher using the configured poll interval.
func ProvideWatcher(params WatcherParams) *Watcher {
	return NewWatcher(params.Store, params.Feed, params.Config.Store.PollInterval, params.Logger)
}

// Module provides the document store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewChangeFeed,
		NewStore,
		ProvideWatcher,
	),
)
