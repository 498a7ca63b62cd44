package app

import (
	"context"
	"io"

	"github.com/textact/textact/internal/application/doctor"
	"github.com/textact/textact/internal/application/run"
	"github.com/textact/textact/internal/domain"
	"github.com/textact/textact/internal/infrastructure/ai"
	"github.com/textact/textact/internal/infrastructure/cache"
	"github.com/textact/textact/internal/infrastructure/clipboard"
	"github.com/textact/textact/internal/infrastructure/config"
	"github.com/textact/textact/internal/infrastructure/execlog"
	"github.com/textact/textact/internal/infrastructure/keystore"
	"github.com/textact/textact/internal/infrastructure/plugins"
	"github.com/textact/textact/internal/pkg/logger"
	"github.com/textact/textact/internal/ports"
	"github.com/textact/textact/internal/stats"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	RunService     *run.Service
	DoctorService  *doctor.Service
	StatsEngine    *stats.Engine
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	LogStore       ports.ExecutionLogStore
	CacheStore     *cache.FileCache
	Keys           ports.KeyStore
	Plugins        ports.PluginRegistry
	Clipboard      ports.Clipboard
	Logger         ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.NewStd(verbose)
	keys := keystore.NewKeyring()
	factory := ai.NewFactory(keys)
	registry := plugins.NewRegistry()
	cacheStore := cache.NewFileCache()
	clip := clipboard.NewSystem()

	logStore := openLogStore(cfg.GetLogBackend(), log)
	engine := stats.NewEngine(logStore, log)

	runService := &run.Service{
		ConfigProvider:  cfgLoader,
		ProviderFactory: factory,
		Plugins:         registry,
		Cache:           cacheStore,
		Stats:           engine,
		Clipboard:       clip,
		Logger:          log,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Factory:        factory,
		LogStore:       logStore,
		Keys:           keys,
		Clipboard:      clip,
	}

	return &Container{
		RunService:     runService,
		DoctorService:  doctorService,
		StatsEngine:    engine,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		LogStore:       logStore,
		CacheStore:     cacheStore,
		Keys:           keys,
		Plugins:        registry,
		Clipboard:      clip,
		Logger:         log,
	}, nil
}

// openLogStore selects the execution log backend from preferences. A sqlite
// database that cannot be opened degrades to the JSON file store so the CLI
// stays usable.
func openLogStore(backend string, log ports.Logger) ports.ExecutionLogStore {
	if backend == domain.LogBackendSQLite {
		store, err := execlog.OpenSQLite()
		if err == nil {
			return store
		}
		log.Warn("sqlite execution log unavailable, using file store", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return execlog.NewFileStore()
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if closer, ok := c.LogStore.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
