package daemon

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/matheus3301/wchat/internal/api"
	"github.com/matheus3301/wchat/internal/bus"
	"github.com/matheus3301/wchat/internal/config"
	"github.com/matheus3301/wchat/internal/files"
	"github.com/matheus3301/wchat/internal/identity"
	"github.com/matheus3301/wchat/internal/lock"
	"github.com/matheus3301/wchat/internal/logging"
	"github.com/matheus3301/wchat/internal/profile"
	"github.com/matheus3301/wchat/internal/store"
)

// Sign-in throttling per email.
const (
	signInPerMinute = 10
	signInBurst     = 5
)

// Params holds the resolved profile configuration passed to the fx module.
type Params struct {
	Profile    string
	SocketPath string // optional override for testing; empty = use default
	Config     *config.Config
}

// Module returns the fx module for the daemon, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("daemon",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBus,
			provideLock,
			provideStore,
			provideIdentity,
			provideBlobs,
			provideFiles,
			provideServices,
			NewServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig(p Params) (*config.Config, error) {
	if p.Config != nil {
		cfg := *p.Config
		cfg.ApplyDefaults()
		return &cfg, nil
	}
	return config.Resolve(profile.ConfigPath())
}

func provideLogger(p Params, cfg *config.Config) (*zap.Logger, error) {
	return logging.New(profile.LogPath(p.Profile), p.Profile, logging.Options{Level: cfg.LogLevel})
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideLock(p Params, logger *zap.Logger) (*lock.Lock, error) {
	if err := profile.EnsureDir(p.Profile); err != nil {
		return nil, err
	}
	logger.Info("acquiring profile lock", zap.String("profile", p.Profile))
	l, err := lock.Acquire(profile.Dir(p.Profile))
	if err != nil {
		return nil, err
	}
	logger.Info("profile lock acquired")
	return l, nil
}

// provideStore takes the lock so the database is only opened by its holder.
func provideStore(p Params, _ *lock.Lock, logger *zap.Logger) (*store.DB, error) {
	dbPath := profile.AppDBPath(p.Profile)
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}
	result, err := db.Migrate()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if result.Changed {
		logger.Info("migrations applied", zap.Uint("version", result.Version))
	} else {
		logger.Info("migrations up to date", zap.Uint("version", result.Version))
	}
	if err := db.CheckFeedIndexes(); err != nil {
		logger.Warn("feed index check failed", zap.Error(err))
	}
	logger.Info("store initialized", zap.String("path", dbPath))
	return db, nil
}

func provideIdentity(p Params, db *store.DB, logger *zap.Logger) (*identity.Service, error) {
	key, err := identity.LoadOrCreateKey(profile.KeyPath(p.Profile))
	if err != nil {
		return nil, err
	}
	tokens := identity.NewTokens(key, identity.DefaultTokenTTL)
	limiter := identity.NewSignInLimiter(signInPerMinute, signInBurst)
	return identity.NewService(db, tokens, limiter, logger.Named("identity")), nil
}

func provideBlobs(p Params, cfg *config.Config, logger *zap.Logger) (files.Blobs, error) {
	switch cfg.Files.Backend {
	case "s3":
		s3cfg := files.S3Config{
			Bucket:     cfg.Files.S3.Bucket,
			Region:     cfg.Files.S3.Region,
			Prefix:     cfg.Files.S3.Prefix,
			Endpoint:   cfg.Files.S3.Endpoint,
			PresignTTL: cfg.PresignTTL(),
		}
		if s3cfg.Bucket == "" {
			return nil, fmt.Errorf("files.s3.bucket is required for the s3 backend")
		}
		logger.Info("using s3 blob backend", zap.String("bucket", s3cfg.Bucket), zap.String("region", s3cfg.Region))
		return files.NewS3(context.Background(), s3cfg)
	case "disk", "":
		return files.NewDisk(profile.FilesDir(p.Profile))
	default:
		return nil, fmt.Errorf("unknown files backend %q", cfg.Files.Backend)
	}
}

func provideFiles(blobs files.Blobs, db *store.DB, cfg *config.Config, logger *zap.Logger) *files.Service {
	return files.NewService(blobs, db, cfg.MaxAttachmentBytes, logger.Named("files"))
}

func provideServices(ids *identity.Service, db *store.DB, fs *files.Service, b *bus.Bus, logger *zap.Logger) api.Services {
	return api.Services{
		Identity:  api.NewIdentityService(ids, b, logger),
		Directory: api.NewDirectoryService(db, b),
		Messages:  api.NewMessageService(db, b, logger),
		Files:     api.NewFileService(fs),
	}
}

func registerLifecycle(lc fx.Lifecycle, srv *Server, b *bus.Bus, lk *lock.Lock, db *store.DB, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				if err := srv.Start(); err != nil {
					logger.Error("gRPC server error", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Feed and directory watchers only return once their channel closes.
			b.Close()
			srv.Stop(ctx)
			if err := db.Close(); err != nil {
				logger.Warn("error closing store", zap.Error(err))
			}
			if err := lk.Release(); err != nil {
				logger.Warn("error releasing lock", zap.Error(err))
			}
			logger.Info("daemon stopped")
			_ = logger.Sync()
			return nil
		},
	})
}
