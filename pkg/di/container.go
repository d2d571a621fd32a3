package di

import (
	"context"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-gym-records/cache"
	"github.com/goliatone/go-gym-records/gym"
	"github.com/goliatone/go-gym-records/internal/config"
	"github.com/goliatone/go-gym-records/internal/database"
	"github.com/goliatone/go-gym-records/logging"
	"github.com/goliatone/go-gym-records/logging/logruslog"
	"github.com/goliatone/go-gym-records/logging/zaplog"
	"github.com/goliatone/go-gym-records/records"
	"github.com/goliatone/go-gym-records/search"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Container wires configuration, storage, the search cache and the write paths.
// Every store it hands out invalidates the search cache after a successful write.
type Container struct {
	config        config.Config
	logger        logging.Logger
	db            *bun.DB
	ownsDB        bool
	keySerializer cache.KeySerializer
	filters       cache.Service[[]search.Row]
	manager       *search.Manager
	service       *search.Service

	admins   records.Store[*gym.Admin]
	trainers records.Store[*gym.Trainer]
	members  records.Store[*gym.Member]

	closers []func() error
}

// Option customizes a Container.
type Option func(*Container)

// WithDB uses db instead of opening the configured database. The caller keeps
// ownership and Close leaves it open.
func WithDB(db *bun.DB) Option {
	return func(c *Container) {
		c.db = db
	}
}

// WithLogger overrides the logger built from the log configuration.
func WithLogger(l logging.Logger) Option {
	return func(c *Container) {
		c.logger = l
	}
}

// NewContainer builds every component from cfg.
func NewContainer(ctx context.Context, cfg config.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{config: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		logger, sync, err := NewLogger(cfg.Log)
		if err != nil {
			return nil, err
		}
		c.logger = logger
		c.closers = append(c.closers, sync)
	}

	if c.db == nil {
		db, err := database.Open(ctx, cfg.Database.Driver, cfg.Database.Path)
		if err != nil {
			return nil, err
		}
		c.db = db
		c.ownsDB = true
	}

	if err := database.CreateTables(ctx, c.db); err != nil {
		c.Close()
		return nil, err
	}

	filters, err := cache.NewService[[]search.Row](cfg.Cache)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.filters = filters
	c.closers = append(c.closers, func() error { return cache.Close(filters) })

	admins := records.NewBunStore[*gym.Admin](
		repository.NewRepository[*gym.Admin](c.db, adminHandlers()), "admins",
		records.WithOrder("username ASC"),
	)
	trainers := records.NewBunStore[*gym.Trainer](
		repository.NewRepository[*gym.Trainer](c.db, trainerHandlers()), "trainers",
		records.WithOrder("last_name ASC", "first_name ASC"),
	)
	members := records.NewBunStore[*gym.Member](
		repository.NewRepository[*gym.Member](c.db, memberHandlers()), "members",
		records.WithOrder("last_name ASC", "first_name ASC"),
	)

	c.keySerializer = cache.NewDefaultKeySerializer()
	manager, err := search.NewManager(
		records.NewFormatter(admins, trainers, members, c.logger),
		search.WithFilterCache(filters),
		search.WithKeySerializer(c.keySerializer),
		search.WithMatcher(search.DefaultMatcher(cfg.Search.SimilarityThreshold)),
		search.WithLogger(c.logger),
	)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.manager = manager
	c.service = search.NewService(manager)

	c.admins = records.NewInvalidatingStore[*gym.Admin](admins, search.KindAdmins, c.service, c.logger)
	c.trainers = records.NewInvalidatingStore[*gym.Trainer](trainers, search.KindTrainers, c.service, c.logger)
	c.members = records.NewInvalidatingStore[*gym.Member](members, search.KindUsers, c.service, c.logger)

	c.logger.Debug("container ready", logging.Fields{
		"database":      cfg.Database.Path,
		"cache_backend": cfg.Cache.Backend,
		"threshold":     cfg.Search.SimilarityThreshold,
	})

	return c, nil
}

// NewContainerWithDefaults builds a Container from config.Defaults.
func NewContainerWithDefaults(ctx context.Context, opts ...Option) (*Container, error) {
	return NewContainer(ctx, config.Defaults(), opts...)
}

// Service returns the search entry point.
func (c *Container) Service() *search.Service { return c.service }

// Manager returns the cache manager behind Service.
func (c *Container) Manager() *search.Manager { return c.manager }

// Admins returns the invalidating admin store.
func (c *Container) Admins() records.Store[*gym.Admin] { return c.admins }

// Trainers returns the invalidating trainer store.
func (c *Container) Trainers() records.Store[*gym.Trainer] { return c.trainers }

// Members returns the invalidating member store.
func (c *Container) Members() records.Store[*gym.Member] { return c.members }

// DeleteRecord removes the record of kind with id through the matching store.
func (c *Container) DeleteRecord(ctx context.Context, kind search.Kind, id uuid.UUID) error {
	switch kind {
	case search.KindAdmins:
		return c.admins.Delete(ctx, id)
	case search.KindTrainers:
		return c.trainers.Delete(ctx, id)
	case search.KindUsers:
		return c.members.Delete(ctx, id)
	}
	_, err := search.ParseKind(kind.String())
	return err
}

// KeySerializer returns the serializer used for filter cache keys.
func (c *Container) KeySerializer() cache.KeySerializer { return c.keySerializer }

// Logger returns the configured logger.
func (c *Container) Logger() logging.Logger { return c.logger }

// Config returns the configuration the container was built from.
func (c *Container) Config() config.Config { return c.config }

// DB returns the database handle.
func (c *Container) DB() *bun.DB { return c.db }

// Close releases the database (when the container opened it), stops the filter
// cache and flushes logs.
func (c *Container) Close() error {
	var errs []error
	if c.ownsDB && c.db != nil {
		if err := c.db.Close(); err != nil {
			errs = append(errs, err)
		}
		c.db = nil
	}
	for _, fn := range c.closers {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return goerrors.Join(errs...)
}

// NewLogger builds the logger selected by cfg. The returned function flushes
// buffered entries.
func NewLogger(cfg config.LogConfig) (logging.Logger, func() error, error) {
	noop := func() error { return nil }
	level := strings.ToLower(cfg.Level)

	switch cfg.Backend {
	case config.LogBackendNop:
		return logging.NopLogger{}, noop, nil
	case config.LogBackendLogrus:
		l, err := logruslog.New(level)
		if err != nil {
			return nil, nil, err
		}
		return l, noop, nil
	default:
		l, err := zaplog.New(level)
		if err != nil {
			return nil, nil, err
		}
		return l, func() error {
			// stderr returns EINVAL on sync in most terminals
			_ = l.Sync()
			return nil
		}, nil
	}
}
