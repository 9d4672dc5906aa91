package db

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"taskmanager/internal/config"
	"taskmanager/internal/logger"

	"cloud.google.com/go/cloudsqlconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrConfiguration means the environment does not describe any usable
	// connection strategy. Fatal at startup, nothing should touch the DB.
	ErrConfiguration = errors.New("database configuration incomplete")
	// ErrConnection means a strategy was selected but the pool or the
	// Cloud SQL dialer could not be constructed.
	ErrConnection = errors.New("database connection setup failed")
)

const (
	// pool_size 5 + max_overflow 2; pgxpool has a single ceiling
	poolMaxConns     = 7
	poolConnLifetime = 30 * time.Minute

	// AcquireTimeout bounds how long an operation may wait for a free
	// connection. pgxpool blocks on the caller's context, so repositories
	// apply this as a deadline per call.
	AcquireTimeout = 30 * time.Second
)

type strategy int

const (
	strategyNone strategy = iota
	strategyConnector
	strategyDirect
)

// Provider resolves the configuration snapshot into a live pgx pool. The
// Cloud SQL dialer it may need is created on first use and shared for the
// process lifetime: constructing another Provider reuses it instead of
// leaking a second one.
type Provider struct {
	cfg    *config.Config
	dialer *dialerHolder
}

// dialerHolder guards the one process-wide Cloud SQL dialer. Options from
// the first acquisition win; the snapshot does not change within a process.
type dialerHolder struct {
	once sync.Once
	d    *cloudsqlconn.Dialer
	err  error
}

func (h *dialerHolder) get(ctx context.Context, opts ...cloudsqlconn.Option) (*cloudsqlconn.Dialer, error) {
	h.once.Do(func() {
		h.d, h.err = cloudsqlconn.NewDialer(ctx, opts...)
	})
	return h.d, h.err
}

var sharedDialer dialerHolder

func NewProvider(cfg *config.Config) *Provider {
	return &Provider{cfg: cfg, dialer: &sharedDialer}
}

// NewPool builds the connection pool for whichever strategy the environment
// selects. ErrConfiguration when no strategy matches, ErrConnection when
// construction of the selected strategy fails.
func (p *Provider) NewPool(ctx context.Context) (*pgxpool.Pool, error) {
	switch selectStrategy(p.cfg) {
	case strategyConnector:
		pool, err := p.connectorPool(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConnection, err)
		}
		logger.Info("database pool created via cloud sql connector",
			"instance", p.cfg.InstanceConnectionName, "private_ip", p.cfg.PrivateIP, "iam_auth", p.cfg.IAMAuth)
		return pool, nil
	case strategyDirect:
		pool, err := p.directPool(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConnection, err)
		}
		logger.Info("database pool created via direct connection", "host", p.cfg.DBHost, "port", p.cfg.DBPort)
		return pool, nil
	default:
		return nil, fmt.Errorf("%w: set INSTANCE_CONNECTION_NAME or DB_HOST together with DB_USER, DB_PASS, DB_NAME", ErrConfiguration)
	}
}

func selectStrategy(cfg *config.Config) strategy {
	if cfg.InstanceConnectionName != "" && cfg.DBUser != "" && cfg.DBName != "" {
		return strategyConnector
	}
	if cfg.DBHost != "" && cfg.DBUser != "" && cfg.DBPass != "" && cfg.DBName != "" {
		return strategyDirect
	}
	return strategyNone
}

// connectorPool routes every pgx connection through the shared Cloud SQL
// dialer instead of a host/port pair.
func (p *Provider) connectorPool(ctx context.Context) (*pgxpool.Pool, error) {
	var opts []cloudsqlconn.Option
	if p.cfg.IAMAuth {
		opts = append(opts, cloudsqlconn.WithIAMAuthN())
	}
	if p.cfg.PrivateIP {
		opts = append(opts, cloudsqlconn.WithDefaultDialOptions(cloudsqlconn.WithPrivateIP()))
	}

	d, err := p.dialer.get(ctx, opts...)
	if err != nil {
		return nil, err
	}

	dsn := fmt.Sprintf("user=%s password=%s database=%s", p.cfg.DBUser, p.cfg.DBPass, p.cfg.DBName)
	pc, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pc.MaxConns = poolMaxConns
	pc.MaxConnLifetime = poolConnLifetime

	instance := p.cfg.InstanceConnectionName
	pc.ConnConfig.DialFunc = func(ctx context.Context, _, _ string) (net.Conn, error) {
		return d.Dial(ctx, instance)
	}

	return pgxpool.NewWithConfig(ctx, pc)
}

func (p *Provider) directPool(ctx context.Context) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		p.cfg.DBHost, p.cfg.DBPort, p.cfg.DBUser, p.cfg.DBPass, p.cfg.DBName)
	return pgxpool.New(ctx, dsn)
}
