package db

import (
	"context"
	"errors"
	"testing"

	"taskmanager/internal/config"
)

func TestSelectStrategy(t *testing.T) {
	cases := []struct {
		name string
		cfg  config.Config
		want strategy
	}{
		{
			name: "connector with all required vars",
			cfg:  config.Config{InstanceConnectionName: "p:r:i", DBUser: "u", DBName: "d"},
			want: strategyConnector,
		},
		{
			name: "connector without password still selected",
			cfg:  config.Config{InstanceConnectionName: "p:r:i", DBUser: "u", DBName: "d", IAMAuth: true},
			want: strategyConnector,
		},
		{
			name: "connector wins over direct when both configured",
			cfg:  config.Config{InstanceConnectionName: "p:r:i", DBUser: "u", DBPass: "s", DBName: "d", DBHost: "localhost", DBPort: "5432"},
			want: strategyConnector,
		},
		{
			name: "direct fallback",
			cfg:  config.Config{DBHost: "localhost", DBPort: "5432", DBUser: "u", DBPass: "s", DBName: "d"},
			want: strategyDirect,
		},
		{
			name: "direct without password is not usable",
			cfg:  config.Config{DBHost: "localhost", DBPort: "5432", DBUser: "u", DBName: "d"},
			want: strategyNone,
		},
		{
			name: "connector missing db name",
			cfg:  config.Config{InstanceConnectionName: "p:r:i", DBUser: "u"},
			want: strategyNone,
		},
		{
			name: "empty environment",
			cfg:  config.Config{},
			want: strategyNone,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := selectStrategy(&tc.cfg); got != tc.want {
				t.Fatalf("selectStrategy = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewPoolConfigurationError(t *testing.T) {
	p := NewProvider(&config.Config{DBUser: "u", DBName: "d"})
	_, err := p.NewPool(context.Background())
	if !errors.Is(err, ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestNewPoolDirectBuildsFactory(t *testing.T) {
	// pgxpool connects lazily, so building the factory needs no server.
	p := NewProvider(&config.Config{DBHost: "127.0.0.1", DBPort: "5432", DBUser: "u", DBPass: "s", DBName: "d"})
	pool, err := p.NewPool(context.Background())
	if err != nil {
		t.Fatalf("expected factory, got %v", err)
	}
	pool.Close()
}
