// serverfx/serverfx.go
package serverfx

import (
	"context"
	"net/http"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/slipstream-mp/slipstream-server/pkg/config"
	"github.com/slipstream-mp/slipstream-server/pkg/diag"
	"github.com/slipstream-mp/slipstream-server/pkg/middleware/logger"
	"github.com/slipstream-mp/slipstream-server/pkg/middleware/metrics"
	"github.com/slipstream-mp/slipstream-server/pkg/subsystem"
	"github.com/slipstream-mp/slipstream-server/pkg/transport/httpx"
)

// Options allow per-deployment env keys/defaults without code duplication.
type Options struct {
	Service       string // e.g. "slipstream"
	ConfigEnv     string // e.g. "SLIPSTREAM_CONFIG"
	DefaultConfig string // e.g. "ServerConfig.toml"
}

// ---- Config ----

type configDeps struct {
	fx.In
	Opts Options
	Log  *zap.Logger
}

func provideConfig(d configDeps) config.Config {
	cfgPath := envOr(d.Opts.ConfigEnv, d.Opts.DefaultConfig)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		d.Log.Fatal("config load failed", zap.Error(err), zap.String("path", cfgPath))
	}
	return cfg
}

// ---- Diagnostics server ----

type diagDeps struct {
	fx.In

	Cfg      config.Config
	Registry *subsystem.Registry
	LogMW    *logger.Middleware
	Metrics  http.Handler `name:"metrics"`
	R        httpx.Router
	Log      *zap.Logger
}

func provideDiag(d diagDeps) *diag.Server {
	return diag.New(d.Cfg.HTTP, d.Registry, d.R, d.LogMW, d.Metrics, d.Log)
}

// ---- Server lifecycle ----

type hookDeps struct {
	fx.In
	Opts   Options
	Cfg    config.Config
	Server *diag.Server
	Logger *zap.Logger
}

func registerHooks(lc fx.Lifecycle, d hookDeps) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if !d.Cfg.HTTP.Enabled {
				d.Logger.Info("http server disabled",
					zap.String("service", d.Opts.Service),
				)
				return nil
			}
			if err := d.Server.Start(); err != nil {
				// Startup failure is not fatal to the process; the
				// subsystem stays at its last published state.
				d.Logger.Error("Failed to start http server. Please ensure the http server is configured properly in the ServerConfig.toml, or turn it off if you don't need it.",
					zap.String("service", d.Opts.Service),
					zap.String("listen", d.Cfg.HTTP.Listen),
					zap.Error(err),
				)
				return nil
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			d.Logger.Info("server stopping", zap.String("service", d.Opts.Service))
			if d.Server.Addr() == "" {
				return nil
			}
			return d.Server.Stop(ctx)
		},
	})
}

// ---- Public Fx module ----

func Module(opts Options) fx.Option {
	return fx.Options(
		// Supply options to DI.
		fx.Supply(opts),

		// Metrics (named)
		fx.Provide(fx.Annotate(metrics.ProvideMetrics, fx.ResultTags(`name:"metrics"`))),

		// Router implementation
		fx.Provide(httpx.NewChi),

		// Shared subsystem status registry
		fx.Provide(subsystem.NewRegistry),

		fx.Provide(provideConfig),
		fx.Provide(provideDiag),

		// App lifecycle (starts the diagnostics listener)
		fx.Invoke(registerHooks),
	)
}

// ---- helpers ----

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
