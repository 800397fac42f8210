package main

import (
	"go.uber.org/fx"

	"github.com/slipstream-mp/slipstream-server/pkg/bundlefx"
	"github.com/slipstream-mp/slipstream-server/pkg/serverfx"
)

func main() {
	fx.New(
		bundlefx.Module,
		serverfx.Module(serverfx.Options{
			Service:       "slipstream",
			ConfigEnv:     "SLIPSTREAM_CONFIG",
			DefaultConfig: "ServerConfig.toml",
		}),
	).Run()
}
