// bundlefx/bundlefx.go
package bundlefx

import (
	"github.com/slipstream-mp/slipstream-server/pkg/middleware/logger"
	"go.uber.org/fx"
)

// Module provided to fx
var Module = fx.Options(
	logger.Module,
)
