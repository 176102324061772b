// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"os"

	"github.com/dalemusser/waffle/config"
	"github.com/sece-innovation/hackhub/internal/app/system/metrics"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	metrics.Register()

	if err := os.MkdirAll(appCfg.UploadPath, 0o755); err != nil {
		logger.Error("upload directory create failed", zap.String("path", appCfg.UploadPath), zap.Error(err))
		return err
	}

	return nil
}
