// internal/app/bootstrap/config.go
package bootstrap

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for HackHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, jwt_secret, etc.
//   - Environment variables: HACKHUB_MONGO_URI, HACKHUB_JWT_SECRET, etc.
//   - Command-line flags: --mongo_uri, --jwt_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "hackhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	{Name: "jwt_secret", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "JWT signing secret (must be strong in production)"},
	{Name: "token_expiry", Default: "720h", Desc: "Bearer token lifetime (e.g., 720h for 30 days)"},

	{Name: "upload_path", Default: "./uploads", Desc: "Local directory for uploaded files"},
	{Name: "upload_url", Default: "/uploads", Desc: "URL prefix for serving uploaded files"},

	{Name: "cors_origins", Default: "http://localhost:5173", Desc: "Comma-separated list of allowed CORS origins"},

	{Name: "demo_accounts", Default: "", Desc: "JSON array of demo login accounts (empty disables demo logins)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, HACKHUB_* for app), and
// command-line flags, merged with precedence flags > env > files >
// defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "HACKHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		JWTSecret:   appValues.String("jwt_secret"),
		TokenExpiry: appValues.Duration("token_expiry", 720*time.Hour),

		UploadPath: appValues.String("upload_path"),
		UploadURL:  appValues.String("upload_url"),

		CORSOrigins: splitOrigins(appValues.String("cors_origins")),
	}

	if raw := appValues.String("demo_accounts"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &appCfg.DemoAccounts); err != nil {
			return nil, AppConfig{}, fmt.Errorf("parse demo_accounts: %w", err)
		}
		logger.Warn("demo accounts enabled", zap.Int("count", len(appCfg.DemoAccounts)))
	}

	return coreCfg, appCfg, nil
}

func splitOrigins(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ValidateConfig performs app-specific config validation before any
// backends are connected.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if coreCfg.Env == "prod" {
		if appCfg.JWTSecret == "" || strings.HasPrefix(appCfg.JWTSecret, "dev-only-") {
			return fmt.Errorf("jwt_secret must be set to a strong value in production")
		}
		if len(appCfg.DemoAccounts) > 0 {
			logger.Warn("demo accounts are enabled in production")
		}
	}

	for _, d := range appCfg.DemoAccounts {
		if d.ID == "" || d.Email == "" || d.Password == "" || d.Role == "" {
			return fmt.Errorf("demo account %q missing id, email, password, or role", d.Email)
		}
		// Handlers parse the token subject as an ObjectID, so a
		// non-hex demo ID would authenticate but fail every request.
		if _, err := primitive.ObjectIDFromHex(d.ID); err != nil {
			return fmt.Errorf("demo account %q id must be a 24-char ObjectID hex, got %q", d.Email, d.ID)
		}
	}

	if appCfg.TokenExpiry <= 0 {
		return fmt.Errorf("token_expiry must be positive")
	}

	return nil
}
