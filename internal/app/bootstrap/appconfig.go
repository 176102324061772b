// internal/app/bootstrap/appconfig.go
package bootstrap

import (
	"time"

	"github.com/sece-innovation/hackhub/internal/app/system/auth"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, request limits). AppConfig is everything specific to
// HackHub: the Mongo connection, JWT signing, upload storage, and the
// demo allow-list used for staging walkthroughs.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64
	MongoMinPoolSize uint64

	// Token configuration. JWTSecret must be strong in production;
	// tokens are HS256 with a 30-day default lifetime.
	JWTSecret   string
	TokenExpiry time.Duration

	// Upload storage configuration
	UploadPath string // local directory for stored files (e.g., "./uploads")
	UploadURL  string // URL prefix the files are served under (e.g., "/uploads")

	// CORSOrigins is the list of allowed browser origins for the
	// portal and the admin console.
	CORSOrigins []string

	// DemoAccounts are synthetic identities accepted at login without a
	// database record, parsed from a JSON array. Empty in production.
	DemoAccounts []auth.DemoAccount
}
