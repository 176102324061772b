// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	applicationsfeature "github.com/sece-innovation/hackhub/internal/app/features/applications"
	authfeature "github.com/sece-innovation/hackhub/internal/app/features/auth"
	documentsfeature "github.com/sece-innovation/hackhub/internal/app/features/documents"
	hackathonsfeature "github.com/sece-innovation/hackhub/internal/app/features/hackathons"
	healthfeature "github.com/sece-innovation/hackhub/internal/app/features/health"
	messagesfeature "github.com/sece-innovation/hackhub/internal/app/features/messages"
	notificationsfeature "github.com/sece-innovation/hackhub/internal/app/features/notifications"
	odformsfeature "github.com/sece-innovation/hackhub/internal/app/features/odforms"
	registrationsfeature "github.com/sece-innovation/hackhub/internal/app/features/registrations"
	statsfeature "github.com/sece-innovation/hackhub/internal/app/features/stats"
	userstore "github.com/sece-innovation/hackhub/internal/app/store/users"
	systemauth "github.com/sece-innovation/hackhub/internal/app/system/auth"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this
// WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and the Startup hook have completed. HackHub applies CORS and the
// token middleware globally, then mounts the JSON feature routers. The
// token middleware only annotates the request; each feature router
// decides whether a signed-in user (and which role) is required.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.HackHubMongoDatabase

	fileStore, err := storage.NewLocal(storage.LocalConfig{
		BasePath: appCfg.UploadPath,
		BaseURL:  appCfg.UploadURL,
	})
	if err != nil {
		logger.Error("storage init failed", zap.String("path", appCfg.UploadPath), zap.Error(err))
		return nil, err
	}

	tokens := systemauth.NewManager(
		appCfg.JWTSecret,
		appCfg.TokenExpiry,
		userstore.NewFetcher(db),
		appCfg.DemoAccounts,
		logger,
	)

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   appCfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Global auth middleware: resolves the bearer token's subject into
	// the request context when one is present.
	r.Use(tokens.VerifyToken)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.HackHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Handle("/metrics", promhttp.Handler())

	// Uploaded posters and documents
	r.Handle(appCfg.UploadURL+"/*", fileserver.Handler(appCfg.UploadURL, appCfg.UploadPath))

	// Identity
	authHandler := authfeature.NewHandler(db, tokens, logger)
	r.Mount("/auth", authfeature.Routes(authHandler))

	// Events and participation
	hackathonsHandler := hackathonsfeature.NewHandler(db, fileStore, logger)
	r.Mount("/hackathons", hackathonsfeature.Routes(hackathonsHandler))

	applicationsHandler := applicationsfeature.NewHandler(db, logger)
	r.Mount("/applications", applicationsfeature.Routes(applicationsHandler))

	registrationsHandler := registrationsfeature.NewHandler(db, logger)
	r.Mount("/registrations", registrationsfeature.Routes(registrationsHandler))

	// Shared files
	documentsHandler := documentsfeature.NewHandler(db, fileStore, logger)
	r.Mount("/documents", documentsfeature.Routes(documentsHandler))

	odFormsHandler := odformsfeature.NewHandler(db, fileStore, logger)
	r.Mount("/od-forms", odformsfeature.Routes(odFormsHandler))

	// Message board and notification feed
	messagesHandler := messagesfeature.NewHandler(db, logger)
	r.Mount("/messages", messagesfeature.Routes(messagesHandler))

	notificationsHandler := notificationsfeature.NewHandler(db, logger)
	r.Mount("/notifications", notificationsfeature.Routes(notificationsHandler))

	// Coordinator dashboard
	statsHandler := statsfeature.NewHandler(db, logger)
	r.Mount("/stats", statsfeature.Routes(statsHandler))

	return r, nil
}
