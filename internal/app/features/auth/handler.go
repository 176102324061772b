// internal/app/features/auth/handler.go
package auth

import (
	userstore "github.com/sece-innovation/hackhub/internal/app/store/users"
	systemauth "github.com/sece-innovation/hackhub/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves signup, login, and the current-user endpoint.
type Handler struct {
	Log    *zap.Logger
	Tokens *systemauth.Manager
	Users  *userstore.Store
}

func NewHandler(db *mongo.Database, tokens *systemauth.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:    logger,
		Tokens: tokens,
		Users:  userstore.New(db),
	}
}
