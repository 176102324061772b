// internal/app/features/documents/handler.go
package documents

import (
	"github.com/dalemusser/waffle/pantry/storage"
	documentstore "github.com/sece-innovation/hackhub/internal/app/store/documents"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves shared document uploads (OD forms, report templates).
type Handler struct {
	Log       *zap.Logger
	Storage   storage.Store
	Documents *documentstore.Store
}

func NewHandler(db *mongo.Database, store storage.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Log:       logger,
		Storage:   store,
		Documents: documentstore.New(db),
	}
}
