// internal/app/features/odforms/handler.go
package odforms

import (
	"github.com/dalemusser/waffle/pantry/storage"
	odformstore "github.com/sece-innovation/hackhub/internal/app/store/odforms"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves on-duty form uploads. Students download the latest
// form before attending an event.
type Handler struct {
	Log     *zap.Logger
	Storage storage.Store
	ODForms *odformstore.Store
}

func NewHandler(db *mongo.Database, store storage.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Log:     logger,
		Storage: store,
		ODForms: odformstore.New(db),
	}
}
