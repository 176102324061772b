// internal/app/features/notifications/notifications.go
package notifications

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sece-innovation/hackhub/internal/app/system/authz"
	"github.com/sece-innovation/hackhub/internal/app/system/httpjson"
	"github.com/sece-innovation/hackhub/internal/app/system/timeouts"
	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// sendBulkInput is the body of POST /notifications/send-bulk.
type sendBulkInput struct {
	Recipients []string `json:"recipients"`
	Title      string   `json:"title"`
	Message    string   `json:"message"`
	Type       string   `json:"type"`
	Priority   string   `json:"priority"`
}

// HandleList returns the current user's notifications, newest first.
// GET /notifications
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authorized, no token")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ns, err := h.Notifications.ListByRecipient(ctx, userID)
	if err != nil {
		h.Log.Error("notification list failed", zap.String("user_id", userID.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if ns == nil {
		ns = []models.Notification{}
	}
	httpjson.Write(w, http.StatusOK, ns)
}

// HandleSendBulk delivers one notification to each listed recipient.
// POST /notifications/send-bulk
func (h *Handler) HandleSendBulk(w http.ResponseWriter, r *http.Request) {
	var in sendBulkInput
	if !httpjson.Decode(w, r, &in) {
		return
	}
	if len(in.Recipients) == 0 || in.Title == "" || in.Message == "" {
		httpjson.Error(w, http.StatusBadRequest, "Recipients, title, and message are required")
		return
	}

	ns := make([]models.Notification, 0, len(in.Recipients))
	for _, raw := range in.Recipients {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, fmt.Sprintf("Invalid recipient id: %s", raw))
			return
		}
		ns = append(ns, models.Notification{
			Recipient: id,
			Type:      in.Type,
			Title:     in.Title,
			Message:   in.Message,
			Priority:  in.Priority,
		})
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Notifications.CreateMany(ctx, ns); err != nil {
		h.Log.Error("bulk notification failed", zap.Int("recipients", len(ns)), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{
		"message": fmt.Sprintf("Notification sent to %d students", len(ns)),
	})
}
