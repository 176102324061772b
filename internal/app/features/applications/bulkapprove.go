// internal/app/features/applications/bulkapprove.go
package applications

import (
	"context"
	"fmt"
	"net/http"

	"github.com/sece-innovation/hackhub/internal/app/system/httpjson"
	"github.com/sece-innovation/hackhub/internal/app/system/resolve"
	"github.com/sece-innovation/hackhub/internal/app/system/timeouts"
	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleBulkApprove approves every listed application in one update and
// notifies each affected student. IDs that match nothing are skipped;
// the matched subset proceeds.
// POST /applications/bulk-approve
func (h *Handler) HandleBulkApprove(w http.ResponseWriter, r *http.Request) {
	var in bulkApproveInput
	if !httpjson.Decode(w, r, &in) {
		return
	}

	ids := make([]primitive.ObjectID, 0, len(in.ApplicationIDs))
	for _, raw := range in.ApplicationIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, fmt.Sprintf("Invalid application id %q", raw))
			return
		}
		ids = append(ids, id)
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	approved, err := h.Applications.BulkApprove(ctx, ids)
	if err != nil {
		h.Log.Error("bulk approve failed", zap.Int("requested", len(ids)), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	hackIDs := make([]primitive.ObjectID, 0, len(approved))
	for _, app := range approved {
		hackIDs = append(hackIDs, app.Hackathon)
	}
	hacks := resolve.Attach(ctx, h.HackathonRefs, hackIDs)

	notes := make([]models.Notification, 0, len(approved))
	for _, app := range approved {
		hack, ok := hacks[app.Hackathon]
		if !ok {
			continue
		}
		notes = append(notes, models.Notification{
			Recipient: app.Student,
			Type:      models.NotificationApproval,
			Title:     "Application Approved",
			Message:   fmt.Sprintf("Your application for %s has been approved", hack.Name),
			Priority:  "high",
		})
	}
	if err := h.Notifications.CreateMany(ctx, notes); err != nil {
		// Approvals are already committed; the missing notifications
		// are not worth failing the request over.
		h.Log.Warn("approval notifications failed", zap.Int("count", len(notes)), zap.Error(err))
	}

	h.Log.Info("applications bulk approved",
		zap.Int("requested", len(ids)),
		zap.Int("approved", len(approved)))
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Applications approved successfully"})
}
