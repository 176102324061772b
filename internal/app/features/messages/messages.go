// internal/app/features/messages/messages.go
package messages

import (
	"context"
	"net/http"
	"time"

	"github.com/sece-innovation/hackhub/internal/app/system/authz"
	"github.com/sece-innovation/hackhub/internal/app/system/httpjson"
	"github.com/sece-innovation/hackhub/internal/app/system/resolve"
	"github.com/sece-innovation/hackhub/internal/app/system/timeouts"
	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// sendInput is the body of POST /messages.
type sendInput struct {
	Content string `json:"content"`
}

// boardMessage is a message with its sender projection attached. The
// sender is nil when the account has since been deleted; the post
// itself stays on the board.
type boardMessage struct {
	ID         primitive.ObjectID  `json:"_id"`
	Sender     *models.UserSummary `json:"sender"`
	SenderRole string              `json:"senderRole"`
	Content    string              `json:"content"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// HandleSend posts a message as the current user.
// POST /messages
func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	var in sendInput
	if !httpjson.Decode(w, r, &in) {
		return
	}
	if in.Content == "" {
		httpjson.Error(w, http.StatusBadRequest, "Message content is required")
		return
	}

	role, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authorized, no token")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	msg, err := h.Messages.Create(ctx, userID, role, in.Content)
	if err != nil {
		h.Log.Error("message create failed", zap.String("sender", userID.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusCreated, msg)
}

// HandleList returns the whole board, newest first, with senders
// resolved to their name/email projection.
// GET /messages
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	msgs, err := h.Messages.List(ctx)
	if err != nil {
		h.Log.Error("message list failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	senderIDs := make([]primitive.ObjectID, 0, len(msgs))
	for _, m := range msgs {
		senderIDs = append(senderIDs, m.Sender)
	}
	senders := resolve.Attach(ctx, h.UserRefs, senderIDs)

	out := make([]boardMessage, 0, len(msgs))
	for _, m := range msgs {
		row := boardMessage{
			ID:         m.ID,
			SenderRole: m.SenderRole,
			Content:    m.Content,
			CreatedAt:  m.CreatedAt,
		}
		if s, ok := senders[m.Sender]; ok {
			row.Sender = &s
		}
		out = append(out, row)
	}
	httpjson.Write(w, http.StatusOK, out)
}
