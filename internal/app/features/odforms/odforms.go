// internal/app/features/odforms/odforms.go
package odforms

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
	"github.com/sece-innovation/hackhub/internal/app/system/authz"
	"github.com/sece-innovation/hackhub/internal/app/system/httpjson"
	"github.com/sece-innovation/hackhub/internal/app/system/timeouts"
	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const maxFormBytes = 10 << 20

const defaultTitle = "Innovation OD Form"

// HandleUpload stores a new OD form. Each upload becomes the new
// "latest"; older forms stay listed for reference.
// POST /od-forms (multipart: file, title)
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormBytes); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	title := r.FormValue("title")
	if title == "" {
		title = defaultTitle
	}

	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authorized, no token")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	path := fmt.Sprintf("od-forms/%s%s", uuid.New().String(), ext)
	opts := &storage.PutOptions{ContentType: header.Header.Get("Content-Type")}
	if err := h.Storage.Put(ctx, path, file, opts); err != nil {
		h.Log.Error("od form store failed", zap.String("title", title), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	form, err := h.ODForms.Create(ctx, models.ODForm{
		Title:      title,
		FilePath:   path,
		UploadedBy: userID,
	})
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusCreated, form)
}

// HandleLatest returns the most recent OD form, or an empty object when
// none has been uploaded yet. The portal treats the empty object as
// "no form available" rather than an error.
// GET /od-forms/latest
func (h *Handler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	form, err := h.ODForms.Latest(ctx)
	if err == mongo.ErrNoDocuments {
		httpjson.Write(w, http.StatusOK, map[string]any{})
		return
	}
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, form)
}

// HandleList returns all OD forms, newest first.
// GET /od-forms
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	forms, err := h.ODForms.List(ctx)
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if forms == nil {
		forms = []models.ODForm{}
	}
	httpjson.Write(w, http.StatusOK, forms)
}
