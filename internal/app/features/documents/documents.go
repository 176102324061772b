// internal/app/features/documents/documents.go
package documents

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sece-innovation/hackhub/internal/app/system/authz"
	"github.com/sece-innovation/hackhub/internal/app/system/httpjson"
	"github.com/sece-innovation/hackhub/internal/app/system/timeouts"
	"github.com/sece-innovation/hackhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const maxDocumentBytes = 10 << 20

// HandleUpload stores a document file and its metadata record. The
// name defaults to the uploaded filename and the type to od_form.
// POST /documents (multipart: file, name, type)
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxDocumentBytes); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Please upload a file.")
		return
	}
	defer file.Close()
	if header.Size > maxDocumentBytes {
		httpjson.Error(w, http.StatusBadRequest,
			fmt.Sprintf("File exceeds the %d MB limit", maxDocumentBytes>>20))
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}
	docType := r.FormValue("type")
	if docType == "" {
		docType = models.DocumentTypeODForm
	}

	_, _, userID, ok := authz.UserCtx(r)
	if !ok {
		httpjson.Error(w, http.StatusUnauthorized, "Not authorized, no token")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	path := fmt.Sprintf("documents/%s%s", uuid.New().String(), ext)
	opts := &storage.PutOptions{ContentType: header.Header.Get("Content-Type")}
	if err := h.Storage.Put(ctx, path, file, opts); err != nil {
		h.Log.Error("document store failed", zap.String("name", name), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	doc, err := h.Documents.Create(ctx, models.Document{
		Name:       name,
		Path:       path,
		Type:       docType,
		UploadedBy: userID,
	})
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.Log.Info("document uploaded", zap.String("document_id", doc.ID.Hex()), zap.String("type", docType))
	httpjson.Write(w, http.StatusCreated, doc)
}

// HandleList returns documents newest first, optionally filtered with
// ?type=od_form or ?type=report_template.
// GET /documents
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	docs, err := h.Documents.List(ctx, r.URL.Query().Get("type"))
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if docs == nil {
		docs = []models.Document{}
	}
	httpjson.Write(w, http.StatusOK, docs)
}

// HandleDelete removes a document's metadata record. The stored file
// is left in place so an accidental delete is recoverable.
// DELETE /documents/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "Document not found.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	deleted, err := h.Documents.Delete(ctx, id)
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if deleted == 0 {
		httpjson.Error(w, http.StatusNotFound, "Document not found.")
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Document deleted successfully."})
}
