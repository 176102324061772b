// internal/domain/models/document.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document type tags.
const (
	DocumentTypeODForm         = "od_form"
	DocumentTypeReportTemplate = "report_template"
)

// Document is metadata for an uploaded file (OD forms, report templates).
// The file itself lives in the storage backend under Path.
type Document struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	Path       string             `bson:"path" json:"path"`
	Type       string             `bson:"type" json:"type"` // od_form | report_template
	UploadedBy primitive.ObjectID `bson:"uploadedBy,omitempty" json:"uploadedBy,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ODForm is an uploaded on-duty form. Kept as its own collection for
// compatibility; the dashboard shows the latest one.
type ODForm struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title      string             `bson:"title" json:"title"`
	FilePath   string             `bson:"filePath" json:"filePath"`
	UploadedBy primitive.ObjectID `bson:"uploadedBy" json:"uploadedBy"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
