// internal/app/features/hackathons/form.go
package hackathons

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
)

const (
	maxPosterBytes = 5 << 20
	maxFormMemory  = 8 << 20
)

var errNotImage = errors.New("only image files are allowed for the poster")

// dateLayouts accepted inside the dates array. The admin console sends
// date-only strings; API clients may send full timestamps.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseDates parses the "dates" form field, a JSON array of date
// strings.
func parseDates(raw string) ([]time.Time, error) {
	if raw == "" {
		return []time.Time{}, nil
	}
	var strs []string
	if err := json.Unmarshal([]byte(raw), &strs); err != nil {
		return nil, errors.New("Invalid format for dates. Expected a JSON array string.")
	}
	out := make([]time.Time, 0, len(strs))
	for _, s := range strs {
		t, err := parseDate(s)
		if err != nil {
			return nil, fmt.Errorf("Invalid date %q in dates.", s)
		}
		out = append(out, t)
	}
	return out, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// parseThemes parses the "themes" form field, a JSON array of strings.
func parseThemes(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, errors.New("Invalid format for themes. Expected a JSON array string.")
	}
	return out, nil
}

// parseDepartments parses the "eligibleDepartments" form field. Accepts
// a JSON array of strings, falling back to a comma-separated list.
func parseDepartments(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err == nil {
		return out
	}
	out = out[:0]
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// uploadPoster validates and stores the optional "poster" form file,
// returning the storage path. Returns "" with a nil error when no
// poster was sent.
func uploadPoster(ctx context.Context, store storage.Store, r *http.Request) (string, error) {
	file, header, err := r.FormFile("poster")
	if err == http.ErrMissingFile {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer file.Close()

	if err := validatePoster(header); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	path := fmt.Sprintf("posters/%s%s", uuid.New().String(), ext)

	opts := &storage.PutOptions{
		ContentType: header.Header.Get("Content-Type"),
	}
	if err := store.Put(ctx, path, file, opts); err != nil {
		return "", fmt.Errorf("failed to store poster: %w", err)
	}
	return path, nil
}

func validatePoster(header *multipart.FileHeader) error {
	if header.Size > maxPosterBytes {
		return fmt.Errorf("poster exceeds the %d MB limit", maxPosterBytes>>20)
	}
	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		return errNotImage
	}
	return nil
}
