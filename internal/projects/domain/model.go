package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/atelier-works/portfolio-backend/internal/store"
)

// Project is the public, client-facing projection of a stored portfolio
// document. The id is store-assigned and never supplied by clients.
type Project struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Image       string   `json:"image"`
	Location    string   `json:"location,omitempty"`
	Year        string   `json:"year,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// ProjectIn is the validated creation payload. Field presence is enforced
// at the binding layer; the policies below it never see invalid shapes.
type ProjectIn struct {
	Title       string   `json:"title" binding:"required"`
	Image       string   `json:"image" binding:"required"`
	Location    string   `json:"location"`
	Year        string   `json:"year"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Document renders the payload as a store document. Optional fields that
// were not supplied are left absent rather than stored as empty values.
func (in ProjectIn) Document() store.Document {
	doc := store.Document{
		"title": in.Title,
		"image": in.Image,
	}
	if in.Location != "" {
		doc["location"] = in.Location
	}
	if in.Year != "" {
		doc["year"] = in.Year
	}
	if in.Description != "" {
		doc["description"] = in.Description
	}
	if len(in.Tags) > 0 {
		doc["tags"] = in.Tags
	}
	return doc
}

// FromDocument projects a serialized store document onto the public
// record, dropping any internal fields it still carries.
func FromDocument(doc store.Document) Project {
	return Project{
		ID:          stringField(doc, "id"),
		Title:       stringField(doc, "title"),
		Image:       stringField(doc, "image"),
		Location:    stringField(doc, "location"),
		Year:        stringField(doc, "year"),
		Description: stringField(doc, "description"),
		Tags:        stringSliceField(doc, "tags"),
	}
}

func stringField(doc store.Document, key string) string {
	if s, ok := doc[key].(string); ok {
		return s
	}
	return ""
}

func stringSliceField(doc store.Document, key string) []string {
	switch v := doc[key].(type) {
	case []string:
		return v
	case []any:
		return stringsOf(v)
	case primitive.A:
		// The Mongo driver decodes arrays as primitive.A.
		return stringsOf(v)
	default:
		return nil
	}
}

func stringsOf(v []any) []string {
	out := make([]string, 0, len(v))
	for _, e := range v {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
