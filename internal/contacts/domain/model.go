package domain

import "github.com/atelier-works/portfolio-backend/internal/store"

// Contact is the public projection of a stored contact-form submission.
type Contact struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactIn is the validated submission payload. The email check happens
// at the binding layer; the policies never see malformed addresses.
type ContactIn struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

func (in ContactIn) Document() store.Document {
	return store.Document{
		"name":    in.Name,
		"email":   in.Email,
		"message": in.Message,
	}
}

// FromDocument projects a serialized store document onto the public
// record.
func FromDocument(doc store.Document) Contact {
	return Contact{
		ID:      stringField(doc, "id"),
		Name:    stringField(doc, "name"),
		Email:   stringField(doc, "email"),
		Message: stringField(doc, "message"),
	}
}

func stringField(doc store.Document, key string) string {
	if s, ok := doc[key].(string); ok {
		return s
	}
	return ""
}
