package favorite

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/mydictionary/backend/internal/domain"
	"github.com/mydictionary/backend/pkg/ctxutil"
)

// CreateInput carries the request body of POST /favorites.
type CreateInput struct {
	Word string  `json:"word"`
	Note *string `json:"note"`
}

// Validate trims the word and checks the create constraints.
func (in *CreateInput) Validate() error {
	in.Word = strings.TrimSpace(in.Word)

	var fields []domain.FieldError
	if in.Word == "" {
		fields = append(fields, domain.FieldError{Field: "word", Message: "required"})
	} else if len(in.Word) > 255 {
		fields = append(fields, domain.FieldError{Field: "word", Message: "too long (max 255)"})
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}

// UpdateNoteInput carries the request body of PUT /favorites/{id}.
// A nil note clears the stored note.
type UpdateNoteInput struct {
	Note *string `json:"note"`
}

// ownerFromCtx resolves the authenticated owner. Callers without an identity
// in the context get domain.ErrUnauthorized.
func ownerFromCtx(ctx context.Context) (uuid.UUID, error) {
	ownerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return ownerID, nil
}
