package docflow

import (
	"strings"

	"github.com/documentflow/backend/internal/domain/shared"
)

// DocType is a document kind lookup row (letter, order, contract, ...).
type DocType struct {
	shared.BaseEntity
	Name string
}

// NewDocType creates a document type.
func NewDocType(name string) (*DocType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewInvalidArgument("Document type name is empty")
	}
	return &DocType{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}
