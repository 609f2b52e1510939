package directory

import (
	"strings"

	"github.com/memberconnect/backend/internal/domain/shared"
)

// Industry is reference data describing an expert's field of work
type Industry struct {
	shared.BaseEntity
	Name        string
	Description string
}

// NewIndustry creates an industry record
func NewIndustry(name, description string) (*Industry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_INDUSTRY_NAME", "Industry name cannot be empty")
	}

	return &Industry{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Description: description,
	}, nil
}
