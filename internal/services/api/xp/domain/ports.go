package domain

import (
	"context"

	"candiqo/internal/nlp"
)

// ServicePort is consumed by handlers and other modules
type ServicePort interface {
	Parse(ctx context.Context, in ParseInput) (ParseResult, error)
	Company(ctx context.Context, in CompanyInput) (CompanyResult, error)
	Simple(ctx context.Context, in SimpleInput) (SimpleResult, error)
	Ents(ctx context.Context, in EntsInput) ([]nlp.Entity, error)
}
