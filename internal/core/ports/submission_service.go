package ports

import (
	"context"

	"github.com/hellostack/portal/internal/core/domain"
)

// SubmissionService validates and accepts bug reports.
type SubmissionService interface {
	Submit(ctx context.Context, report domain.BugReport) domain.SubmissionResult
	ValidateField(field, value string) (domain.FieldResult, error)
}
