package policy

import (
	"context"
	"strings"
	"time"

	"simplecrm/cmd/internal/domain/entity"
)

// ArtifactChecker tells whether a stored document exists.
type ArtifactChecker interface {
	Exists(ctx context.Context, path string) (bool, error)
}

// StatusPolicy derives the signed/active flags of attachments.
//
// The result depends only on the current date, the stored dates and whether
// the signed document exists, so computing it twice gives the same answer.
type StatusPolicy struct {
	artifacts ArtifactChecker
	now       func() time.Time
}

func NewStatusPolicy(artifacts ArtifactChecker, now func() time.Time) *StatusPolicy {
	if now == nil {
		now = time.Now
	}
	return &StatusPolicy{artifacts: artifacts, now: now}
}

// Today is the current UTC calendar day.
func (p *StatusPolicy) Today() entity.Date {
	return entity.DateOf(p.now().UTC())
}

// Compute derives both flags of a. Active only depends on dates, so it is
// set even when the artifact lookup fails; Signed is false in that case.
func (p *StatusPolicy) Compute(ctx context.Context, a *entity.Attachment) (entity.AttachmentStatus, error) {
	status := entity.AttachmentStatus{Active: IsActive(p.Today(), a.DateEndAttachment)}

	signed, err := p.isSigned(ctx, a.PathSignedPdfAttachment)
	if err != nil {
		return status, err
	}
	status.Signed = signed
	return status, nil
}

// IsActive reports whether an attachment ending at end still runs on today.
func IsActive(today, end entity.Date) bool {
	return !today.After(end)
}

func (p *StatusPolicy) isSigned(ctx context.Context, path *string) (bool, error) {
	if path == nil || strings.TrimSpace(*path) == "" {
		return false, nil
	}

	if p.artifacts == nil {
		return false, nil
	}
	return p.artifacts.Exists(ctx, strings.TrimSpace(*path))
}
