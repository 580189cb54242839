package policy

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplecrm/cmd/internal/domain/entity"
)

type fakeArtifacts struct {
	existing map[string]bool
	err      error
	calls    int
}

func (f *fakeArtifacts) Exists(_ context.Context, path string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.existing[path], nil
}

func fixedNow(year int, month time.Month, day int) func() time.Time {
	return func() time.Time {
		return time.Date(year, month, day, 23, 59, 0, 0, time.UTC)
	}
}

func strPtr(s string) *string {
	return &s
}

func TestStatusPolicyCompute(t *testing.T) {
	artifacts := &fakeArtifacts{existing: map[string]bool{"signed/a.pdf": true}}
	p := NewStatusPolicy(artifacts, fixedNow(2024, time.March, 15))

	tests := []struct {
		name   string
		end    entity.Date
		signed *string
		want   entity.AttachmentStatus
	}{
		{
			name: "ends today is still active",
			end:  entity.NewDate(2024, time.March, 15),
			want: entity.AttachmentStatus{Active: true},
		},
		{
			name: "ended yesterday is inactive",
			end:  entity.NewDate(2024, time.March, 14),
			want: entity.AttachmentStatus{},
		},
		{
			name:   "existing signed document",
			end:    entity.NewDate(2025, time.January, 1),
			signed: strPtr("signed/a.pdf"),
			want:   entity.AttachmentStatus{Signed: true, Active: true},
		},
		{
			name:   "missing signed document",
			end:    entity.NewDate(2025, time.January, 1),
			signed: strPtr("signed/missing.pdf"),
			want:   entity.AttachmentStatus{Active: true},
		},
		{
			name:   "blank signed path",
			end:    entity.NewDate(2020, time.January, 1),
			signed: strPtr("   "),
			want:   entity.AttachmentStatus{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &entity.Attachment{
				DateStartAttachment:     entity.NewDate(2020, time.January, 1),
				DateEndAttachment:       tt.end,
				PathSignedPdfAttachment: tt.signed,
			}

			got, err := p.Compute(context.Background(), a)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStatusPolicyIdempotent(t *testing.T) {
	artifacts := &fakeArtifacts{existing: map[string]bool{"s.pdf": true}}
	p := NewStatusPolicy(artifacts, fixedNow(2024, time.June, 1))
	a := &entity.Attachment{
		DateEndAttachment:       entity.NewDate(2024, time.December, 31),
		PathSignedPdfAttachment: strPtr("s.pdf"),
	}

	first, err := p.Compute(context.Background(), a)
	require.NoError(t, err)
	a.ApplyStatus(first)

	second, err := p.Compute(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, first, a.Status())
}

func TestStatusPolicyBlankPathSkipsLookup(t *testing.T) {
	artifacts := &fakeArtifacts{}
	p := NewStatusPolicy(artifacts, fixedNow(2024, time.June, 1))

	_, err := p.Compute(context.Background(), &entity.Attachment{})
	require.NoError(t, err)
	assert.Zero(t, artifacts.calls)
}

func TestStatusPolicyLookupError(t *testing.T) {
	artifacts := &fakeArtifacts{err: errors.New("bucket unreachable")}
	p := NewStatusPolicy(artifacts, fixedNow(2024, time.June, 1))

	got, err := p.Compute(context.Background(), &entity.Attachment{
		DateEndAttachment:       entity.NewDate(2024, time.December, 31),
		PathSignedPdfAttachment: strPtr("x.pdf"),
	})
	assert.ErrorContains(t, err, "bucket unreachable")
	assert.Equal(t, entity.AttachmentStatus{Active: true}, got, "active does not depend on the lookup")
}
