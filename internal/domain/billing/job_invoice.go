package billing

import (
	"context"

	"github.com/google/uuid"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	"github.com/finbook/bookfile-api/internal/domain/enum"
	"github.com/finbook/bookfile-api/internal/domain/repository"
	"github.com/finbook/bookfile-api/pkg/apperror"
)

// JobInvoice is the job-facing projection of a generic invoice. It accepts
// any job owner regardless of the job's own owner type; the ultimate owner
// type is exposed so callers can route to the customer or vendor vocabulary.
type JobInvoice struct {
	view
	job *entity.Job
}

// NewJobInvoice projects a generic invoice as a job invoice. The owner must
// be a job.
func NewJobInvoice(ctx context.Context, src repository.EntitySource, inv *entity.Invoice) (*JobInvoice, error) {
	if inv.OwnerType != enum.OwnerTypeJob {
		return nil, apperror.NewWrongInvoiceTypeError(enum.OwnerTypeJob.String(), inv.OwnerType.String())
	}
	job, err := src.JobByID(ctx, inv.OwnerID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NewNotFoundError("Job " + inv.OwnerID.String())
	}
	return &JobInvoice{
		view: view{inv: inv, src: src},
		job:  job,
	}, nil
}

// JobID returns the owning job.
func (v *JobInvoice) JobID() uuid.UUID {
	return v.job.ID
}

// Job returns the owning job entity.
func (v *JobInvoice) Job() *entity.Job {
	return v.job
}

// UltimateOwnerType returns the type of the job's own owner, deciding
// whether this job invoice behaves as a customer invoice or a vendor bill.
func (v *JobInvoice) UltimateOwnerType() enum.OwnerType {
	return v.job.OwnerType
}

// UltimateOwnerID returns the ID of the job's own owner.
func (v *JobInvoice) UltimateOwnerID() uuid.UUID {
	return v.job.OwnerID
}

// JobEntry is a line item viewed as part of a job invoice.
type JobEntry struct {
	Entry
}

// JobEntries returns the document's line items as job entries.
func (v *JobInvoice) JobEntries(ctx context.Context) ([]JobEntry, error) {
	entries, err := v.Entries(ctx)
	if err != nil {
		return nil, err
	}
	typed := make([]JobEntry, len(entries))
	for i := range entries {
		typed[i] = JobEntry{entries[i]}
	}
	return typed, nil
}
