package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finbook/bookfile-api/internal/domain/entity"
	domainRepo "github.com/finbook/bookfile-api/internal/domain/repository"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) GetByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.InvoiceEntry{}, "invoice_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Invoice{}, "id = ?", id).Error
	})
}

func (r *invoiceRepository) List(ctx context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{})

	if params.Search != "" {
		query = query.Where("number ILIKE ? OR description ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.OwnerType != nil {
		query = query.Where("owner_type = ?", *params.OwnerType)
	}
	if params.OwnerID != nil {
		query = query.Where("owner_id = ?", *params.OwnerID)
	}
	if params.Posted != nil {
		if *params.Posted {
			query = query.Where("lot_id IS NOT NULL")
		} else {
			query = query.Where("lot_id IS NULL")
		}
	}
	if params.StartDate != nil {
		query = query.Where("date_opened >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("date_opened <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("date_opened DESC, number DESC").
		Find(&invoices).Error

	return invoices, total, err
}

func (r *invoiceRepository) GetWithEntries(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("invoice_entries.seq ASC")
		}).
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

type invoiceEntryRepository struct {
	db *gorm.DB
}

// NewInvoiceEntryRepository creates a new invoice entry repository
func NewInvoiceEntryRepository(db *gorm.DB) domainRepo.InvoiceEntryRepository {
	return &invoiceEntryRepository{db: db}
}

func (r *invoiceEntryRepository) Create(ctx context.Context, entry *entity.InvoiceEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *invoiceEntryRepository) CreateBatch(ctx context.Context, entries []entity.InvoiceEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}

func (r *invoiceEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InvoiceEntry, error) {
	var entry entity.InvoiceEntry
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &entry, err
}

func (r *invoiceEntryRepository) GetByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceEntry, error) {
	var entries []entity.InvoiceEntry
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("seq ASC").
		Find(&entries).Error
	return entries, err
}

func (r *invoiceEntryRepository) Update(ctx context.Context, entry *entity.InvoiceEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *invoiceEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.InvoiceEntry{}, "id = ?", id).Error
}
