package audit

import (
	"Stockify-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	AuditRepository interface {
		CreateAuditLog(ctx context.Context, entry *entities.AuditLog) error
		GetAuditLogs(ctx context.Context, limit int) ([]*entities.AuditLog, error)
		CountAuditLogsByUser(ctx context.Context, userID string) (int64, error)
	}

	auditRepository struct {
		db *gorm.DB
	}
)

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) CreateAuditLog(ctx context.Context, entry *entities.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *auditRepository) GetAuditLogs(ctx context.Context, limit int) ([]*entities.AuditLog, error) {
	var entries []*entities.AuditLog
	query := r.db.WithContext(ctx).Preload("User").Order("timestamp desc")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *auditRepository) CountAuditLogsByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.AuditLog{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
