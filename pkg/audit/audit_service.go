package audit

import (
	"Stockify-Backend/domain"
	"Stockify-Backend/entities"
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
)

type (
	AuditService interface {
		Record(ctx context.Context, tableName, recordID, action, userID, details string)
		GetAuditLogs(ctx context.Context, limit int) ([]domain.AuditLogResponse, error)
	}

	auditService struct {
		auditRepository AuditRepository
	}
)

func NewAuditService(auditRepository AuditRepository) AuditService {
	return &auditService{auditRepository: auditRepository}
}

// Record writes a trail entry. A failed write is logged, not propagated:
// the audited operation has already committed.
func (s *auditService) Record(ctx context.Context, tableName, recordID, action, userID, details string) {
	actorID, err := uuid.Parse(userID)
	if err != nil {
		log.Errorf("audit: invalid actor id %q: %v", userID, err)
		return
	}

	entry := &entities.AuditLog{
		ID:        uuid.New(),
		TableName: tableName,
		RecordID:  recordID,
		Action:    action,
		UserID:    actorID,
		Timestamp: time.Now(),
		Details:   details,
	}
	if err := s.auditRepository.CreateAuditLog(ctx, entry); err != nil {
		log.Errorf("audit: failed to record %s on %s/%s: %v", action, tableName, recordID, err)
	}
}

func (s *auditService) GetAuditLogs(ctx context.Context, limit int) ([]domain.AuditLogResponse, error) {
	entries, err := s.auditRepository.GetAuditLogs(ctx, limit)
	if err != nil {
		return nil, err
	}

	var response []domain.AuditLogResponse
	for _, entry := range entries {
		item := domain.AuditLogResponse{
			ID:        entry.ID.String(),
			TableName: entry.TableName,
			RecordID:  entry.RecordID,
			Action:    entry.Action,
			UserID:    entry.UserID.String(),
			Timestamp: entry.Timestamp,
			Details:   entry.Details,
		}
		if entry.User != nil {
			item.Username = entry.User.Username
		}
		response = append(response, item)
	}
	return response, nil
}
