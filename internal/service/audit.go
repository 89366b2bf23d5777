package service

import (
	"context"
	"encoding/json"

	"campuseats/internal/entity"
	"campuseats/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// Auditor appends security-relevant events to the audit trail. A nil
// Auditor and a failing insert are both fine: auditing never fails the
// operation being audited.
type Auditor struct {
	logs   repository.AuditLogRepository
	logger *logrus.Logger
}

func NewAuditor(logs repository.AuditLogRepository, logger *logrus.Logger) *Auditor {
	return &Auditor{logs: logs, logger: logger}
}

func (a *Auditor) Record(
	ctx context.Context,
	accountID *uuid.UUID,
	actorKind string,
	ip *string,
	action entity.AuditAction,
	metadata map[string]any,
) {
	if a == nil || a.logs == nil {
		return
	}
	var payload datatypes.JSON
	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err == nil {
			payload = datatypes.JSON(bytes)
		}
	}
	log := &entity.AuditLog{
		AccountID: accountID,
		ActorKind: actorKind,
		IPAddress: ip,
		Action:    action,
		Metadata:  payload,
	}
	if err := a.logs.Log(ctx, log); err != nil && a.logger != nil {
		a.logger.WithError(err).WithField("action", action).Warn("audit write failed")
	}
}
