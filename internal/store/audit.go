package store

import (
	"fmt"

	"polar-backend/internal/models"
	"polar-backend/internal/timeutil"

	"go.uber.org/zap"
)

// timestamp renders the current store time as the activity log shows it
func (s *Store) timestamp() string {
	return timeutil.FormatRU(s.now())
}

// appendLog prepends one activity entry. Must be called with s.mu held.
// Ids come from a monotonic counter so entries written within the same second stay distinct.
func (s *Store) appendLog(a models.Actor, action, entity, entityID, stamp string) models.ActionLog {
	s.logSeq++
	entry := models.ActionLog{
		ID:        fmt.Sprintf("l%d", s.logSeq),
		UserID:    a.UserID,
		UserName:  a.UserName,
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Timestamp: stamp,
	}
	s.logs = append([]models.ActionLog{entry}, s.logs...)

	s.logger.Debug("[Audit] "+action,
		zap.String("log_id", entry.ID),
		zap.String("entity", entity),
		zap.String("entity_id", entityID),
		zap.String("user_id", a.UserID),
	)
	return entry
}
