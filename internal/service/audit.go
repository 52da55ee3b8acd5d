package service

import (
	"context"
	"log"
	"time"

	"github.com/Nirnayjain168/Gym-Management/internal/domain"
	"github.com/Nirnayjain168/Gym-Management/internal/repository"
)

// How long a detached audit write may take before being abandoned.
const auditWriteTimeout = 5 * time.Second

// AuditLogger records user actions to the log collection. Writes are
// best-effort and never awaited: a failed audit write must not fail, slow
// down, or reorder the operation it documents. Callers pass the hex id of
// the acting user, or an empty string for unauthenticated actions.
type AuditLogger interface {
	Record(action string, details map[string]any, userID string)
}

type auditLogger struct {
	logRepo repository.LogRepository
}

// NewAuditLogger creates a new AuditLogger backed by the given repository.
func NewAuditLogger(logRepo repository.LogRepository) AuditLogger {
	return &auditLogger{logRepo: logRepo}
}

// Record fires the write on its own goroutine with a detached context, so
// it survives the originating request ending. Failures go to the process
// log only; the entry is silently lost.
func (a *auditLogger) Record(action string, details map[string]any, userID string) {
	if userID == "" {
		userID = domain.AnonymousUserID
	}
	entry := &domain.LogEntry{
		Action:  action,
		Details: details,
		UserID:  userID,
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditWriteTimeout)
		defer cancel()
		if err := a.logRepo.Create(ctx, entry); err != nil {
			log.Printf("WARN: audit write failed for action %q: %v", action, err)
		}
	}()
}

// NopAuditLogger discards everything. Handy for tests.
type NopAuditLogger struct{}

func (NopAuditLogger) Record(string, map[string]any, string) {}
