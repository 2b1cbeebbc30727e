// audit/service.go
package audit

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/employee-management/logging"
)

// ActorContextKey is where the authentication middleware stores the id of
// the requesting user. gin.Context resolves string keys from its own store.
const ActorContextKey = "requestingUserID"

// ActorFromContext returns the requesting user id, or "" for anonymous calls.
func ActorFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	actor, _ := ctx.Value(ActorContextKey).(string)
	return actor
}

// WithActor attaches the requesting user id to a plain context.
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ActorContextKey, userID) //nolint:staticcheck // shared with gin.Context keys
}

type Service interface {
	LogAccess(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, from, to time.Time, userID, resourceID string) ([]AuditLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogAccess(ctx context.Context, log AuditLog) error {
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}
	if log.UserID == "" {
		log.UserID = ActorFromContext(ctx)
	}
	return s.repo.LogAccess(ctx, log)
}

func (s *service) QueryLogs(ctx context.Context, from, to time.Time, userID, resourceID string) ([]AuditLog, error) {
	return s.repo.QueryLogs(ctx, from, to, userID, resourceID)
}

// Record writes an audit entry and only logs a failure; auditing never
// fails the audited operation.
func Record(ctx context.Context, svc Service, action, resourceID string, granted bool, details interface{}) {
	if svc == nil {
		return
	}
	entry := AuditLog{
		Timestamp:     time.Now(),
		UserID:        ActorFromContext(ctx),
		Action:        action,
		ResourceID:    resourceID,
		AccessGranted: granted,
	}
	if details != nil {
		if raw, err := json.Marshal(details); err == nil {
			entry.ChangeDetails = raw
		}
	}
	if err := svc.LogAccess(ctx, entry); err != nil {
		logger.Error("Failed to create audit log", zap.Error(err), zap.String("action", action))
	}
}
