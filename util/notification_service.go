// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/dev-mohitbeniwal/employee-management/logging"
	"github.com/dev-mohitbeniwal/employee-management/model"
)

// EmailSender delivers account emails such as confirmation and reset links.
type EmailSender interface {
	SendEmail(ctx context.Context, recipient, subject, body string) error
}

// NotificationService has no outbound mail transport; messages are written
// to the log where an operator can pick the link up.
type NotificationService struct{}

var _ EmailSender = &NotificationService{}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyEmployeeChange(ctx context.Context, changeType string, employee model.Employee) error {
	switch changeType {
	case "created":
		logger.Info("NOTIFICATION: New employee created",
			zap.Int("employeeID", employee.ID),
			zap.String("name", employee.Name),
			zap.String("department", string(employee.Department)))
	case "updated":
		logger.Info("NOTIFICATION: Employee updated",
			zap.Int("employeeID", employee.ID),
			zap.String("name", employee.Name))
	case "deleted":
		logger.Info("NOTIFICATION: Employee deleted",
			zap.Int("employeeID", employee.ID))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) SendEmail(ctx context.Context, recipient, subject, body string) error {
	logger.Warn("Sending email",
		zap.String("recipient", recipient),
		zap.String("subject", subject),
		zap.String("body", body))
	return nil
}

func (n *NotificationService) NotifyAdmins(ctx context.Context, message string) error {
	logger.Info("Notifying admins", zap.String("message", message))
	return nil
}
