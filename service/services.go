// service/services.go
package service

import (
	"gorm.io/gorm"

	"github.com/dev-mohitbeniwal/employee-management/audit"
	"github.com/dev-mohitbeniwal/employee-management/dao"
	"github.com/dev-mohitbeniwal/employee-management/security"
	"github.com/dev-mohitbeniwal/employee-management/util"
)

type Services struct {
	Employee       IEmployeeService
	Account        IAccountService
	Administration IAdministrationService
}

// Dependencies carries everything InitializeServices wires together.
// EmployeeRepo overrides the gorm employee store, e.g. with the in-memory one.
type Dependencies struct {
	DB              *gorm.DB
	EmployeeRepo    dao.EmployeeRepository
	AuditService    audit.Service
	Obfuscator      *security.IDObfuscator
	Tokens          *security.TokenProvider
	ClaimsStore     *security.ClaimsStore
	ValidationUtil  *util.ValidationUtil
	CacheService    *util.CacheService
	NotificationSvc *util.NotificationService
	EventBus        *util.EventBus
	Photos          *util.PhotoStore
	PublicURL       string
}

func InitializeServices(deps Dependencies) (*Services, error) {
	employeeRepo := deps.EmployeeRepo
	if employeeRepo == nil {
		employeeRepo = dao.NewEmployeeDAO(deps.DB, deps.AuditService)
	}
	userDAO := dao.NewUserDAO(deps.DB, deps.AuditService)
	roleDAO := dao.NewRoleDAO(deps.DB, deps.AuditService)

	services := &Services{
		Employee: NewEmployeeService(employeeRepo, deps.Obfuscator, deps.ValidationUtil,
			deps.CacheService, deps.NotificationSvc, deps.EventBus, deps.Photos),
		Account: NewAccountService(userDAO, deps.Tokens, deps.ValidationUtil,
			deps.NotificationSvc, deps.PublicURL),
		Administration: NewAdministrationService(userDAO, roleDAO, deps.ClaimsStore,
			deps.ValidationUtil, deps.AuditService),
	}

	return services, nil
}
