// controller/controllers.go
package controller

import "github.com/dev-mohitbeniwal/employee-management/service"

type Controllers struct {
	Employee       *EmployeeController
	Account        *AccountController
	Administration *AdministrationController
}

func InitializeControllers(services *service.Services, external ExternalLoginVerifier) *Controllers {
	return &Controllers{
		Employee:       NewEmployeeController(services.Employee),
		Account:        NewAccountController(services.Account, external),
		Administration: NewAdministrationController(services.Administration),
	}
}
