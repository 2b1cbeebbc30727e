// util/cache_service.go

package util

import (
	"context"

	"github.com/dev-mohitbeniwal/employee-management/db"
	"github.com/dev-mohitbeniwal/employee-management/model"
)

type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

// GetEmployee returns nil, nil on a cache miss.
func (c *CacheService) GetEmployee(ctx context.Context, employeeID int) (*model.Employee, error) {
	return db.GetCachedEmployee(ctx, employeeID)
}

func (c *CacheService) SetEmployee(ctx context.Context, employee model.Employee) error {
	return db.CacheEmployee(ctx, &employee)
}

func (c *CacheService) DeleteEmployee(ctx context.Context, employeeID int) error {
	return db.DeleteCachedEmployee(ctx, employeeID)
}
