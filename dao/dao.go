// dao/dao.go
package dao

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
)

// dbError maps a gorm error onto the domain sentinels.
func dbError(err error, notFound, conflict error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil:
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey) && conflict != nil:
		return conflict
	default:
		return fmt.Errorf("%w: %v", echo_errors.ErrDatabaseOperation, err)
	}
}
