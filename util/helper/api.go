package helper_util

import (
	"strconv"

	"github.com/gin-gonic/gin"

	echo_errors "github.com/dev-mohitbeniwal/employee-management/errors"
)

const maxPageSize = 100

// GetPaginationParams reads limit and offset from the query string. A limit
// of 0 means no paging.
func GetPaginationParams(c *gin.Context) (limit int, offset int, err error) {
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil || limit < 0 || limit > maxPageSize {
		return 0, 0, echo_errors.ErrInvalidPagination
	}
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, echo_errors.ErrInvalidPagination
	}
	return limit, offset, nil
}
