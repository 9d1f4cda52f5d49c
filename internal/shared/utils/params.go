package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/solvia-inc/solvia/internal/shared/constants"
	"github.com/solvia-inc/solvia/internal/shared/errors"
)

// ParseIDParam parses and validates a numeric ID from a URL path parameter.
// entityName is used in error messages (e.g., "solution", "domain").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}
	if id == 0 {
		return 0, errors.NewValidationError(entityName + " ID must be greater than 0")
	}
	return uint(id), nil
}

// ParsePagination extracts page/page_size query parameters with defaults.
func ParsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < constants.DefaultPage {
		page = constants.DefaultPage
	}

	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}

	return page, pageSize
}
