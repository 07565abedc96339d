package apihandlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"quest/internal/models"
)

const defaultListLimit = 20

type Pagination struct {
	Limit  int
	Offset int
}

// parsePagination extracts limit/offset query parameters. Absent
// parameters fall back to defaults; malformed or negative values are a
// validation failure.
func parsePagination(c *gin.Context) (Pagination, error) {
	p := Pagination{Limit: defaultListLimit}

	if raw, ok := c.GetQuery("limit"); ok {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return p, models.ValidationError(fmt.Errorf("invalid limit %q", raw))
		}
		p.Limit = limit
	}
	if raw, ok := c.GetQuery("offset"); ok {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return p, models.ValidationError(fmt.Errorf("invalid offset %q", raw))
		}
		p.Offset = offset
	}
	return p, nil
}
