package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func parseUint(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	return uint(n), err
}

// pagination reads limit/offset query params with sane bounds.
func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// queryBrandID reads the required brand_id query param.
func queryBrandID(c *gin.Context) (uint, bool) {
	id, err := parseUint(c.Query("brand_id"))
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
