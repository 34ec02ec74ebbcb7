package delivery

import (
	"strconv"
	"strings"

	"catalog_service/internal/domain"

	"github.com/gin-gonic/gin"
)

// parseID only rejects ids that are not integers. Zero and negative ids
// reach the store and come back as not found.
func parseID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.Validation("Invalid ID '%s'", raw)
	}
	return id, nil
}

func queryInt(c *gin.Context, def int, keys ...string) (int, error) {
	for _, key := range keys {
		raw, ok := c.GetQuery(key)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, domain.Validation("Invalid value '%s' for parameter '%s'", raw, key)
		}
		return v, nil
	}
	return def, nil
}

func queryString(c *gin.Context, keys ...string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(c.Query(key)); v != "" {
			return v
		}
	}
	return ""
}

// parsePageRequest reads page, size (or linesPerPage), sort (or orderBy)
// and direction. sort also accepts the "field,dir" form; an explicit
// direction parameter wins over the one embedded in sort.
func parsePageRequest(c *gin.Context, defaultDir domain.Direction) (domain.PageRequest, error) {
	req := domain.PageRequest{Sort: "name", Direction: defaultDir}

	var err error
	if req.Page, err = queryInt(c, 0, "page"); err != nil {
		return req, err
	}
	if req.Size, err = queryInt(c, domain.DefaultPageSize, "size", "linesPerPage"); err != nil {
		return req, err
	}

	if sort := queryString(c, "sort", "orderBy"); sort != "" {
		field, dir, hasDir := strings.Cut(sort, ",")
		req.Sort = strings.TrimSpace(field)
		if hasDir {
			if req.Direction, err = domain.ParseDirection(dir); err != nil {
				return req, err
			}
		}
	}
	if dir := queryString(c, "direction"); dir != "" {
		if req.Direction, err = domain.ParseDirection(dir); err != nil {
			return req, err
		}
	}
	return req, nil
}
