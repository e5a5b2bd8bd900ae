package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/aislechef-backend/internal/http/response"
)

// parseID reads a positive integer path parameter, writing a 400 on failure.
func parseID(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid %s %q", name, raw))
		return 0, false
	}
	return uint(id), true
}

// optionalID reads a non-negative integer query parameter; missing means 0.
func optionalID(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_id", fmt.Errorf("invalid %s %q", name, raw))
		return 0, false
	}
	return uint(id), true
}

func queryBool(c *gin.Context, name string) (bool, bool) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return false, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_query", fmt.Errorf("invalid %s %q", name, raw))
		return false, false
	}
	return v, true
}
