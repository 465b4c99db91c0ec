package handlers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

// bindUpdates reads a partial-update body and keeps only whitelisted fields,
// so clients cannot touch internal fields like created_at or _id.
func bindUpdates(c *gin.Context, allowed ...string) (map[string]interface{}, error) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}

	updates := make(map[string]interface{})
	for _, field := range allowed {
		if value, ok := body[field]; ok {
			updates[field] = value
		}
	}
	if len(updates) == 0 {
		return nil, errors.New("no updatable fields provided")
	}

	return updates, nil
}
