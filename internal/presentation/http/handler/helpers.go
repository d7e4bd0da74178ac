package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetUserID returns the authenticated user's ID, or nil when the request is
// unauthenticated.
func GetUserID(c *gin.Context) *uuid.UUID {
	val, ok := c.Get("user_id")
	if !ok {
		return nil
	}
	id, ok := val.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

// GetUserRoles returns the role names attached to the access token.
func GetUserRoles(c *gin.Context) []string {
	val, ok := c.Get("user_roles")
	if !ok {
		return nil
	}
	roles, _ := val.([]string)
	return roles
}

// IsSuperAdmin reports whether the current user carries the super-admin role.
func IsSuperAdmin(c *gin.Context) bool {
	for _, role := range GetUserRoles(c) {
		if role == "super-admin" {
			return true
		}
	}
	return false
}
