// Package identity answers permission questions about an authenticated actor.
package identity

import (
	"context"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase/interfaces"
)

// Wildcard grants every permission.
const Wildcard = "*"

// ClaimsPermissionChecker trusts the permission claims that the gateway in
// front of this service attached to the actor. Users listed as superusers
// hold every permission regardless of claims.
type ClaimsPermissionChecker struct {
	superusers map[string]struct{}
}

var _ interfaces.IPermissionChecker = (*ClaimsPermissionChecker)(nil)

func NewClaimsPermissionChecker(superusers ...string) *ClaimsPermissionChecker {
	set := make(map[string]struct{}, len(superusers))
	for _, id := range superusers {
		if id != "" {
			set[id] = struct{}{}
		}
	}
	return &ClaimsPermissionChecker{superusers: set}
}

func (c *ClaimsPermissionChecker) HasPermission(_ context.Context, actor entities.Actor, permission string) bool {
	if !actor.Authenticated() {
		return false
	}
	if _, ok := c.superusers[actor.UserID]; ok {
		return true
	}
	for _, p := range actor.Permissions {
		if p == permission || p == Wildcard {
			return true
		}
	}
	return false
}
