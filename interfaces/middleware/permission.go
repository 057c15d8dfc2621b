package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bunny-video/domain/dto"
	"bunny-video/domain/model"
	"bunny-video/domain/repository"
)

// ClaimsPermissionChecker answers capability checks from the claims Auth put on the context.
// Anonymous callers have no capabilities.
type ClaimsPermissionChecker struct{}

func NewClaimsPermissionChecker() repository.IPermissionChecker {
	return ClaimsPermissionChecker{}
}

func (ClaimsPermissionChecker) Can(ctx context.Context, capability model.Capability) bool {
	claims, ok := ClaimsFromContext(ctx)
	if !ok {
		return false
	}
	return claims.Has(capability)
}

// RequireCapability aborts with 403 unless the caller holds capability.
func RequireCapability(checker repository.IPermissionChecker, capability model.Capability) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !checker.Can(ctx.Request.Context(), capability) {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.Res{
				ResponseCode:    "403",
				ResponseMessage: "Forbidden",
			})
			return
		}
		ctx.Next()
	}
}
