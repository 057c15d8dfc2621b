package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"

	"bunny-video/domain/dto"
	"bunny-video/domain/model"
	"bunny-video/infrastructure/logger"
)

type claimsKey struct{}

// Auth binds the caller's JWT claims to the request context. Requests without an
// Authorization header continue as anonymous; a header that does not verify is rejected.
func Auth(secretKey string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authorization := ctx.Request.Header.Get("Authorization")
		if authorization == "" || secretKey == "" {
			ctx.Next()
			return
		}

		res := dto.Res{ResponseCode: "401", ResponseMessage: "Unauthorized"}
		token := strings.TrimPrefix(authorization, "Bearer ")
		if token == authorization || token == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		userClaims, err := getClaim(token, secretKey)
		if err != nil {
			res.ResponseMessage = rejectReason(err)
			logger.GetLogger().WithFields(map[string]interface{}{
				"error":     err,
				"requestId": ctx.GetString(RequestIDKey),
			}).Warn("Rejected bearer token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, res)
			return
		}

		ctx.Set("user_name", userClaims.UserName)
		ctx.Request = ctx.Request.WithContext(WithClaims(ctx.Request.Context(), userClaims))
		ctx.Next()
	}
}

func rejectReason(err error) string {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		if ve.Errors&jwt.ValidationErrorMalformed != 0 {
			return "That's not even a token"
		}
		if ve.Errors&(jwt.ValidationErrorExpired|jwt.ValidationErrorNotValidYet) != 0 {
			return "Timing is everything"
		}
	}
	return fmt.Sprintf("Couldn't handle this token: %v", err)
}

func getClaim(token, secretKey string) (model.UserClaims, error) {
	var userClaims model.UserClaims
	parsed, err := jwt.ParseWithClaims(
		token,
		&userClaims,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		},
	)
	if err != nil {
		return model.UserClaims{}, err
	}
	if !parsed.Valid {
		return model.UserClaims{}, errors.New("token is not valid")
	}
	return userClaims, nil
}

// WithClaims returns a copy of ctx carrying claims.
func WithClaims(ctx context.Context, claims model.UserClaims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the claims bound by Auth, if any.
func ClaimsFromContext(ctx context.Context) (model.UserClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(model.UserClaims)
	return claims, ok
}
