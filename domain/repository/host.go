package repository

import (
	"context"

	"bunny-video/domain/model"
)

// IPermissionChecker answers capability questions about the caller bound to ctx
type IPermissionChecker interface {
	Can(ctx context.Context, capability model.Capability) bool
}

// IRenderer produces the HTML fragments shown in host content
type IRenderer interface {
	RenderEmbed(src string) (string, error)
	RenderError(message string) (string, error)
}
