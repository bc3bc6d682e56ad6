package handlers

import (
	"codex-portfolio/internal/middlewares"
)

func HandlerHealth(ctx *middlewares.AppContext) {
	ctx.SetJSONStatus(200, "OK")
}
