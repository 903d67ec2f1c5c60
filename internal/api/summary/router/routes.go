// Package router đăng ký các route thuộc domain Summary: sinh và đọc summary bundle.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "github.com/anderson2805/social-live-exploration/internal/api/router"
	summaryhdl "github.com/anderson2805/social-live-exploration/internal/api/summary/handler"
)

// Register đăng ký tất cả route Summary lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	summaryHandler, err := summaryhdl.NewSummaryHandler()
	if err != nil {
		return fmt.Errorf("create summary handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/summary", "POST", "/generate", nil, summaryHandler.Generate)
	apirouter.RegisterRouteWithMiddleware(v1, "/summary", "GET", "/latest", nil, summaryHandler.Latest)

	// CRUD chỉ đọc: bundle là append-only, ghi duy nhất qua /generate
	r.RegisterCRUDRoutes(v1, "/summary", summaryHandler, apirouter.ReadOnlyConfig)
	return nil
}
