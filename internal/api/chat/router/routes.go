// Package router đăng ký các route thuộc domain Chat: Message (ingest, enrichment, đọc).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "github.com/anderson2805/social-live-exploration/internal/api/router"
	chathdl "github.com/anderson2805/social-live-exploration/internal/api/chat/handler"
)

// Register đăng ký tất cả route Chat lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	messageHandler, err := chathdl.NewMessageHandler()
	if err != nil {
		return fmt.Errorf("create chat message handler: %w", err)
	}

	// Các route nghiệp vụ của dòng ingest/enrichment
	apirouter.RegisterRouteWithMiddleware(v1, "/chat/message", "POST", "/insert-raw", nil, messageHandler.InsertRaw)
	apirouter.RegisterRouteWithMiddleware(v1, "/chat/message", "GET", "/unenriched", nil, messageHandler.FetchUnenriched)
	apirouter.RegisterRouteWithMiddleware(v1, "/chat/message", "GET", "/enriched", nil, messageHandler.FetchEnriched)
	apirouter.RegisterRouteWithMiddleware(v1, "/chat/message", "POST", "/enrich-many", nil, messageHandler.EnrichMany)
	apirouter.RegisterRouteWithMiddleware(v1, "/chat/message", "GET", "/labeled-subsets", nil, messageHandler.LabeledSubsets)

	// CRUD chỉ đọc: ghi đi qua insert-raw / enrich-many để giữ counter và filter độ dài
	r.RegisterCRUDRoutes(v1, "/chat/message", messageHandler, apirouter.ReadOnlyConfig)
	return nil
}
