// Package router đăng ký các route thuộc domain Collection: registry URL thu thập.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	collectionhdl "github.com/anderson2805/social-live-exploration/internal/api/collection/handler"
	apirouter "github.com/anderson2805/social-live-exploration/internal/api/router"
)

// Register đăng ký tất cả route Collection lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	collectionHandler, err := collectionhdl.NewCollectionHandler()
	if err != nil {
		return fmt.Errorf("create collection handler: %w", err)
	}

	// Vòng đời của một URL trong registry
	apirouter.RegisterRouteWithMiddleware(v1, "/collection", "POST", "/register", nil, collectionHandler.Register)
	apirouter.RegisterRouteWithMiddleware(v1, "/collection", "PUT", "/set-status", nil, collectionHandler.SetStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/collection", "GET", "/list-by-status", nil, collectionHandler.ListByStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/collection", "DELETE", "/delete", nil, collectionHandler.Delete)
	apirouter.RegisterRouteWithMiddleware(v1, "/collection", "GET", "/check-status", nil, collectionHandler.CheckStatus)

	// Trạng thái chung của dịch vụ thu thập
	apirouter.RegisterRouteWithMiddleware(v1, "/collection", "GET", "/service-status", nil, collectionHandler.GetServiceStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/collection", "PUT", "/service-status", nil, collectionHandler.SetServiceStatus)

	// CRUD chỉ đọc: ghi đi qua register / set-status / delete để giữ bất biến của registry
	r.RegisterCRUDRoutes(v1, "/collection", collectionHandler, apirouter.ReadOnlyConfig)
	return nil
}
