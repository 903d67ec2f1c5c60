// Package router đăng ký các route thuộc domain Analytics: chart, metrics, edits.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticshdl "github.com/anderson2805/social-live-exploration/internal/api/analytics/handler"
	apirouter "github.com/anderson2805/social-live-exploration/internal/api/router"
)

// Register đăng ký tất cả route Analytics lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	analyticsHandler, err := analyticshdl.NewAnalyticsHandler()
	if err != nil {
		return fmt.Errorf("create analytics handler: %w", err)
	}

	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/stance-series", nil, analyticsHandler.StanceSeries)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/summary-metrics", nil, analyticsHandler.SummaryMetrics)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "POST", "/edits/compare", nil, analyticsHandler.CompareEdits)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "POST", "/edits/flush", nil, analyticsHandler.FlushEdits)
	return nil
}
