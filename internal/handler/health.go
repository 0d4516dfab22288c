package handler

import (
	"context"
	"net/http"
	"time"

	"restaurante/internal/infra"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Health returns a JSON health check response.
// Checks DB and cache connectivity; never exposes credentials or internals.
func Health(db *gorm.DB, cache infra.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		cacheStatus := "connected"
		if cache.Ping(ctx) != nil {
			cacheStatus = "error"
		}

		status := http.StatusOK
		if dbStatus != "connected" || cacheStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":    status == http.StatusOK,
			"db":    dbStatus,
			"cache": gin.H{"status": cacheStatus, "backend": cache.Backend()},
		})
	}
}
