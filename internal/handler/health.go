package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health godoc
// @Summary Liveness of the API and its postgres/redis dependencies
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
//
// Losing redis degrades login and backups; losing postgres takes the ledger
// down, so either failure reports 503.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		ledgerDB := "up"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			ledgerDB = "down"
		}

		otpStore := "up"
		if rdb.Ping(ctx).Err() != nil {
			otpStore = "down"
		}

		status := http.StatusOK
		if ledgerDB == "down" || otpStore == "down" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":       status == http.StatusOK,
			"postgres": ledgerDB,
			"redis":    otpStore,
		})
	}
}
