package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"studybuddy/pkg/response"
)

func (srv *HTTPServer) setupCacheRoutes(ctx context.Context, api *gin.RouterGroup) {
	if srv.cacheStore == nil {
		srv.l.Infof(ctx, "Cache not configured, skipping cache routes")
		return
	}
	api.GET("/cache/stats", srv.cacheStats)
	api.DELETE("/cache", srv.cacheClear)
	srv.l.Infof(ctx, "Cache routes registered")
}

// cacheStats reports translation cache effectiveness
// @Summary Cache statistics
// @Description Returns cache hit/miss counters and the average remote call latency.
// @Tags Cache
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Cache statistics"
// @Router /api/v1/cache/stats [get]
func (srv *HTTPServer) cacheStats(c *gin.Context) {
	stats := srv.cacheStore.Stats()
	response.OK(c, gin.H{
		"hits":          stats.Hits,
		"misses":        stats.Misses,
		"hit_rate":      stats.HitRate(),
		"calls_saved":   stats.CallsSaved,
		"time_saved_ms": stats.TimeSaved.Milliseconds(),
	})
}

// cacheClear empties the cache
// @Summary Clear cache
// @Description Drops all cached entries and resets counters.
// @Tags Cache
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp "OK"
// @Router /api/v1/cache [delete]
func (srv *HTTPServer) cacheClear(c *gin.Context) {
	srv.cacheStore.Clear()
	response.OK(c, nil)
}
