package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pajudata/scrapyard_backend/config"
	"github.com/pajudata/scrapyard_backend/models"
	"github.com/pajudata/scrapyard_backend/models/reports"
	"github.com/sirupsen/logrus"
)

const defaultPort = "8080"

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func intQuery(c *gin.Context, key string, def int) int {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// analyticsHandler serves the person-side analytics. The report is picked by
// the type query param; year=0 (or absent) means all years.
func analyticsHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		year := intQuery(c, "year", 0)

		var (
			result any
			err    error
		)
		switch c.Query("type") {
		case "overview":
			result, err = reports.GetOverview(ctx)
		case "monthly":
			result, err = reports.GetMonthlySummary(ctx, year)
		case "yearly":
			result, err = reports.GetYearlySummary(ctx)
		case "county":
			result, err = reports.GetCountyBreakdown(ctx, year)
		case "age":
			result, err = reports.GetAgeGroups(ctx)
		case "weekday":
			result, err = reports.GetWeekdayActivity(ctx)
		case "top-partners":
			result, err = reports.GetTopPartners(ctx, intQuery(c, "limit", 20), year)
		case "waste-categories":
			result, err = reports.GetWasteCategorySummary(ctx, year)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown report type"})
			return
		}
		if err != nil {
			config.LogError(config.GetLogger(), "server.go", "analyticsHandler", c.Query("type"), nil, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "report failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": result})
	}
}

func firmeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		year := intQuery(c, "year", 0)

		var (
			result any
			err    error
		)
		switch c.Query("type") {
		case "overview":
			result, err = reports.GetFirmeOverview(ctx, year)
		case "top":
			result, err = reports.GetTopFirme(ctx, intQuery(c, "limit", 20), year)
		case "deseuri":
			result, err = reports.GetSumarDeseuri(ctx, year)
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown report type"})
			return
		}
		if err != nil {
			config.LogError(config.GetLogger(), "server.go", "firmeHandler", c.Query("type"), nil, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "report failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": result})
	}
}

func customErrorLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		for _, ginErr := range c.Errors {
			logger.WithFields(logrus.Fields{
				"path":   c.Request.URL.Path,
				"status": c.Writer.Status(),
			}).Error(ginErr.Error())
		}
	}
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	logger := config.GetLogger()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	// Start the HTTP server before the database is ready; the readiness gate
	// answers 503 until the connection is up.
	r := gin.New()
	r.Use(func(c *gin.Context) {
		cid := c.GetHeader("x-correlation-id")
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Header("x-correlation-id", cid)
		c.Next()
	})
	r.Use(func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}
		if config.GetDB() == nil {
			c.AbortWithStatus(http.StatusServiceUnavailable)
			return
		}
		c.Next()
	})
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	corsConfig := cors.DefaultConfig()
	allowedOrigins := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if strings.EqualFold(strings.TrimSpace(os.Getenv("GO_ENV")), "production") {
		if allowedOrigins == "" {
			corsConfig.AllowOrigins = []string{}
		} else {
			corsConfig.AllowOrigins = splitAndTrim(allowedOrigins)
		}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "OPTIONS")
	corsConfig.AddAllowHeaders("Origin", "Content-Type", "Authorization")
	r.Use(cors.New(corsConfig))

	r.Use(customErrorLogger(logger))
	r.Use(gin.Recovery())

	r.GET("/api/analytics", analyticsHandler())
	r.GET("/api/firme", firmeHandler())

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		serverErrCh <- srv.ListenAndServe()
	}()

	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	sqlDB, _ := db.DB()
	defer func() {
		if sqlDB != nil {
			_ = sqlDB.Close()
		}
	}()
	if !strings.EqualFold(strings.TrimSpace(os.Getenv("SKIP_MIGRATIONS")), "true") {
		models.MigrateTable()
	} else {
		logger.WithFields(logrus.Fields{"field": "migrations"}).Warn("SKIP_MIGRATIONS=true; skipping AutoMigrate on startup")
	}

	logger.WithFields(logrus.Fields{"port": port}).Info("server listening")

	select {
	case err := <-serverErrCh:
		if err != nil && err != http.ErrServerClosed {
			logger.Fatal(err.Error())
		}
	case <-sigCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			config.LogError(logger, "server.go", "main", "srv.Shutdown", nil, err)
		}
	}
}
