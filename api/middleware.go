package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stock-pulse/logging"
	"stock-pulse/metrics"
	"stock-pulse/models"
	"stock-pulse/service"
)

const (
	msgInternal         = "Internal Server Error"
	msgNotFound         = "Not Found"
	msgMethodNotAllowed = "Method Not Allowed"
)

// Error renders the first error attached to the context as {"message": ...}.
func Error() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors[0].Err

		var se *service.StatusError
		if errors.As(err, &se) {
			c.AbortWithStatusJSON(se.StatusCode, models.ErrorBody{Message: se.Message})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorBody{Message: err.Error()})
	}
}

// NotFound answers unmatched paths in the shared error shape.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorBody{Message: msgNotFound})
}

// MethodNotAllowed answers known paths hit with an unrouted method.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, models.ErrorBody{Message: msgMethodNotAllowed})
}

// Timeout bounds the request context. Provider calls observe the deadline.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Recovery turns a handler panic into a logged 500.
func Recovery(log *logging.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		log.Error("handler panic", "path", c.Request.URL.Path, "panic", fmt.Sprint(rec))
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorBody{Message: msgInternal})
	})
}

// CORS admits any origin with credentials and every method. Browsers ignore a
// wildcard Access-Control-Allow-Headers on credentialed requests, so preflights
// get the requested headers echoed back instead.
func CORS() gin.HandlerFunc {
	handler := cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions && c.GetHeader("Origin") != "" {
			if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
				c.Header("Access-Control-Allow-Headers", requested)
			}
		}
		handler(c)
	}
}

// RequestLogger logs one line per request.
func RequestLogger(log *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}

// Metrics records request counts and latency per route template.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		metrics.RecordHTTPRequest(endpoint, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
