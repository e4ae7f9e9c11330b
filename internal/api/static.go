package api

import (
	"net/http" // HTTP status codes

	"nanotify/internal/web" // Embedded static files

	"github.com/gin-gonic/gin" // Gin web framework
)

// StaticHandler serves an embedded static file with a fixed content type
func StaticHandler(name, contentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := web.Static(name)
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		c.Data(http.StatusOK, contentType, data)
	}
}
