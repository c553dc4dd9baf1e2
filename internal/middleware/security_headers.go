package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders adds security headers to all preview responses.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Prevent MIME type sniffing
		c.Header("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		c.Header("X-Frame-Options", "SAMEORIGIN")

		// Exported pages carry inline style attributes and an embedded theme
		// sheet, so style-src must allow inline.
		csp := "default-src 'self'; " +
			"style-src 'self' 'unsafe-inline'; " +
			"img-src 'self' data: https:; " +
			"font-src 'self' data:; " +
			"frame-src https://www.youtube.com https://player.vimeo.com"
		c.Header("Content-Security-Policy", csp)

		c.Next()
	}
}
