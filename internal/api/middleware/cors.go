package middleware

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORS returns a gin.HandlerFunc wrapping github.com/rs/cors, the
// CORS dependency the rest of the retrieval pack carries but the
// teacher never wires up (it calls middleware.CORS() from
// cmd/api/main.go without ever defining it). Allowed origins come from
// CORS_ALLOWED_ORIGINS (comma-separated); an empty value allows all
// origins, matching local-development defaults elsewhere in the pack.
func CORS() gin.HandlerFunc {
	var origins []string
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			origins = append(origins, strings.TrimSpace(o))
		}
	} else {
		origins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	})

	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)
		if ctx.Request.Method == "OPTIONS" {
			ctx.AbortWithStatus(204)
			return
		}
		ctx.Next()
	}
}
