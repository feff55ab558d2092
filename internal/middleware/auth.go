package middleware

import (
	"strings"

	"treinahub_backend/internal/config"
	"treinahub_backend/internal/model"
	"treinahub_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware valida o token Bearer e injeta as claims no contexto.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			util.Unauthorized(c, "Token de autenticação ausente")
			c.Abort()
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			util.Unauthorized(c, "Formato de autorização inválido")
			c.Abort()
			return
		}
		claims, err := util.ParseJWT(parts[1], cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c, "Token inválido ou expirado")
			c.Abort()
			return
		}
		c.Set("user", claims)
		c.Next()
	}
}

// RoleMiddleware restringe a rota aos papéis informados.
func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c, "Não autenticado")
			c.Abort()
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}
		util.Forbidden(c, "Acesso restrito")
		c.Abort()
	}
}
