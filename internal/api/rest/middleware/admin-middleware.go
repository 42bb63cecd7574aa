package middleware

import (
	"log"

	"github.com/SundayYogurt/thesis_service/internal/helper"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
)

// AdminGuard returns basic auth for the admin routes when credentials are
// configured, and nil (no guard) otherwise. passwordHash is a bcrypt hash.
func AdminGuard(username, passwordHash string) fiber.Handler {
	auth := helper.SetupAdminAuth(username, passwordHash)
	if !auth.Enabled() {
		log.Println("WARNING: ADMIN_USERNAME/ADMIN_PASSWORD_HASH not set - admin routes are unprotected")
		return nil
	}

	return basicauth.New(basicauth.Config{
		Realm:      "Thesis Admin",
		Authorizer: auth.Authorize,
		Unauthorized: func(ctx *fiber.Ctx) error {
			ctx.Set(fiber.HeaderWWWAuthenticate, `Basic realm="Thesis Admin"`)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		},
	})
}
