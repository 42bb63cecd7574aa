package utils

import (
	"github.com/SundayYogurt/thesis_service/internal/dto"
	"github.com/gofiber/fiber/v2"
)

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

// create a generic response function for success
func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{"data": data})
}

// ResponseValidationError lists the message for every missing field.
func ResponseValidationError(ctx *fiber.Ctx, ve *dto.ValidationError) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":  "Please fill in all required fields",
		"fields": ve.Fields,
	})
}
