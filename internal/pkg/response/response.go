package response

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody matches the Express error shape: { message, error? }.
type ErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// JSON sends 200 with the entity or list as-is (Express res.json parity —
// no envelope).
func JSON(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// Created sends 201 with the created entity.
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// Message sends 200 with just a message (delete confirmations).
func Message(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": message})
}

// Error sends the Express error shape with the given status.
func Error(c *fiber.Ctx, message string, statusCode int, err error) error {
	body := ErrorBody{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	return c.Status(statusCode).JSON(body)
}

// Unauthorized sends 401 with the standard error shape.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, message, fiber.StatusUnauthorized, nil)
}
