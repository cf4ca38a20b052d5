package utils

import (
	"errors"

	apperrors "walletledger/internal/errors"

	"github.com/gofiber/fiber/v2"
)

// Respond sends a JSON response with the specified status code.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Success sends a successful JSON response.
func Success(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusOK, data)
}

// Created sends a JSON response with status 201.
func Created(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusCreated, data)
}

// NoContent sends an empty response with status 204.
func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

// BadRequest sends a JSON error response with status 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusBadRequest, fiber.Map{"error": message})
}

// NotFound sends a JSON error response with status 404.
func NotFound(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusNotFound, fiber.Map{"error": message})
}

// InternalError sends a JSON error response with status 500.
func InternalError(c *fiber.Ctx, message string) error {
	return Respond(c, fiber.StatusInternalServerError, fiber.Map{"error": message})
}

// FieldError sends a 400 response attributing the failure to one field.
func FieldError(c *fiber.Ctx, field, message string) error {
	return Respond(c, fiber.StatusBadRequest, fiber.Map{
		"errors": fiber.Map{field: message},
	})
}

// ValidationError maps a validation failure to a field-attributed 400. It
// falls back to a plain bad-request body when the error carries no field.
func ValidationError(c *fiber.Ctx, err error) error {
	var fieldErr *apperrors.FieldError
	if errors.As(err, &fieldErr) {
		return FieldError(c, fieldErr.Field, fieldErr.Message)
	}
	return BadRequest(c, err.Error())
}
