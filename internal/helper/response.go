package helper

import (
	"errors"
	"log"

	"e-presensi-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

// Success Response (default 200)
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return SuccessWithCode(c, fiber.StatusOK, message, data)
}

// SuccessWithCode, contoh 201 untuk created
func SuccessWithCode(c *fiber.Ctx, code int, message string, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{"error": message})
}

// ErrorWithDetails mengirim pesan per field (validasi profil)
func ErrorWithDetails(c *fiber.Ctx, code int, message string, details interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"error":  message,
		"errors": details,
	})
}

// StatusOf memetakan jenis error usecase ke HTTP status.
func StatusOf(err error) int {
	switch usecase.KindOf(err) {
	case usecase.KindValidation:
		return fiber.StatusBadRequest
	case usecase.KindNotFound:
		return fiber.StatusNotFound
	case usecase.KindConflict:
		return fiber.StatusConflict
	case usecase.KindUnauthorized:
		return fiber.StatusUnauthorized
	case usecase.KindForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// FromError menulis error usecase sebagai JSON.
func FromError(c *fiber.Ctx, err error) error {
	code := StatusOf(err)
	if code == fiber.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
	}
	var ue *usecase.Error
	if errors.As(err, &ue) && len(ue.Fields) > 0 {
		return ErrorWithDetails(c, code, ue.Message, ue.Fields)
	}
	return Error(c, code, err.Error())
}
