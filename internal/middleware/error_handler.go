package middleware

import (
	"errors"
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const localStack = "panic_stack"

const (
	ActionReload = "reload"
	ActionHome   = "home"
)

// Recover menangkap panic di handler dan meneruskannya ke ErrorHandler.
func Recover(development bool) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			stack := debug.Stack()
			log.Printf("[PANIC] %s %s: %v\n%s", c.Method(), c.Path(), e, stack)
			if development {
				c.Locals(localStack, string(stack))
			}
		},
	})
}

// ErrorHandler adalah batas error terakhir. Error yang tidak tertangani handler
// ditampilkan sebagai panel "Terjadi kesalahan" dengan aksi muat ulang / ke beranda.
func ErrorHandler(development bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
			return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
		}

		log.Printf("[ERROR] %s %s: %v", c.Method(), c.Path(), err)
		body := fiber.Map{
			"error":   "Terjadi kesalahan",
			"message": "Maaf, terjadi kesalahan yang tidak terduga. Silakan muat ulang halaman atau kembali ke beranda.",
			"actions": []string{ActionReload, ActionHome},
		}
		if development {
			body["detail"] = err.Error()
			if stack, ok := c.Locals(localStack).(string); ok {
				body["stack"] = stack
			}
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
}
