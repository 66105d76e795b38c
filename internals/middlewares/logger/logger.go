package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// LoggerMiddleware: satu baris per request, menyertakan request-id yang
// dipasang di main supaya bisa dikorelasikan dengan log aplikasi.
func LoggerMiddleware() fiber.Handler {
	return logger.New(logger.Config{
		TimeFormat: time.RFC3339,
		TimeZone:   "Asia/Jakarta",
		Format:     "[${time}] ${locals:reqid} ${ip} ${method} ${path} ${status} ${latency}\n",
	})
}
