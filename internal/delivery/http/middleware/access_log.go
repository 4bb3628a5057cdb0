package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const CtxRequestIDKey = "request_id"

type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(fiber.HeaderXRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(fiber.HeaderXRequestID, rid)
		c.Locals(CtxRequestIDKey, rid)

		err := c.Next()

		m.logger.Printf(
			"[HTTP] access rid=%s ip=%s method=%s path=%s status=%d latency=%s lang=%s ua=%q",
			rid,
			c.IP(),
			c.Method(),
			c.OriginalURL(),
			c.Response().StatusCode(),
			time.Since(start),
			LanguageFrom(c),
			c.Get(fiber.HeaderUserAgent),
		)

		return err
	}
}
