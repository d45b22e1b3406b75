package middleware

import (
	"cardstack/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// AuthMiddleware creates authentication middleware
func AuthMiddleware(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			// Check authorization
			authorized, err := authService.IsAuthorized(userID)
			if err != nil {
				logger.Error("Failed to check authorization in middleware", zap.Error(err))
				return c.Send("Something went wrong. Please try again later.")
			}

			// If not authorized, prompt for password
			if !authorized {
				logger.Debug("Rejected unauthorized user", zap.Int64("user_id", userID))
				if c.Callback() != nil {
					_ = c.Respond()
				}
				return c.Send("Hi! Send the password to continue:")
			}

			// User is authorized, continue
			return next(c)
		}
	}
}
