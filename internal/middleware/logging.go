package middleware

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Logging creates middleware that logs every incoming update
func Logging(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if sender := c.Sender(); sender != nil {
				logger.Debug("Incoming update",
					zap.Int64("chat_id", sender.ID),
					zap.String("username", sender.Username),
				)
			}

			err := next(c)
			if err != nil {
				logger.Error("Handler returned error", zap.Error(err))
			}
			return err
		}
	}
}
