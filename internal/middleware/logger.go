package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"time"
)

// Logger logs every request with its id, status and duration
func Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			started := time.Now()

			err := next(c)
			if err != nil {
				// lets error handler write the response so status below is the real one
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			entry := logrus.WithFields(logrus.Fields{
				"requestId": res.Header().Get(echo.HeaderXRequestID),
				"method":    req.Method,
				"uri":       req.RequestURI,
				"status":    res.Status,
				"duration":  time.Since(started),
			})

			switch {
			case res.Status >= 500:
				entry.WithError(err).Error("request failed")
			case res.Status >= 400:
				entry.WithError(err).Warn("request rejected")
			default:
				entry.Info("request handled")
			}

			return nil
		}
	}
}
