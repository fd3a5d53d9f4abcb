package web

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDKey = "request_id"

// requestID makes sure every request has an identifier. One sent by the
// client in X-Request-ID is kept, otherwise a random UUID is used.
func requestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := c.Request().Header.Get(echo.HeaderXRequestID)
		if len(id) == 0 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Response().Header().Set(echo.HeaderXRequestID, id)
		return next(c)
	}
}

// logRequests logs every request once it has been served and counts it.
func (s *Server) logRequests(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}

		req, res := c.Request(), c.Response()
		route := c.Path()
		if len(route) == 0 {
			route = "unmatched"
		}
		s.metrics.requests.
			WithLabelValues(req.Method, route, strconv.Itoa(res.Status)).
			Inc()
		s.logger(c).Info("request",
			"method", req.Method,
			"uri", req.RequestURI,
			"status", res.Status,
			"bytes", res.Size,
			"elapsed", time.Since(start),
		)
		return nil
	}
}

// logger returns the server's logger tagged with the request's identifier.
func (s *Server) logger(c echo.Context) *Logger {
	if id, ok := c.Get(requestIDKey).(string); ok {
		return s.log.WithRequest(id)
	}
	return s.log
}
