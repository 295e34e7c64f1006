package transport

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/models"
)

const msgServerError = "server error"

type debugErrorResp struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ErrorHandler is the terminal handler for every error a route returns. Routing errors keep
// their status; anything else is a 500 whose detail depends on ENV.
func (s *HTTPServer) ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		s.respond(c, he.Code, models.NewErrorResp(fmt.Sprint(he.Message)))
		return
	}

	s.logger.Errorw("Unhandled error", "path", c.Request().URL.Path, "error", err)

	if s.cfg.IsProduction() {
		s.respond(c, http.StatusInternalServerError, models.NewErrorResp(msgServerError))
		return
	}
	s.respond(c, http.StatusInternalServerError, debugErrorResp{
		Message: err.Error(),
		Error:   fmt.Sprintf("%+v", err),
	})
}

func (s *HTTPServer) respond(c echo.Context, status int, body interface{}) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, body)
	}
	if err != nil {
		s.logger.Errorw("Failed to write error response", "error", err)
	}
}
