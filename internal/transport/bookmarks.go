package transport

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/config"
	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/models"
	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/service"
	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/validation"
)

const (
	bookmarkContextKey = "bookmark"

	msgBookmarkNotFound = "Bookmark doesn't exist"
	msgInvalidData      = "Invalid data"
)

func newInstance(cfg *config.Config, store BookmarkStore, logger *zap.SugaredLogger) *HTTPServer {
	return &HTTPServer{
		cfg:    cfg,
		store:  store,
		logger: logger,
		newID:  uuid.NewString,
	}
}

func (s *HTTPServer) BookmarkList(c echo.Context) error {
	bookmarks, err := s.store.List(c.Request().Context())
	if err != nil {
		return errors.Wrap(err, "list bookmarks")
	}

	resp := make([]models.BookmarkResp, len(bookmarks))
	for i := range bookmarks {
		resp[i] = validation.SanitizeBookmark(models.NewBookmarkResp(&bookmarks[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *HTTPServer) BookmarkGet(c echo.Context) error {
	bookmark, err := GetBookmarkFromContext(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, validation.SanitizeBookmark(models.NewBookmarkResp(bookmark)))
}

func (s *HTTPServer) BookmarkCreate(c echo.Context) error {
	req := models.BookmarkReq{}
	if err := c.Bind(&req); err != nil {
		s.logger.Errorw("Invalid bookmark body", "error", err)
		return c.JSON(http.StatusBadRequest, models.NewErrorResp(msgInvalidData))
	}
	if err := c.Validate(&req); err != nil {
		var missing *validation.MissingFieldError
		if errors.As(err, &missing) {
			s.logger.Errorf("%s is required", missing.Field)
			return c.JSON(http.StatusBadRequest, models.NewErrorResp(missing.Error()))
		}
		return err
	}

	model := models.Bookmark{
		ID:          s.newID(),
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Rating:      *req.Rating,
	}
	if err := s.store.Insert(c.Request().Context(), &model); err != nil {
		return errors.Wrap(err, "create bookmark")
	}

	s.logger.Infof("Bookmark with id %s created.", model.ID)
	c.Response().Header().Set(echo.HeaderLocation, "/bookmarks/"+model.ID)
	return c.JSON(http.StatusCreated, validation.SanitizeBookmark(models.NewBookmarkResp(&model)))
}

func (s *HTTPServer) BookmarkDelete(c echo.Context) error {
	bookmark, err := GetBookmarkFromContext(c)
	if err != nil {
		return err
	}

	err = s.store.Delete(c.Request().Context(), bookmark.ID)
	if errors.Is(err, service.ErrBookmarkNotFound) {
		return s.bookmarkNotFound(c, bookmark.ID)
	}
	if err != nil {
		return errors.Wrap(err, "delete bookmark")
	}

	s.logger.Infof("Bookmark with id %s deleted.", bookmark.ID)
	return c.NoContent(http.StatusNoContent)
}

func (s *HTTPServer) bookmarkNotFound(c echo.Context, id string) error {
	s.logger.Errorf("Bookmark with id %s not found.", id)
	return c.JSON(http.StatusNotFound, models.NewErrorResp(msgBookmarkNotFound))
}

func GetBookmarkFromContext(c echo.Context) (*models.Bookmark, error) {
	bookmark, ok := c.Get(bookmarkContextKey).(*models.Bookmark)
	if !ok || bookmark == nil {
		return nil, errors.New("no bookmark found in context")
	}
	return bookmark, nil
}
