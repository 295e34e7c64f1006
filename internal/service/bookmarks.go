package service

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/models"
)

const bookmarksTable = "bookmarks"

var (
	ErrBookmarkNotFound = errors.New("bookmark not found")

	bookmarkColumns = []string{"id", "title", "url", "description", "rating"}
)

// Bookmarks is the only owner of the bookmarks table. Statements are built with squirrel and
// executed on the shared gorm pool.
type Bookmarks struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
	now    func() time.Time
}

func NewBookmarks(db *gorm.DB, l *zap.SugaredLogger) *Bookmarks {
	return &Bookmarks{
		db:     db,
		logger: l,
		now:    time.Now,
	}
}

func (s *Bookmarks) List(ctx context.Context) ([]models.Bookmark, error) {
	sql, args, err := squirrel.
		Select(bookmarkColumns...).From(bookmarksTable).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	bookmarks := make([]models.Bookmark, 0)
	res := s.db.WithContext(ctx).Raw(sql, args...).Scan(&bookmarks)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "scan")
	}

	return bookmarks, nil
}

func (s *Bookmarks) GetByID(ctx context.Context, id string) (*models.Bookmark, error) {
	sql, args, err := squirrel.
		Select(bookmarkColumns...).From(bookmarksTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build sql")
	}

	bookmarks := make([]models.Bookmark, 0, 1)
	res := s.db.WithContext(ctx).Raw(sql, args...).Scan(&bookmarks)
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "scan")
	}
	if len(bookmarks) == 0 {
		return nil, ErrBookmarkNotFound
	}

	return &bookmarks[0], nil
}

// Insert stores b as given; the caller assigns the id.
func (s *Bookmarks) Insert(ctx context.Context, b *models.Bookmark) error {
	if b.ID == "" {
		return errors.New("bookmark id is empty")
	}
	b.CreatedAt = s.now().UTC()

	sql, args, err := squirrel.
		Insert(bookmarksTable).
		Columns("id", "title", "url", "description", "rating", "created_at").
		Values(b.ID, b.Title, b.URL, b.Description, b.Rating, b.CreatedAt).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build sql")
	}

	res := s.db.WithContext(ctx).Exec(sql, args...)
	if res.Error != nil {
		return errors.Wrap(res.Error, "insert bookmark")
	}
	s.logger.Debugw("bookmark inserted", "id", b.ID)

	return nil
}

func (s *Bookmarks) Delete(ctx context.Context, id string) error {
	sql, args, err := squirrel.
		Delete(bookmarksTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build sql")
	}

	res := s.db.WithContext(ctx).Exec(sql, args...)
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete bookmark")
	}
	if res.RowsAffected == 0 {
		return ErrBookmarkNotFound
	}
	s.logger.Debugw("bookmark deleted", "id", id, "rows", res.RowsAffected)

	return nil
}
