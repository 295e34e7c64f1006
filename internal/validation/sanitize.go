package validation

import (
	"html"

	"github.com/Rogue-Bear-Innovations/bookmarks-api/internal/models"
)

// SanitizeBookmark escapes the free-text fields so stored markup renders as text.
func SanitizeBookmark(b models.BookmarkResp) models.BookmarkResp {
	b.Title = html.EscapeString(b.Title)
	b.URL = html.EscapeString(b.URL)
	b.Description = html.EscapeString(b.Description)
	return b
}
