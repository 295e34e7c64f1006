package models

// BookmarkReq fields are validated in declaration order, so the first missing one is reported.
type BookmarkReq struct {
	Title       string   `json:"title" validate:"required"`
	URL         string   `json:"url" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Rating      *float64 `json:"rating" validate:"required"`
}

type BookmarkResp struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
}

type ErrorMessage struct {
	Message string `json:"message"`
}

// ErrorResp is the body of every handled 4xx/5xx response except 401.
type ErrorResp struct {
	Error ErrorMessage `json:"error"`
}

func NewErrorResp(message string) ErrorResp {
	return ErrorResp{Error: ErrorMessage{Message: message}}
}

func NewBookmarkResp(b *Bookmark) BookmarkResp {
	return BookmarkResp{
		ID:          b.ID,
		Title:       b.Title,
		URL:         b.URL,
		Description: b.Description,
		Rating:      b.Rating,
	}
}
