package bookalope

import (
	"context"
	"net/http"
	"time"
)

// Bookshelf is a named collection of books. Bookshelves are created
// server-side; the client only fetches, refreshes, and deletes them.
type Bookshelf struct {
	client *Client

	ID          string
	Name        string
	Description string
	Created     time.Time
	Books       []*Book
}

type bookshelfPayload struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Created     string        `json:"created"`
	Books       []bookPayload `json:"books"`
}

func newBookshelfFromPayload(c *Client, payload bookshelfPayload) *Bookshelf {
	shelf := &Bookshelf{
		client:      c,
		ID:          payload.ID,
		Name:        payload.Name,
		Description: payload.Description,
		Created:     parseCreated(payload.Created),
	}
	shelf.Books = make([]*Book, 0, len(payload.Books))
	for _, book := range payload.Books {
		child := newBookFromPayload(c, book)
		child.Bookshelf = shelf
		shelf.Books = append(shelf.Books, child)
	}
	return shelf
}

// URL returns the bookshelf's resource path.
func (s *Bookshelf) URL() string {
	return "/api/bookshelves/" + s.ID
}

// Update fetches the bookshelf and overwrites the local fields. The book
// list is fully replaced, not appended.
func (s *Bookshelf) Update(ctx context.Context) error {
	var response struct {
		Bookshelf bookshelfPayload `json:"bookshelf"`
	}
	if err := s.client.doJSON(ctx, http.MethodGet, s.URL(), nil, &response); err != nil {
		return err
	}
	*s = *newBookshelfFromPayload(s.client, response.Bookshelf)
	for _, book := range s.Books {
		book.Bookshelf = s
	}
	return nil
}

// Delete removes the bookshelf from the server. The instance is invalid
// afterwards; fields are not cleared, callers must drop the reference.
func (s *Bookshelf) Delete(ctx context.Context) error {
	return s.client.doJSON(ctx, http.MethodDelete, s.URL(), nil, nil)
}

// parseCreated parses the service's creation timestamps. The API sends
// ISO 8601, with or without a timezone suffix.
func parseCreated(value string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
