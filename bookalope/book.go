package bookalope

import (
	"context"
	"net/http"
	"time"
)

// Book groups one or more bookflows and optionally sits on a bookshelf.
type Book struct {
	client *Client

	ID        string
	Name      string
	Created   time.Time
	Bookshelf *Bookshelf
	Bookflows []*Bookflow
}

type bookPayload struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Created   string            `json:"created"`
	Bookflows []bookflowPayload `json:"bookflows"`
}

func newBookFromPayload(c *Client, payload bookPayload) *Book {
	book := &Book{
		client:  c,
		ID:      payload.ID,
		Name:    payload.Name,
		Created: parseCreated(payload.Created),
	}
	book.Bookflows = make([]*Bookflow, 0, len(payload.Bookflows))
	for _, flow := range payload.Bookflows {
		book.Bookflows = append(book.Bookflows, newBookflowFromPayload(c, book, flow))
	}
	return book
}

// URL returns the book's resource path.
func (b *Book) URL() string {
	return "/api/books/" + b.ID
}

// Update fetches the book and overwrites the local fields. The bookflow
// list is fully replaced, not appended; the bookshelf relation is kept as
// the caller last set it.
func (b *Book) Update(ctx context.Context) error {
	var response struct {
		Book bookPayload `json:"book"`
	}
	if err := b.client.doJSON(ctx, http.MethodGet, b.URL(), nil, &response); err != nil {
		return err
	}
	shelf := b.Bookshelf
	*b = *newBookFromPayload(b.client, response.Book)
	b.Bookshelf = shelf
	return nil
}

// Save posts the book's name to the server. The response is not pulled
// back into the instance.
func (b *Book) Save(ctx context.Context) error {
	params := map[string]any{"name": b.Name}
	return b.client.doJSON(ctx, http.MethodPost, b.URL(), params, nil)
}

// Delete removes the book and its bookflows from the server. The instance
// is invalid afterwards; callers must drop the reference.
func (b *Book) Delete(ctx context.Context) error {
	return b.client.doJSON(ctx, http.MethodDelete, b.URL(), nil, nil)
}

// CreateBookflow creates a new conversion flow for this book, in the
// upload step, and appends it to Bookflows.
func (b *Book) CreateBookflow(ctx context.Context, name string) (*Bookflow, error) {
	var created struct {
		Bookflow bookflowPayload `json:"bookflow"`
	}
	params := map[string]any{"name": name}
	if err := b.client.doJSON(ctx, http.MethodPost, b.URL()+"/bookflows", params, &created); err != nil {
		return nil, err
	}
	flow := newBookflowFromPayload(b.client, b, created.Bookflow)
	b.Bookflows = append(b.Bookflows, flow)
	return flow, nil
}

// MoveToBookshelf puts the book onto the given bookshelf, replacing any
// current shelf assignment.
func (b *Book) MoveToBookshelf(ctx context.Context, shelf *Bookshelf) error {
	params := map[string]any{"bookshelf_id": shelf.ID}
	if err := b.client.doJSON(ctx, http.MethodPost, b.URL(), params, nil); err != nil {
		return err
	}
	b.Bookshelf = shelf
	return nil
}

// RemoveFromBookshelf takes the book off its bookshelf.
func (b *Book) RemoveFromBookshelf(ctx context.Context) error {
	params := map[string]any{"bookshelf_id": nil}
	if err := b.client.doJSON(ctx, http.MethodPost, b.URL(), params, nil); err != nil {
		return err
	}
	b.Bookshelf = nil
	return nil
}
