package bookalope

import (
	"context"
	"net/http"
	"time"
)

const (
	// DefaultHost is the production endpoint of the conversion service.
	DefaultHost = "https://bookflow.bookalope.net"

	// APIVersion is the protocol version this client speaks. The server
	// must answer with the same version or every call fails.
	APIVersion = "2.0.0"

	defaultTimeout = 30 * time.Second
)

// Client holds the access token and base host and constructs all entity
// instances. It is safe to share across entities; it keeps no state
// besides the token.
type Client struct {
	host       string
	token      string
	version    string
	httpClient *http.Client
}

// NewClient creates a client for the given host (DefaultHost when empty).
// The token must match the service's fixed-length token format; a
// malformed token is rejected here, before any network use.
func NewClient(host, token string) (*Client, error) {
	if !validToken(token) {
		return nil, newError("invalid access token")
	}
	if host == "" {
		host = DefaultHost
	}
	return &Client{
		host:    host,
		token:   token,
		version: APIVersion,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}, nil
}

// Token returns the access token used for requests.
func (c *Client) Token() string {
	return c.token
}

// SetToken replaces the access token, validating it first.
func (c *Client) SetToken(token string) error {
	if !validToken(token) {
		return newError("invalid access token")
	}
	c.token = token
	return nil
}

// Host returns the base host URL.
func (c *Client) Host() string {
	return c.host
}

// Profile fetches the account profile.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	profile := &Profile{client: c}
	if err := profile.Update(ctx); err != nil {
		return nil, err
	}
	return profile, nil
}

// Bookshelves lists all bookshelves of the account, including their books.
func (c *Client) Bookshelves(ctx context.Context) ([]*Bookshelf, error) {
	var listing struct {
		Bookshelves []bookshelfPayload `json:"bookshelves"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/bookshelves", nil, &listing); err != nil {
		return nil, err
	}
	shelves := make([]*Bookshelf, 0, len(listing.Bookshelves))
	for _, payload := range listing.Bookshelves {
		shelves = append(shelves, newBookshelfFromPayload(c, payload))
	}
	return shelves, nil
}

// Books lists all books of the account, including their bookflows.
func (c *Client) Books(ctx context.Context) ([]*Book, error) {
	var listing struct {
		Books []bookPayload `json:"books"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/books", nil, &listing); err != nil {
		return nil, err
	}
	books := make([]*Book, 0, len(listing.Books))
	for _, payload := range listing.Books {
		books = append(books, newBookFromPayload(c, payload))
	}
	return books, nil
}

// CreateBook creates a new book with the given name. The server creates
// one bookflow alongside it, in the upload step.
func (c *Client) CreateBook(ctx context.Context, name string) (*Book, error) {
	var created struct {
		Book bookPayload `json:"book"`
	}
	params := map[string]any{"name": name}
	if err := c.doJSON(ctx, http.MethodPost, "/api/books", params, &created); err != nil {
		return nil, err
	}
	return newBookFromPayload(c, created.Book), nil
}

// NewBookshelf constructs a bookshelf from a bare id. Only ID is
// populated; call Update to fetch the remaining fields.
func (c *Client) NewBookshelf(id string) (*Bookshelf, error) {
	if !validID(id) {
		return nil, newError("malformed bookshelf id: %q", id)
	}
	return &Bookshelf{client: c, ID: id}, nil
}

// NewBook constructs a book from a bare id. Only ID is populated; call
// Update to fetch the remaining fields.
func (c *Client) NewBook(id string) (*Book, error) {
	if !validID(id) {
		return nil, newError("malformed book id: %q", id)
	}
	return &Book{client: c, ID: id}, nil
}

// NewBookflow constructs a bookflow from a bare id, owned by the given
// book. Only ID is populated; call Update to fetch the remaining fields,
// including the current step.
func (c *Client) NewBookflow(book *Book, id string) (*Bookflow, error) {
	if !validID(id) {
		return nil, newError("malformed bookflow id: %q", id)
	}
	return &Bookflow{client: c, book: book, ID: id}, nil
}
