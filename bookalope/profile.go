package bookalope

import (
	"context"
	"net/http"
)

// Profile is the account profile of the authenticated user.
type Profile struct {
	client *Client

	FirstName string
	LastName  string
}

// Update fetches the profile and overwrites the local fields.
func (p *Profile) Update(ctx context.Context) error {
	var response struct {
		User struct {
			FirstName string `json:"firstname"`
			LastName  string `json:"lastname"`
		} `json:"user"`
	}
	if err := p.client.doJSON(ctx, http.MethodGet, "/api/profile", nil, &response); err != nil {
		return err
	}
	p.FirstName = response.User.FirstName
	p.LastName = response.User.LastName
	return nil
}

// Save posts the local profile fields to the server.
func (p *Profile) Save(ctx context.Context) error {
	params := map[string]any{
		"firstname": p.FirstName,
		"lastname":  p.LastName,
	}
	return p.client.doJSON(ctx, http.MethodPost, "/api/profile", params, nil)
}
