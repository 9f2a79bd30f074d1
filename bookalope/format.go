package bookalope

import (
	"context"
	"net/http"
)

// Format describes a file format the service imports or exports. Values
// come from the server listing and are immutable.
type Format struct {
	Name       string   `json:"name"`
	MIME       string   `json:"mime"`
	Extensions []string `json:"exts"`
}

// Style is a named visual template applicable when converting to a given
// format. Values come from the server listing and are immutable.
type Style struct {
	Format      string `json:"format"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// Formats lists the file formats the service supports.
func (c *Client) Formats(ctx context.Context) ([]Format, error) {
	var listing struct {
		Formats []Format `json:"formats"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/formats", nil, &listing); err != nil {
		return nil, err
	}
	return listing.Formats, nil
}

// Styles lists the styles available for the given export format.
func (c *Client) Styles(ctx context.Context, format string) ([]Style, error) {
	var listing struct {
		Styles []Style `json:"styles"`
	}
	params := map[string]any{"format": format}
	if err := c.doJSON(ctx, http.MethodGet, "/api/styles", params, &listing); err != nil {
		return nil, err
	}
	return listing.Styles, nil
}
