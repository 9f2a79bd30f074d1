package bookalope

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const apiVersionHeader = "X-Bookalope-Api-Version"

// errorEnvelope is the JSON body the service returns for 4xx responses.
type errorEnvelope struct {
	Errors []struct {
		Description string `json:"description"`
	} `json:"errors"`
}

// do issues a single authenticated request and classifies the response.
// It returns the raw response body for 2xx responses and never retries.
func (c *Client) do(ctx context.Context, method, path string, params map[string]any) ([]byte, error) {
	if !validToken(c.token) {
		return nil, newError("invalid access token")
	}

	u := c.host + path
	var body io.Reader
	switch method {
	case http.MethodGet:
		if len(params) > 0 {
			q := url.Values{}
			for key, value := range params {
				q.Set(key, fmt.Sprintf("%v", value))
			}
			u += "?" + q.Encode()
		}
	case http.MethodPost:
		encoded, err := json.Marshal(params)
		if err != nil {
			return nil, wrapError(err, "failed to encode request parameters")
		}
		body = bytes.NewReader(encoded)
	case http.MethodDelete:
		// No body.
	default:
		return nil, newError("unsupported request method: %s", method)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, wrapError(err, "failed to create request")
	}
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(c.token+":")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapError(err, "unable to connect to %s", c.host)
	}
	defer resp.Body.Close()

	// A version mismatch is a hard failure regardless of status code.
	if version := resp.Header.Get(apiVersionHeader); version != c.version {
		return nil, newError("server API version %q does not match client version %q", version, c.version)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(err, "unable to read server response")
	}

	return classify(resp, payload)
}

func classify(resp *http.Response, payload []byte) ([]byte, error) {
	status := resp.StatusCode
	switch {
	case status >= 200 && status < 300:
		return payload, nil
	case status >= 400 && status < 500:
		var envelope errorEnvelope
		if err := json.Unmarshal(payload, &envelope); err != nil {
			if status == http.StatusUnauthorized {
				return nil, newError("authentication failed, check the access token")
			}
			return nil, newError("client error: %s", resp.Status)
		}
		if len(envelope.Errors) == 1 && envelope.Errors[0].Description != "" {
			return nil, newError("%s", envelope.Errors[0].Description)
		}
		return nil, newError("client error: %s", resp.Status)
	case status >= 500:
		return nil, newError("server error: %s", resp.Status)
	default:
		// 1xx and 3xx responses are never expected from the API.
		return nil, newError("unexpected server response: %s", resp.Status)
	}
}

// doJSON issues a request and decodes the 2xx JSON body into out.
// Pass a nil out to discard the response body.
func (c *Client) doJSON(ctx context.Context, method, path string, params map[string]any, out any) error {
	payload, err := c.do(ctx, method, path, params)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return wrapError(err, "malformed server response")
	}
	return nil
}

// doBinary issues a request whose 2xx response is a downloadable blob and
// returns the body unmodified.
func (c *Client) doBinary(ctx context.Context, method, path string, params map[string]any) ([]byte, error) {
	return c.do(ctx, method, path, params)
}
