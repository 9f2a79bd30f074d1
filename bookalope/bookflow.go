package bookalope

import (
	"context"
	"encoding/base64"
	"net/http"
)

// Step is a bookflow's coarse-grained lifecycle position. Transitions are
// driven by server responses: upload → processing → convert, or
// processing_failed when the structural analysis fails.
type Step string

const (
	StepUpload           Step = "upload"
	StepProcessing       Step = "processing"
	StepConvert          Step = "convert"
	StepProcessingFailed Step = "processing_failed"
)

// Credit is a plan tier whose allotment authorizes full conversion output.
type Credit string

const (
	CreditBasic Credit = "basic"
	CreditPro   Credit = "pro"
)

// Bookflow is one document's path through upload, structural analysis,
// and format conversion. It belongs to exactly one book.
type Bookflow struct {
	client *Client
	book   *Book

	ID   string
	Name string

	// Step is a client-side hint between requests: SetDocument advances
	// it to processing without waiting for server confirmation. It is
	// authoritative only after Update.
	Step   Step
	Credit Credit

	Title     string
	Author    string
	Copyright string
	ISBN      string
	Language  string
	Pubdate   string
	Publisher string
}

type bookflowPayload struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Step   string `json:"step"`
	Credit *struct {
		Type string `json:"type"`
	} `json:"credit"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Copyright string `json:"copyright"`
	ISBN      string `json:"isbn"`
	Language  string `json:"language"`
	Pubdate   string `json:"pubdate"`
	Publisher string `json:"publisher"`
}

func newBookflowFromPayload(c *Client, book *Book, payload bookflowPayload) *Bookflow {
	flow := &Bookflow{
		client:    c,
		book:      book,
		ID:        payload.ID,
		Name:      payload.Name,
		Step:      Step(payload.Step),
		Title:     payload.Title,
		Author:    payload.Author,
		Copyright: payload.Copyright,
		ISBN:      payload.ISBN,
		Language:  payload.Language,
		Pubdate:   payload.Pubdate,
		Publisher: payload.Publisher,
	}
	if payload.Credit != nil {
		flow.Credit = Credit(payload.Credit.Type)
	}
	return flow
}

// URL returns the bookflow's resource path.
func (f *Bookflow) URL() string {
	return "/api/bookflows/" + f.ID
}

// WebURL returns the browser URL for this flow's current step. It is
// derived locally with no network call, so it is only meaningful once the
// flow has a real step value.
func (f *Bookflow) WebURL() string {
	return f.client.host + "/bookflow/" + f.ID + "/" + string(f.Step)
}

// Book returns the owning book.
func (f *Bookflow) Book() *Book {
	return f.book
}

// Update fetches the bookflow and overwrites the local fields, including
// the authoritative step.
func (f *Bookflow) Update(ctx context.Context) error {
	var response struct {
		Bookflow bookflowPayload `json:"bookflow"`
	}
	if err := f.client.doJSON(ctx, http.MethodGet, f.URL(), nil, &response); err != nil {
		return err
	}
	*f = *newBookflowFromPayload(f.client, f.book, response.Bookflow)
	return nil
}

// Save posts the flow's name and document metadata to the server.
func (f *Bookflow) Save(ctx context.Context) error {
	params := map[string]any{
		"name":      f.Name,
		"title":     f.Title,
		"author":    f.Author,
		"copyright": f.Copyright,
		"isbn":      f.ISBN,
		"language":  f.Language,
		"pubdate":   f.Pubdate,
		"publisher": f.Publisher,
	}
	return f.client.doJSON(ctx, http.MethodPost, f.URL(), params, nil)
}

// Delete removes the bookflow from the server. The instance is invalid
// afterwards; callers must drop the reference.
func (f *Bookflow) Delete(ctx context.Context) error {
	return f.client.doJSON(ctx, http.MethodDelete, f.URL(), nil, nil)
}

// DocumentOptions carries the optional arguments of SetDocument.
type DocumentOptions struct {
	// Filetype overrides the server's file type detection, e.g. "doc",
	// "epub", "gutenberg".
	Filetype string

	// SkipAnalysis uploads the document without running the structural
	// analysis over it.
	SkipAnalysis bool
}

// SetDocument uploads the flow's document and starts the server-side
// structural analysis. It is legal only while the flow is in the upload
// step. On success the local step becomes processing immediately, without
// waiting for server confirmation.
func (f *Bookflow) SetDocument(ctx context.Context, filename string, content []byte, opts *DocumentOptions) error {
	if f.Step != StepUpload {
		return newError("bookflow %s already has a document", f.ID)
	}
	params := map[string]any{
		"filename": filename,
		"file":     base64.StdEncoding.EncodeToString(content),
	}
	if opts != nil {
		if opts.Filetype != "" {
			params["filetype"] = opts.Filetype
		}
		if opts.SkipAnalysis {
			params["skip_analysis"] = true
		}
	}
	if err := f.client.doJSON(ctx, http.MethodPost, f.URL()+"/upload/document", params, nil); err != nil {
		return err
	}
	f.Step = StepProcessing
	return nil
}

// GetDocument downloads the flow's original document.
func (f *Bookflow) GetDocument(ctx context.Context) ([]byte, error) {
	return f.client.doBinary(ctx, http.MethodGet, f.URL()+"/upload/document", nil)
}

// AddImage uploads an image under the given name. It is legal only once
// the flow has reached the convert step.
func (f *Bookflow) AddImage(ctx context.Context, name, filename string, content []byte) error {
	if f.Step != StepConvert {
		return newError("bookflow %s is not in convert step", f.ID)
	}
	params := map[string]any{
		"name":     name,
		"filename": filename,
		"file":     base64.StdEncoding.EncodeToString(content),
	}
	return f.client.doJSON(ctx, http.MethodPost, f.URL()+"/upload/image", params, nil)
}

// SetCoverImage uploads the flow's cover image. Like AddImage, it is
// legal only in the convert step.
func (f *Bookflow) SetCoverImage(ctx context.Context, filename string, content []byte) error {
	return f.AddImage(ctx, "cover-image", filename, content)
}

// GetImage downloads the image stored under the given name.
func (f *Bookflow) GetImage(ctx context.Context, name string) ([]byte, error) {
	params := map[string]any{"name": name}
	return f.client.doBinary(ctx, http.MethodGet, f.URL()+"/upload/image", params)
}

// SetCredit attaches a credit of the given plan tier to the flow. Only
// the two recognized tiers are accepted; anything else fails before a
// request is made. On success the local Credit field is set to the
// requested tier without re-reading the server's value.
func (f *Bookflow) SetCredit(ctx context.Context, kind Credit) error {
	if kind != CreditBasic && kind != CreditPro {
		return newError("invalid credit type: %q", kind)
	}
	params := map[string]any{"type": string(kind)}
	if err := f.client.doJSON(ctx, http.MethodPost, f.URL()+"/credit", params, nil); err != nil {
		return err
	}
	f.Credit = kind
	return nil
}

// Convert requests generation of the flow's document in the given format,
// using the named style or the server's default style when empty. It
// initiates the conversion but does not wait for it; poll ConvertStatus
// until the result is ready.
func (f *Bookflow) Convert(ctx context.Context, format, style string) error {
	if style == "" {
		style = "default"
	}
	params := map[string]any{
		"format":  format,
		"styling": style,
	}
	return f.client.doJSON(ctx, http.MethodPost, f.URL()+"/convert", params, nil)
}

// ConvertStatus returns the server's status for the format's conversion
// job. The string is passed through verbatim; the service reports values
// such as "processing", "available", or "failed".
func (f *Bookflow) ConvertStatus(ctx context.Context, format string) (string, error) {
	var response struct {
		Status string `json:"status"`
	}
	path := f.URL() + "/download/" + format + "/status"
	if err := f.client.doJSON(ctx, http.MethodGet, path, nil, &response); err != nil {
		return "", err
	}
	return response.Status, nil
}

// ConvertDownload fetches the converted file for the given format. No
// readiness check is performed here; calling before the conversion is
// available surfaces whatever error the server reports.
func (f *Bookflow) ConvertDownload(ctx context.Context, format string) ([]byte, error) {
	return f.client.doBinary(ctx, http.MethodGet, f.URL()+"/download/"+format, nil)
}
