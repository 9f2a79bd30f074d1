package bookalope

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("accepts a well-formed token", func(t *testing.T) {
		client, err := NewClient("", testToken)
		require.NoError(t, err)
		assert.Equal(t, DefaultHost, client.Host())
		assert.Equal(t, testToken, client.Token())
	})

	t.Run("rejects malformed tokens", func(t *testing.T) {
		for _, token := range []string{"", "short", strings.Repeat("x", 70), strings.Repeat("x", 72)} {
			_, err := NewClient("", token)
			assert.Error(t, err, "token %q", token)
		}
	})
}

func TestSetToken(t *testing.T) {
	client, err := NewClient("", testToken)
	require.NoError(t, err)

	replacement := strings.Repeat("u", 71)
	require.NoError(t, client.SetToken(replacement))
	assert.Equal(t, replacement, client.Token())

	assert.Error(t, client.SetToken("bogus"))
	assert.Equal(t, replacement, client.Token(), "a rejected token must not replace the current one")
}

func TestNewBookFromBareID(t *testing.T) {
	client, err := NewClient("", testToken)
	require.NoError(t, err)

	t.Run("valid id populates only id", func(t *testing.T) {
		book, err := client.NewBook(testID)
		require.NoError(t, err)
		assert.Equal(t, testID, book.ID)
		assert.Empty(t, book.Name)
		assert.Nil(t, book.Bookflows)
		assert.Equal(t, "/api/books/"+testID, book.URL())
	})

	t.Run("malformed ids fail construction", func(t *testing.T) {
		for _, id := range []string{"", "short", strings.Repeat("f", 33), strings.Repeat("f", 31) + "!"} {
			_, err := client.NewBook(id)
			assert.Error(t, err, "id %q", id)
			_, err = client.NewBookshelf(id)
			assert.Error(t, err, "id %q", id)
			_, err = client.NewBookflow(&Book{client: client}, id)
			assert.Error(t, err, "id %q", id)
		}
	})
}

func TestProfile(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/profile", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"user":{"firstname":"Jane","lastname":"Doe"}}`))
		case http.MethodPost:
			w.Write([]byte(`{}`))
		}
	})

	profile, err := client.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Jane", profile.FirstName)
	assert.Equal(t, "Doe", profile.LastName)

	profile.LastName = "Smith"
	require.NoError(t, profile.Save(context.Background()))
}

func TestCreateBook(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/books", r.URL.Path)
		w.Write([]byte(`{"book":{"id":"` + testID + `","name":"My Book","created":"2026-08-25T10:00:00",
			"bookflows":[{"id":"` + strings.Repeat("a", 32) + `","name":"Bookflow 1","step":"upload"}]}}`))
	})

	book, err := client.CreateBook(context.Background(), "My Book")
	require.NoError(t, err)
	assert.Equal(t, "My Book", book.Name)
	require.Len(t, book.Bookflows, 1, "the server auto-creates one bookflow")
	assert.Equal(t, StepUpload, book.Bookflows[0].Step)
	assert.Same(t, book, book.Bookflows[0].Book())
}

func TestFormatsAndStyles(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/formats":
			w.Write([]byte(`{"formats":[{"name":"epub","mime":"application/epub+zip","exts":["epub"]}]}`))
		case "/api/styles":
			require.Equal(t, "epub", r.URL.Query().Get("format"))
			w.Write([]byte(`{"styles":[{"format":"epub","name":"default","display_name":"Default","description":"House style","price":"free"}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	formats, err := client.Formats(context.Background())
	require.NoError(t, err)
	require.Len(t, formats, 1)
	assert.Equal(t, "epub", formats[0].Name)
	assert.Equal(t, []string{"epub"}, formats[0].Extensions)

	styles, err := client.Styles(context.Background(), "epub")
	require.NoError(t, err)
	require.Len(t, styles, 1)
	assert.Equal(t, "default", styles[0].Name)
}
