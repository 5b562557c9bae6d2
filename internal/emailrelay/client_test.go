package emailrelay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configuredOptions(base string) Options {
	return Options{
		BaseURL:    base,
		ServiceID:  "service_1",
		TemplateID: "template_1",
		PublicKey:  "pk_1",
		Recipient:  "birds@example.com",
	}
}

func TestSendPostsTemplateParams(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	c, err := NewClient(configuredOptions(srv.URL + "/"))
	require.NoError(t, err)

	err = c.Send(context.Background(), Message{FromName: "Ada", FromEmail: "ada@example.com", Body: "Saw a heron today!"})
	require.NoError(t, err)

	assert.Equal(t, "service_1", got["service_id"])
	assert.Equal(t, "template_1", got["template_id"])
	assert.Equal(t, "pk_1", got["user_id"])
	params, ok := got["template_params"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ada", params["from_name"])
	assert.Equal(t, "ada@example.com", params["from_email"])
	assert.Equal(t, "Saw a heron today!", params["message"])
	assert.Equal(t, "birds@example.com", params["to_email"])
}

func TestSendNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "The Public Key is invalid", http.StatusBadRequest)
	}))
	defer srv.Close()

	c, err := NewClient(configuredOptions(srv.URL))
	require.NoError(t, err)

	err = c.Send(context.Background(), Message{FromName: "Ada", FromEmail: "ada@example.com", Body: "hello there friend"})
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.Status)
	assert.Contains(t, err.Error(), "Public Key is invalid")
}

func TestSendNotConfigured(t *testing.T) {
	c, err := NewClient(Options{})
	require.NoError(t, err)
	assert.False(t, c.Configured())
	assert.ErrorIs(t, c.Send(context.Background(), Message{}), ErrNotConfigured)

	var nilClient *Client
	assert.ErrorIs(t, nilClient.Send(context.Background(), Message{}), ErrNotConfigured)
}

func TestSendTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c, err := NewClient(configuredOptions(base))
	require.NoError(t, err)
	assert.Error(t, c.Send(context.Background(), Message{FromName: "Ada"}))
}

func TestSendHonorsTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	opts := configuredOptions(srv.URL)
	opts.Timeout = 50 * time.Millisecond
	c, err := NewClient(opts)
	require.NoError(t, err)

	assert.Error(t, c.Send(context.Background(), Message{FromName: "Ada"}))
}

func TestNewClientRejectsBadURL(t *testing.T) {
	_, err := NewClient(Options{BaseURL: "not-a-url"})
	assert.Error(t, err)
}
