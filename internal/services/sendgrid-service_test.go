package services

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendGridMailServiceSend(t *testing.T) {
	var gotAuth, gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(srv.Close)

	svc := NewSendGridMailService("SG.test", srv.URL, "portal@example.com", "Thesis Portal")
	require.NoError(t, svc.Send("admin@example.com", "New thesis submission", "<p>hello</p>"))

	assert.Equal(t, "Bearer SG.test", gotAuth)
	assert.Equal(t, "/v3/mail/send", gotPath)
	assert.Contains(t, gotBody, "admin@example.com")
	assert.Contains(t, gotBody, "New thesis submission")
	assert.Contains(t, gotBody, "Thesis Portal")
}

func TestSendGridMailServiceRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	t.Cleanup(srv.Close)

	svc := NewSendGridMailService("SG.bad", srv.URL, "portal@example.com", "")
	err := svc.Send("admin@example.com", "subject", "body")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
