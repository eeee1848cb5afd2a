package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaSendPostsJSONRequest(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	var gotPayload metaMessageRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewMetaClient("token123", "555000", WithMetaBaseURL(server.URL))

	err := client.Send(context.Background(), "+919876543210", "Happy Birthday!")
	require.NoError(t, err)

	assert.Equal(t, "/555000/messages", gotPath)
	assert.Equal(t, "Bearer token123", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "whatsapp", gotPayload.MessagingProduct)
	assert.Equal(t, "+919876543210", gotPayload.To)
	assert.Equal(t, "text", gotPayload.Type)
	assert.Equal(t, "Happy Birthday!", gotPayload.Text.Body)
}

func TestMetaSendReportsFailureDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"Unsupported post request"}}`))
	}))
	defer server.Close()

	client := NewMetaClient("token123", "555000", WithMetaBaseURL(server.URL))

	err := client.Send(context.Background(), "+1555", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "Unsupported post request")
}
