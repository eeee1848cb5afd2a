package whatsapp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwilioSendPostsFormEncodedRequest(t *testing.T) {
	var gotPath, gotFrom, gotTo, gotBody, gotUser, gotPass string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, r.ParseForm())
		gotFrom = r.PostFormValue("From")
		gotTo = r.PostFormValue("To")
		gotBody = r.PostFormValue("Body")
		gotUser, gotPass, _ = r.BasicAuth()
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewTwilioClient("AC123", "secret", "whatsapp:+1415000", WithTwilioBaseURL(server.URL))

	err := client.Send(context.Background(), "+919876543210", "Happy Birthday!")
	require.NoError(t, err)

	assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", gotPath)
	assert.Equal(t, "whatsapp:+1415000", gotFrom)
	assert.Equal(t, "whatsapp:+919876543210", gotTo, "recipient must carry the whatsapp: prefix")
	assert.Equal(t, "Happy Birthday!", gotBody)
	assert.Equal(t, "AC123", gotUser)
	assert.Equal(t, "secret", gotPass)
}

func TestTwilioSendAcceptsOKAndCreated(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		client := NewTwilioClient("AC123", "secret", "whatsapp:+1415000", WithTwilioBaseURL(server.URL))

		assert.NoError(t, client.Send(context.Background(), "+1555", "hi"), "status %d", status)
		server.Close()
	}
}

func TestTwilioSendReportsFailureDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Authentication Error"}`))
	}))
	defer server.Close()

	client := NewTwilioClient("AC123", "wrong", "whatsapp:+1415000", WithTwilioBaseURL(server.URL))

	err := client.Send(context.Background(), "+1555", "hi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "Authentication Error")
}

func TestTwilioSendNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // immediately unreachable

	client := NewTwilioClient("AC123", "secret", "whatsapp:+1415000", WithTwilioBaseURL(server.URL))

	assert.Error(t, client.Send(context.Background(), "+1555", "hi"))
}
