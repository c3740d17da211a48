package mailer

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResendService(baseURL string) *resendEmailService {
	return &resendEmailService{
		apiKey:      "re_test_key",
		senderEmail: "noreply@janedev.example.com",
		senderName:  "Portfolio",
		toEmail:     "owner@janedev.example.com",
		baseURL:     baseURL,
		client:      &http.Client{Timeout: time.Second},
	}
}

func TestResendSend_Success(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody resendSendRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"b3f1c2d4"}`))
	}))
	defer srv.Close()

	svc := newTestResendService(srv.URL)
	ack, err := svc.SendContactMessage(context.Background(), &ContactMessage{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Message: "Hello there",
		ReplyTo: "jane@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, ProviderAck{"id": "b3f1c2d4"}, ack)
	assert.Equal(t, "/emails", gotPath)
	assert.Equal(t, "Bearer re_test_key", gotAuth)
	assert.Equal(t, "Portfolio <noreply@janedev.example.com>", gotBody.From)
	assert.Equal(t, []string{"owner@janedev.example.com"}, gotBody.To)
	assert.Equal(t, "jane@example.com", gotBody.ReplyTo)
	assert.Equal(t, "Portfolio contact from Jane Visitor", gotBody.Subject)
	assert.Contains(t, gotBody.Html, "Hello there")
}

func TestResendSend_NonSuccessStatusIsHardFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid from address"}`))
	}))
	defer srv.Close()

	svc := newTestResendService(srv.URL)
	ack, err := svc.SendContactMessage(context.Background(), &ContactMessage{Name: "Jane"})
	assert.Nil(t, ack)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 422")
}

func TestResendSend_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Dead endpoint.

	svc := newTestResendService(srv.URL)
	ack, err := svc.SendContactMessage(context.Background(), &ContactMessage{Name: "Jane"})
	assert.Nil(t, ack)
	assert.Error(t, err)
}

func TestBuildContactBody(t *testing.T) {
	body := BuildContactBody(&ContactMessage{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Interested in working together",
	})

	assert.Contains(t, body, "New contact form submission")
	assert.Contains(t, body, "Jane")
	assert.Contains(t, body, "jane@example.com")
	assert.Contains(t, body, "Interested in working together")
}
