package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"portfolio-be/internal/dto"
	"portfolio-be/internal/pkg/mailer"
	"portfolio-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakeEmailService struct {
	mu       sync.Mutex
	sent     []*mailer.ContactMessage
	sendErr  error
	ack      mailer.ProviderAck
	numCalls int32
}

func (f *fakeEmailService) SendContactMessage(_ context.Context, msg *mailer.ContactMessage) (mailer.ProviderAck, error) {
	atomic.AddInt32(&f.numCalls, 1)
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.mu.Lock()
	f.sent = append(f.sent, msg)
	f.mu.Unlock()
	if f.ack != nil {
		return f.ack, nil
	}
	return mailer.ProviderAck{"id": "msg-123"}, nil
}

type brokenRateLimitStore struct{}

func (brokenRateLimitStore) Hit(context.Context, string, time.Duration) (int64, time.Time, error) {
	return 0, time.Time{}, errors.New("store unreachable")
}

func newContactFixture(maxRequests int, window time.Duration) (IContactService, *fakeEmailService) {
	mail := &fakeEmailService{}
	svc := NewContactService(memory.NewRateLimitRepository(time.Minute), mail, nopLogger{}, window, maxRequests)
	return svc, mail
}

func validContactRequest() *dto.ContactRequest {
	return &dto.ContactRequest{
		Name:    "Jane Visitor",
		Email:   "jane@example.com",
		Message: "Hi, I would like to talk about a project.",
	}
}

func TestSubmit_RelaysMessage(t *testing.T) {
	svc, mail := newContactFixture(5, time.Hour)

	result, err := svc.Submit(context.Background(), "1.2.3.4", validContactRequest())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, mailer.ProviderAck{"id": "msg-123"}, result.Ack)
	assert.Equal(t, 4, result.Remaining)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "Jane Visitor", mail.sent[0].Name)
	assert.Equal(t, "jane@example.com", mail.sent[0].ReplyTo)
}

func TestSubmit_Validation(t *testing.T) {
	testCases := []struct {
		name        string
		mutate      func(req *dto.ContactRequest)
		wantField   string
		wantMessage string
	}{
		{
			name:      "missing name",
			mutate:    func(req *dto.ContactRequest) { req.Name = "   " },
			wantField: "name",
		},
		{
			name:      "name too long",
			mutate:    func(req *dto.ContactRequest) { req.Name = strings.Repeat("a", 101) },
			wantField: "name",
		},
		{
			name:      "missing email",
			mutate:    func(req *dto.ContactRequest) { req.Email = "" },
			wantField: "email",
		},
		{
			name:      "email without domain",
			mutate:    func(req *dto.ContactRequest) { req.Email = "jane@" },
			wantField: "email",
		},
		{
			name:      "email without tld",
			mutate:    func(req *dto.ContactRequest) { req.Email = "jane@example" },
			wantField: "email",
		},
		{
			name:      "email with spaces",
			mutate:    func(req *dto.ContactRequest) { req.Email = "jane doe@example.com" },
			wantField: "email",
		},
		{
			name:      "email too long",
			mutate:    func(req *dto.ContactRequest) { req.Email = strings.Repeat("a", 250) + "@b.com" },
			wantField: "email",
		},
		{
			name:      "missing message",
			mutate:    func(req *dto.ContactRequest) { req.Message = "" },
			wantField: "message",
		},
		{
			name:        "message too long",
			mutate:      func(req *dto.ContactRequest) { req.Message = strings.Repeat("x", 2001) },
			wantField:   "message",
			wantMessage: "message must be at most 2000 characters, got 2001",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, mail := newContactFixture(5, time.Hour)

			req := validContactRequest()
			tc.mutate(req)

			result, err := svc.Submit(context.Background(), "1.2.3.4", req)
			assert.Nil(t, result)

			ve, ok := AsValidationError(err)
			require.True(t, ok, "expected a validation error, got %v", err)
			assert.Equal(t, tc.wantField, ve.Field)
			if tc.wantMessage != "" {
				assert.Equal(t, tc.wantMessage, ve.Message)
			}
			assert.Empty(t, mail.sent, "invalid input must never reach the mail provider")
		})
	}
}

func TestSubmit_BoundaryLengthsAccepted(t *testing.T) {
	svc, _ := newContactFixture(5, time.Hour)

	req := validContactRequest()
	req.Name = strings.Repeat("a", 100)
	req.Message = strings.Repeat("x", 2000)

	_, err := svc.Submit(context.Background(), "1.2.3.4", req)
	assert.NoError(t, err)
}

func TestSubmit_SanitizesHtml(t *testing.T) {
	svc, mail := newContactFixture(5, time.Hour)

	req := validContactRequest()
	req.Name = `<b>Jane</b>`
	req.Message = `<script>alert("xss")</script> & 'quotes'`

	_, err := svc.Submit(context.Background(), "1.2.3.4", req)
	require.NoError(t, err)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "&lt;b&gt;Jane&lt;/b&gt;", mail.sent[0].Name)
	assert.Equal(t, "&lt;script&gt;alert(&quot;xss&quot;)&lt;/script&gt; &amp; &#39;quotes&#39;", mail.sent[0].Message)
}

func TestSubmit_RateLimitDeniesSixthRequest(t *testing.T) {
	svc, mail := newContactFixture(5, time.Hour)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		result, err := svc.Submit(ctx, "1.2.3.4", validContactRequest())
		require.NoError(t, err)
		assert.Equal(t, 4-i, result.Remaining)
	}

	result, err := svc.Submit(ctx, "1.2.3.4", validContactRequest())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Len(t, mail.sent, 5, "a denied request must not reach the mail provider")

	// Another client is unaffected.
	_, err = svc.Submit(ctx, "5.6.7.8", validContactRequest())
	assert.NoError(t, err)
}

func TestSubmit_RateLimitWindowReset(t *testing.T) {
	svc, _ := newContactFixture(1, 30*time.Millisecond)
	ctx := context.Background()

	_, err := svc.Submit(ctx, "1.2.3.4", validContactRequest())
	require.NoError(t, err)

	_, err = svc.Submit(ctx, "1.2.3.4", validContactRequest())
	assert.ErrorIs(t, err, ErrRateLimited)

	time.Sleep(60 * time.Millisecond)

	_, err = svc.Submit(ctx, "1.2.3.4", validContactRequest())
	assert.NoError(t, err, "a lapsed window must admit again")
}

func TestSubmit_ConcurrentRequestsSingleSlot(t *testing.T) {
	svc, mail := newContactFixture(1, time.Hour)

	const workers = 20

	var wg sync.WaitGroup
	var admitted int32
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Submit(context.Background(), "1.2.3.4", validContactRequest()); err == nil {
				atomic.AddInt32(&admitted, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), admitted, "exactly one request fits a single-slot window")
	assert.Equal(t, int32(1), atomic.LoadInt32(&mail.numCalls))
}

func TestSubmit_MailFailureIsUpstreamFailure(t *testing.T) {
	mail := &fakeEmailService{sendErr: errors.New("provider down")}
	svc := NewContactService(memory.NewRateLimitRepository(time.Minute), mail, nopLogger{}, time.Hour, 5)

	result, err := svc.Submit(context.Background(), "1.2.3.4", validContactRequest())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrUpstreamFailure)
}

func TestSubmit_BrokenLimiterFailsOpen(t *testing.T) {
	mail := &fakeEmailService{}
	svc := NewContactService(brokenRateLimitStore{}, mail, nopLogger{}, time.Hour, 5)

	result, err := svc.Submit(context.Background(), "1.2.3.4", validContactRequest())
	require.NoError(t, err)
	assert.Len(t, mail.sent, 1)
	assert.Equal(t, 4, result.Remaining)
}

func TestSanitizeForHtml(t *testing.T) {
	assert.Equal(t, "&lt;script&gt;", SanitizeForHtml("<script>"))
	assert.Equal(t, "a &amp; b", SanitizeForHtml("a & b"))
	assert.Equal(t, "&quot;hi&quot; &#39;there&#39;", SanitizeForHtml(`"hi" 'there'`))
	assert.Equal(t, "plain text", SanitizeForHtml("plain text"))
}
