// Package comms delivers user notifications through the external communications service.
package comms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"github.com/workplanner/workplanner-backend-go/internal/domain/task"
	"github.com/workplanner/workplanner-backend-go/internal/domain/user"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/jwt"
)

const vacationRequestEndpoint = "vacation-request"

var ErrUnexpectedStatus = errors.New("comms service returned non-successful status")

// Recipient is a notified user. ID and Role only feed the bearer token.
type Recipient struct {
	ID    int64     `json:"-"`
	Role  user.Role `json:"-"`
	Email string    `json:"email"`
	Name  *string   `json:"name"`
}

// RecipientFromUser maps a user to a notification recipient
func RecipientFromUser(u user.User) Recipient {
	return Recipient{ID: u.ID, Role: u.Role, Email: u.EmailOrEmpty(), Name: u.Name}
}

// TaskPayload is the task shape the comms service expects. Dates are epoch milliseconds.
type TaskPayload struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Start       *int64  `json:"start"`
	End         *int64  `json:"end"`
}

func NewTaskPayload(t task.Task) TaskPayload {
	p := TaskPayload{ID: t.ID, Name: t.Name, Description: t.Description}
	if t.StartDate != nil {
		ms := t.StartDate.UnixMilli()
		p.Start = &ms
	}
	if t.EndDate != nil {
		ms := t.EndDate.UnixMilli()
		p.End = &ms
	}
	return p
}

type vacationRequestBody struct {
	Assigner Recipient   `json:"assigner"`
	Assignee Recipient   `json:"assignee"`
	Task     TaskPayload `json:"task"`
}

type Client interface {
	// SendVacationRequest tells assignee (the manager) that assigner requested the vacation.
	SendVacationRequest(ctx context.Context, assigner, assignee Recipient, t TaskPayload) error
}

// New returns an HTTP client, or a Noop client when baseURL is empty.
func New(baseURL string, timeout time.Duration, tokens jwt.Service) Client {
	if baseURL == "" {
		return Noop{}
	}
	return NewHTTPClient(baseURL, timeout, tokens)
}

// HTTPClient posts notifications through a circuit breaker so a failing comms
// service is not hit on every request.
type HTTPClient struct {
	client  *http.Client
	baseURL string
	tokens  jwt.Service
	cb      *gobreaker.CircuitBreaker
}

func NewHTTPClient(baseURL string, timeout time.Duration, tokens jwt.Service) *HTTPClient {
	settings := gobreaker.Settings{
		Name:        "Comms-API",
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// Trip at a 50% failure rate once 10 requests were seen
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	}

	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		tokens:  tokens,
		cb:      gobreaker.NewCircuitBreaker(settings),
	}
}

// SendVacationRequest implements Client.
func (c *HTTPClient) SendVacationRequest(ctx context.Context, assigner, assignee Recipient, t TaskPayload) error {
	return c.post(ctx, vacationRequestEndpoint, assigner, vacationRequestBody{
		Assigner: assigner,
		Assignee: assignee,
		Task:     t,
	})
}

// post signs the request as sender and sends body to /api/notifications/{endpoint}.
func (c *HTTPClient) post(ctx context.Context, endpoint string, sender Recipient, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal comms payload: %w", err)
	}

	token, _, err := c.tokens.GenerateAccessToken(sender.ID, sender.Email, sender.Role)
	if err != nil {
		return fmt.Errorf("failed to sign comms token: %w", err)
	}

	url := c.baseURL + "/api/notifications/" + endpoint
	idempotencyKey := uuid.NewString()

	_, err = c.cb.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("failed to create comms request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Idempotency-Key", idempotencyKey)

		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("failed to call comms service: %w", err)
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("comms %s: %w", endpoint, err)
	}

	slog.DebugContext(ctx, "comms notification sent", "endpoint", endpoint, "idempotency_key", idempotencyKey)
	return nil
}

// Noop drops every notification
type Noop struct{}

func (Noop) SendVacationRequest(ctx context.Context, assigner, assignee Recipient, t TaskPayload) error {
	return nil
}
