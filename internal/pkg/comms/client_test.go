package comms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workplanner/workplanner-backend-go/internal/domain/task"
	"github.com/workplanner/workplanner-backend-go/internal/domain/user"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/jwt"
)

func strPtr(s string) *string { return &s }

func TestHTTPClient_SendVacationRequest(t *testing.T) {
	tokens := jwt.NewJWTService("comms-secret", "1h")

	var gotPath, gotAuth, gotKey string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("Idempotency-Key")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, tokens)

	start := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 11, 14, 0, 0, 0, 0, time.UTC)
	payload := NewTaskPayload(task.Task{ID: 10, Name: "Holiday", StartDate: &start, EndDate: &end})

	requester := Recipient{ID: 2, Role: user.RoleEmployee, Email: "charlie@example.com", Name: strPtr("Charlie")}
	manager := Recipient{ID: 1, Role: user.RoleManager, Email: "alice@example.com", Name: strPtr("Alice")}

	err := client.SendVacationRequest(context.Background(), requester, manager, payload)
	require.NoError(t, err)

	assert.Equal(t, "/api/notifications/vacation-request", gotPath)
	require.True(t, strings.HasPrefix(gotAuth, "Bearer "))
	_, err = uuid.Parse(gotKey)
	assert.NoError(t, err)

	decoded, err := tokens.JWTAuth().Decode(strings.TrimPrefix(gotAuth, "Bearer "))
	require.NoError(t, err)
	claims, err := decoded.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "charlie@example.com", claims["email"])

	assigner := gotBody["assigner"].(map[string]interface{})
	assert.Equal(t, "charlie@example.com", assigner["email"])
	assert.NotContains(t, assigner, "ID")
	assignee := gotBody["assignee"].(map[string]interface{})
	assert.Equal(t, "Alice", assignee["name"])

	taskBody := gotBody["task"].(map[string]interface{})
	assert.Equal(t, float64(10), taskBody["id"])
	assert.Equal(t, float64(start.UnixMilli()), taskBody["start"])
	assert.Equal(t, float64(end.UnixMilli()), taskBody["end"])
	assert.Nil(t, taskBody["description"])
}

func TestHTTPClient_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, jwt.NewJWTService("s", "1h"))

	err := client.SendVacationRequest(context.Background(), Recipient{ID: 1}, Recipient{ID: 2}, TaskPayload{ID: 1})
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
}

func TestHTTPClient_BreakerOpensAfterRepeatedFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second, jwt.NewJWTService("s", "1h"))

	for i := 0; i < 10; i++ {
		_ = client.SendVacationRequest(context.Background(), Recipient{ID: 1}, Recipient{ID: 2}, TaskPayload{ID: 1})
	}
	err := client.SendVacationRequest(context.Background(), Recipient{ID: 1}, Recipient{ID: 2}, TaskPayload{ID: 1})

	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
	assert.Equal(t, int32(10), calls.Load())
}

func TestNew_EmptyURLIsNoop(t *testing.T) {
	client := New("", time.Second, nil)

	_, ok := client.(Noop)
	require.True(t, ok)
	assert.NoError(t, client.SendVacationRequest(context.Background(), Recipient{}, Recipient{}, TaskPayload{}))
}

func TestNewTaskPayload_MissingDates(t *testing.T) {
	p := NewTaskPayload(task.Task{ID: 3, Name: "x", Description: strPtr("d")})

	assert.Nil(t, p.Start)
	assert.Nil(t, p.End)
	assert.Equal(t, "d", *p.Description)
}

func TestRecipientFromUser(t *testing.T) {
	r := RecipientFromUser(user.User{ID: 4, Role: user.RoleManager, Name: strPtr("Alice")})

	assert.Equal(t, int64(4), r.ID)
	assert.Equal(t, "", r.Email)
	assert.Equal(t, "Alice", *r.Name)
}
