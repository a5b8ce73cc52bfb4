package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/healthhub-backend/internal/domain"
	"github.com/heartmarshall/healthhub-backend/internal/service/hub"
)

//go:generate moq -out hub_service_mock_test.go -pkg rest . hubService

func strPtr(s string) *string { return &s }

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	var env testEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func newHubHandler(svc *hubServiceMock) *HubHandler {
	return NewHubHandler(svc, slog.New(slog.DiscardHandler))
}

func TestHubHandler_List(t *testing.T) {
	t.Parallel()

	svc := &hubServiceMock{
		ListNotificationsFunc: func(ctx context.Context) ([]domain.Notification, error) {
			return []domain.Notification{
				{
					ID:               "appointmentDetails:e1",
					Kind:             domain.KindAppointmentDetails,
					Title:            "Add details to your appointment event",
					Message:          "msg",
					CTALabel:         strPtr("Add details"),
					Href:             strPtr("/tracks/heart/events/e1"),
					EntityID:         "e1",
					NotificationType: domain.NotificationEventMissingDetails,
				},
				{
					ID:               "symptomReminder:t1",
					Kind:             domain.KindSymptomReminder,
					Title:            "How is your Knee?",
					Message:          "msg",
					CTALabel:         strPtr("Log symptom"),
					EntityID:         "t1",
					NotificationType: domain.NotificationTrackMissingSymptom,
					TrackSlug:        strPtr("knee"),
				},
			}, nil
		},
	}

	rec := httptest.NewRecorder()
	newHubHandler(svc).List(rec, httptest.NewRequest(http.MethodGet, "/api/hub/notifications", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Empty(t, env.Error)
	assert.JSONEq(t, `[
		{"id":"appointmentDetails:e1","kind":"appointmentDetails","title":"Add details to your appointment event","message":"msg",
		 "ctaLabel":"Add details","href":"/tracks/heart/events/e1","entityId":"e1","notificationType":"EVENT_MISSING_DETAILS"},
		{"id":"symptomReminder:t1","kind":"symptomReminder","title":"How is your Knee?","message":"msg",
		 "ctaLabel":"Log symptom","entityId":"t1","notificationType":"TRACK_MISSING_SYMPTOM","trackSlug":"knee"}
	]`, string(env.Data))
}

func TestHubHandler_List_EmptyIsArray(t *testing.T) {
	t.Parallel()

	svc := &hubServiceMock{
		ListNotificationsFunc: func(ctx context.Context) ([]domain.Notification, error) {
			return nil, nil
		},
	}

	rec := httptest.NewRecorder()
	newHubHandler(svc).List(rec, httptest.NewRequest(http.MethodGet, "/api/hub/notifications", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.Equal(t, "[]", string(env.Data))
}

func TestHubHandler_List_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{
			"store failure surfaces message",
			fmt.Errorf("compute eligible: %w", errors.New("connection reset by peer")),
			http.StatusInternalServerError,
			"compute eligible: connection reset by peer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &hubServiceMock{
				ListNotificationsFunc: func(ctx context.Context) ([]domain.Notification, error) {
					return nil, tt.err
				},
			}

			rec := httptest.NewRecorder()
			newHubHandler(svc).List(rec, httptest.NewRequest(http.MethodGet, "/api/hub/notifications", nil))

			require.Equal(t, tt.wantCode, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantMsg, env.Error)
			assert.Empty(t, env.Data)
		})
	}
}

func TestHubHandler_Dismiss(t *testing.T) {
	t.Parallel()

	svc := &hubServiceMock{
		DismissFunc: func(ctx context.Context, input hub.DismissInput) error {
			return nil
		},
	}

	body := `{"type":"TRACK_MISSING_SYMPTOM","entityId":"t1"}`
	rec := httptest.NewRecorder()
	newHubHandler(svc).Dismiss(rec, httptest.NewRequest(http.MethodPost, "/api/hub/notifications/dismiss", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.True(t, env.Success)
	assert.JSONEq(t, `{"ok":true}`, string(env.Data))

	calls := svc.DismissCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, hub.DismissInput{Type: domain.NotificationTrackMissingSymptom, EntityID: "t1"}, calls[0].Input)
}

func TestHubHandler_Dismiss_Errors(t *testing.T) {
	t.Parallel()

	validation := &domain.ValidationError{Errors: []domain.FieldError{{Field: "type", Message: "required"}}}

	tests := []struct {
		name      string
		body      string
		svcErr    error
		wantCode  int
		wantMsg   string
		wantCalls int
	}{
		{"malformed json", `{"type":`, nil, http.StatusBadRequest, "invalid request body", 0},
		{"oversized body", `{"type":"` + strings.Repeat("A", 8<<10) + `"}`, nil, http.StatusBadRequest, "invalid request body", 0},
		{"validation", `{"entityId":"x"}`, validation, http.StatusBadRequest, "validation: type: required", 1},
		{"unauthorized", `{"type":"EVENT_MISSING_DETAILS","entityId":"x"}`, domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized", 1},
		{"store failure is generic", `{"type":"EVENT_MISSING_DETAILS","entityId":"x"}`, errors.New("pq: deadlock"), http.StatusInternalServerError, "internal server error", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &hubServiceMock{
				DismissFunc: func(ctx context.Context, input hub.DismissInput) error {
					return tt.svcErr
				},
			}

			rec := httptest.NewRecorder()
			newHubHandler(svc).Dismiss(rec, httptest.NewRequest(http.MethodPost, "/api/hub/notifications/dismiss", strings.NewReader(tt.body)))

			require.Equal(t, tt.wantCode, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantMsg, env.Error)
			assert.Len(t, svc.DismissCalls(), tt.wantCalls)
		})
	}
}
