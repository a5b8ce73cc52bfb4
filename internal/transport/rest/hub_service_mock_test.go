package rest

import (
	"context"
	"github.com/heartmarshall/healthhub-backend/internal/domain"
	"github.com/heartmarshall/healthhub-backend/internal/service/hub"
	"sync"
)

var _ hubService = &hubServiceMock{}

type hubServiceMock struct {
	DismissFunc           func(ctx context.Context, input hub.DismissInput) error
	ListNotificationsFunc func(ctx context.Context) ([]domain.Notification, error)

	calls struct {
		Dismiss []struct {
			Ctx   context.Context
			Input hub.DismissInput
		}
		ListNotifications []struct {
			Ctx context.Context
		}
	}
	lockDismiss           sync.RWMutex
	lockListNotifications sync.RWMutex
}

func (mock *hubServiceMock) Dismiss(ctx context.Context, input hub.DismissInput) error {
	if mock.DismissFunc == nil {
		panic("hubServiceMock.DismissFunc: method is nil but hubService.Dismiss was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input hub.DismissInput
	}{Ctx: ctx, Input: input}
	mock.lockDismiss.Lock()
	mock.calls.Dismiss = append(mock.calls.Dismiss, callInfo)
	mock.lockDismiss.Unlock()
	return mock.DismissFunc(ctx, input)
}

func (mock *hubServiceMock) DismissCalls() []struct {
	Ctx   context.Context
	Input hub.DismissInput
} {
	mock.lockDismiss.RLock()
	calls := mock.calls.Dismiss
	mock.lockDismiss.RUnlock()
	return calls
}

func (mock *hubServiceMock) ListNotifications(ctx context.Context) ([]domain.Notification, error) {
	if mock.ListNotificationsFunc == nil {
		panic("hubServiceMock.ListNotificationsFunc: method is nil but hubService.ListNotifications was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListNotifications.Lock()
	mock.calls.ListNotifications = append(mock.calls.ListNotifications, callInfo)
	mock.lockListNotifications.Unlock()
	return mock.ListNotificationsFunc(ctx)
}

func (mock *hubServiceMock) ListNotificationsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListNotifications.RLock()
	calls := mock.calls.ListNotifications
	mock.lockListNotifications.RUnlock()
	return calls
}
