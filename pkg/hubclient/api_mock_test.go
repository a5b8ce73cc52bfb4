package hubclient

import (
	"context"
	"sync"
)

var _ api = &apiMock{}

type apiMock struct {
	ListFunc    func(ctx context.Context) ([]Notification, error)
	DismissFunc func(ctx context.Context, notificationType string, entityID string) error

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Dismiss []struct {
			Ctx              context.Context
			NotificationType string
			EntityID         string
		}
	}
	lockList    sync.RWMutex
	lockDismiss sync.RWMutex
}

func (mock *apiMock) List(ctx context.Context) ([]Notification, error) {
	if mock.ListFunc == nil {
		panic("apiMock.ListFunc: method is nil but api.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *apiMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *apiMock) Dismiss(ctx context.Context, notificationType string, entityID string) error {
	if mock.DismissFunc == nil {
		panic("apiMock.DismissFunc: method is nil but api.Dismiss was just called")
	}
	callInfo := struct {
		Ctx              context.Context
		NotificationType string
		EntityID         string
	}{
		Ctx:              ctx,
		NotificationType: notificationType,
		EntityID:         entityID,
	}
	mock.lockDismiss.Lock()
	mock.calls.Dismiss = append(mock.calls.Dismiss, callInfo)
	mock.lockDismiss.Unlock()
	return mock.DismissFunc(ctx, notificationType, entityID)
}

func (mock *apiMock) DismissCalls() []struct {
	Ctx              context.Context
	NotificationType string
	EntityID         string
} {
	mock.lockDismiss.RLock()
	defer mock.lockDismiss.RUnlock()
	return mock.calls.Dismiss
}
