package hub

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/heartmarshall/healthhub-backend/internal/domain"
)

var _ eventRepo = &eventRepoMock{}

type eventRepoMock struct {
	ListMissingDetailsFunc func(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) ([]domain.TrackEvent, error)

	calls struct {
		ListMissingDetails []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
			To     time.Time
		}
	}
	lockListMissingDetails sync.RWMutex
}

func (mock *eventRepoMock) ListMissingDetails(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) ([]domain.TrackEvent, error) {
	if mock.ListMissingDetailsFunc == nil {
		panic("eventRepoMock.ListMissingDetailsFunc: method is nil but eventRepo.ListMissingDetails was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}{Ctx: ctx, UserID: userID, From: from, To: to}
	mock.lockListMissingDetails.Lock()
	mock.calls.ListMissingDetails = append(mock.calls.ListMissingDetails, callInfo)
	mock.lockListMissingDetails.Unlock()
	return mock.ListMissingDetailsFunc(ctx, userID, from, to)
}

func (mock *eventRepoMock) ListMissingDetailsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   time.Time
	To     time.Time
} {
	mock.lockListMissingDetails.RLock()
	calls := mock.calls.ListMissingDetails
	mock.lockListMissingDetails.RUnlock()
	return calls
}

var _ trackRepo = &trackRepoMock{}

type trackRepoMock struct {
	ListSymptomStatusFunc func(ctx context.Context, userID uuid.UUID) ([]domain.TrackSymptomStatus, error)

	calls struct {
		ListSymptomStatus []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListSymptomStatus sync.RWMutex
}

func (mock *trackRepoMock) ListSymptomStatus(ctx context.Context, userID uuid.UUID) ([]domain.TrackSymptomStatus, error) {
	if mock.ListSymptomStatusFunc == nil {
		panic("trackRepoMock.ListSymptomStatusFunc: method is nil but trackRepo.ListSymptomStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListSymptomStatus.Lock()
	mock.calls.ListSymptomStatus = append(mock.calls.ListSymptomStatus, callInfo)
	mock.lockListSymptomStatus.Unlock()
	return mock.ListSymptomStatusFunc(ctx, userID)
}

func (mock *trackRepoMock) ListSymptomStatusCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListSymptomStatus.RLock()
	calls := mock.calls.ListSymptomStatus
	mock.lockListSymptomStatus.RUnlock()
	return calls
}

var _ dismissalRepo = &dismissalRepoMock{}

type dismissalRepoMock struct {
	ListForUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Dismissal, error)
	UpsertFunc      func(ctx context.Context, userID uuid.UUID, key domain.DismissalKey, dismissedAt time.Time) error
	DeleteManyFunc  func(ctx context.Context, userID uuid.UUID, keys []domain.DismissalKey) (int, error)

	calls struct {
		ListForUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Upsert []struct {
			Ctx         context.Context
			UserID      uuid.UUID
			Key         domain.DismissalKey
			DismissedAt time.Time
		}
		DeleteMany []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Keys   []domain.DismissalKey
		}
	}
	lockListForUser sync.RWMutex
	lockUpsert      sync.RWMutex
	lockDeleteMany  sync.RWMutex
}

func (mock *dismissalRepoMock) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Dismissal, error) {
	if mock.ListForUserFunc == nil {
		panic("dismissalRepoMock.ListForUserFunc: method is nil but dismissalRepo.ListForUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockListForUser.Lock()
	mock.calls.ListForUser = append(mock.calls.ListForUser, callInfo)
	mock.lockListForUser.Unlock()
	return mock.ListForUserFunc(ctx, userID)
}

func (mock *dismissalRepoMock) ListForUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockListForUser.RLock()
	calls := mock.calls.ListForUser
	mock.lockListForUser.RUnlock()
	return calls
}

func (mock *dismissalRepoMock) Upsert(ctx context.Context, userID uuid.UUID, key domain.DismissalKey, dismissedAt time.Time) error {
	if mock.UpsertFunc == nil {
		panic("dismissalRepoMock.UpsertFunc: method is nil but dismissalRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		UserID      uuid.UUID
		Key         domain.DismissalKey
		DismissedAt time.Time
	}{Ctx: ctx, UserID: userID, Key: key, DismissedAt: dismissedAt}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, userID, key, dismissedAt)
}

func (mock *dismissalRepoMock) UpsertCalls() []struct {
	Ctx         context.Context
	UserID      uuid.UUID
	Key         domain.DismissalKey
	DismissedAt time.Time
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *dismissalRepoMock) DeleteMany(ctx context.Context, userID uuid.UUID, keys []domain.DismissalKey) (int, error) {
	if mock.DeleteManyFunc == nil {
		panic("dismissalRepoMock.DeleteManyFunc: method is nil but dismissalRepo.DeleteMany was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Keys   []domain.DismissalKey
	}{Ctx: ctx, UserID: userID, Keys: keys}
	mock.lockDeleteMany.Lock()
	mock.calls.DeleteMany = append(mock.calls.DeleteMany, callInfo)
	mock.lockDeleteMany.Unlock()
	return mock.DeleteManyFunc(ctx, userID, keys)
}

func (mock *dismissalRepoMock) DeleteManyCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Keys   []domain.DismissalKey
} {
	mock.lockDeleteMany.RLock()
	calls := mock.calls.DeleteMany
	mock.lockDeleteMany.RUnlock()
	return calls
}
