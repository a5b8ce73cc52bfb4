package seeder

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/heartmarshall/healthhub-backend/internal/domain"
)

type fakeTx struct{ runs int }

func (f *fakeTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.runs++
	return fn(ctx)
}

type recorder struct {
	users  []domain.User
	tracks []domain.HealthTrack
	events []domain.Event
	failOn string
}

type userSink struct{ r *recorder }
type trackSink struct{ r *recorder }
type eventSink struct{ r *recorder }

func (s userSink) Create(_ context.Context, u *domain.User) error {
	s.r.users = append(s.r.users, *u)
	return nil
}

func (s trackSink) Create(_ context.Context, t *domain.HealthTrack) error {
	if s.r.failOn == t.Title {
		return domain.ErrAlreadyExists
	}
	s.r.tracks = append(s.r.tracks, *t)
	return nil
}

func (s eventSink) Create(_ context.Context, ev *domain.Event) error {
	s.r.events = append(s.r.events, *ev)
	return nil
}

var seedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestSeeder(r *recorder, tx *fakeTx) *Seeder {
	s := New(slog.New(slog.DiscardHandler), tx, userSink{r}, trackSink{r}, eventSink{r})
	s.now = func() time.Time { return seedNow }
	return s
}

func TestSeeder_Run(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	tx := &fakeTx{}
	res, err := newTestSeeder(r, tx).Run(context.Background(), Config{
		UserName:  "Demo",
		UserEmail: " Demo@Example.com ",
		Tracks:    []string{"Knee Rehab", " ", "Sleep"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tx.runs != 1 {
		t.Errorf("transactions: got %d, want 1", tx.runs)
	}
	if res.Tracks != 2 || res.Events != 6 {
		t.Errorf("result: got %+v, want 2 tracks and 6 events", res)
	}
	if len(r.users) != 1 || r.users[0].Email != "demo@example.com" || r.users[0].ID != res.UserID {
		t.Fatalf("users: got %+v", r.users)
	}
	if len(r.tracks) != 2 || r.tracks[0].Slug != "knee-rehab" || r.tracks[1].Slug != "sleep" {
		t.Fatalf("tracks: got %+v", r.tracks)
	}

	window := seedNow.Add(-7 * 24 * time.Hour)
	var missingDetails, recentSymptoms int
	for _, ev := range r.events {
		if !ev.Date.Before(window) && !ev.HasDetails() {
			missingDetails++
		}
		if ev.Type == domain.EventTypeSymptom && !ev.Date.Before(window) {
			recentSymptoms++
		}
	}
	if missingDetails != 2 {
		t.Errorf("events missing details: got %d, want one per track", missingDetails)
	}
	if recentSymptoms != 1 {
		t.Errorf("recent symptoms: got %d, want only the first track", recentSymptoms)
	}
}

func TestSeeder_DryRunWritesNothing(t *testing.T) {
	t.Parallel()

	r := &recorder{}
	tx := &fakeTx{}
	res, err := newTestSeeder(r, tx).Run(context.Background(), Config{
		UserEmail: "demo@example.com",
		Tracks:    []string{"Knee"},
		DryRun:    true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.runs != 0 || len(r.users) != 0 {
		t.Errorf("dry run wrote data: tx runs %d, users %d", tx.runs, len(r.users))
	}
	if res.Tracks != 1 || res.Events != 3 {
		t.Errorf("result: got %+v", res)
	}
}

func TestSeeder_CreateErrorAborts(t *testing.T) {
	t.Parallel()

	r := &recorder{failOn: "Sleep"}
	_, err := newTestSeeder(r, &fakeTx{}).Run(context.Background(), Config{
		UserEmail: "demo@example.com",
		Tracks:    []string{"Knee", "Sleep"},
	})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got: %v", err)
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seeder.yaml")
	yaml := "user_name: Alex\nuser_email: alex@example.com\ntracks:\n  - Migraine\n  - Asthma\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UserName != "Alex" || len(cfg.Tracks) != 2 || cfg.Tracks[1] != "Asthma" {
		t.Errorf("config: got %+v", cfg)
	}
}

func TestLoadConfig_ENV(t *testing.T) {
	t.Setenv("SEEDER_USER_EMAIL", "env@example.com")
	t.Setenv("SEEDER_TRACKS", "Knee,Back")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.UserEmail != "env@example.com" || len(cfg.Tracks) != 2 || cfg.Tracks[0] != "Knee" {
		t.Errorf("config: got %+v", cfg)
	}
	if cfg.UserName != "Demo Patient" {
		t.Errorf("user_name default: got %q", cfg.UserName)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/seeder.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
