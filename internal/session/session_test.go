package session_test

import (
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/dharmayuga/dharmayuga/internal/session"
	mock_session "github.com/dharmayuga/dharmayuga/internal/session/mocks"
	"github.com/jonboulle/clockwork"
	"go.uber.org/mock/gomock"
)

var idPattern = regexp.MustCompile(`^session_\d+_[0-9a-f]{12}$`)

func TestProviderIsStableWithinStorage(t *testing.T) {
	storage := session.NewMemoryStorage()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC))
	provider := session.NewProvider(storage, clock)

	first, err := provider.GetOrCreateSessionID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := provider.GetOrCreateSessionID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("ids differ within one storage scope: %q != %q", first, second)
	}
	if !idPattern.MatchString(first) {
		t.Errorf("id %q does not match %s", first, idPattern)
	}

	stored, ok, _ := storage.Get(session.StorageKey)
	if !ok || stored != first {
		t.Errorf("storage holds %q (present=%v), want %q", stored, ok, first)
	}
}

func TestProviderCreatesNewIDAfterClear(t *testing.T) {
	storage := session.NewMemoryStorage()
	clock := clockwork.NewFakeClock()
	provider := session.NewProvider(storage, clock)

	first, _ := provider.GetOrCreateSessionID()
	storage.Clear()
	clock.Advance(time.Millisecond)
	second, _ := provider.GetOrCreateSessionID()

	if first == second {
		t.Errorf("expected a new id after clearing storage, got %q twice", first)
	}
}

func TestProviderWithFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "storage.json")

	first, err := session.NewProvider(session.NewFileStorage(path), nil).GetOrCreateSessionID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A fresh provider over the same file sees the persisted value.
	storage := session.NewFileStorage(path)
	second, err := session.NewProvider(storage, nil).GetOrCreateSessionID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Errorf("ids differ across providers on the same file: %q != %q", first, second)
	}

	if err := storage.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	third, err := session.NewProvider(storage, nil).GetOrCreateSessionID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if third == first {
		t.Errorf("expected a new id after clearing the file, got %q", third)
	}
}

func TestProviderWritesOnlyOnFirstUse(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock_session.NewMockStorage(ctrl)

	gomock.InOrder(
		storage.EXPECT().Get(session.StorageKey).Return("", false, nil),
		storage.EXPECT().Set(session.StorageKey, gomock.Any()).Return(nil),
		storage.EXPECT().Get(session.StorageKey).Return("session_1_abc", true, nil),
	)

	provider := session.NewProvider(storage, clockwork.NewFakeClock())
	if _, err := provider.GetOrCreateSessionID(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id, err := provider.GetOrCreateSessionID()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "session_1_abc" {
		t.Errorf("id = %q, want stored value", id)
	}
}

func TestProviderSurfacesStorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	storage := mock_session.NewMockStorage(ctrl)
	broken := errors.New("quota exceeded")

	storage.EXPECT().Get(session.StorageKey).Return("", false, nil)
	storage.EXPECT().Set(session.StorageKey, gomock.Any()).Return(broken)

	_, err := session.NewProvider(storage, clockwork.NewFakeClock()).GetOrCreateSessionID()
	if !errors.Is(err, broken) {
		t.Fatalf("err = %v, want %v", err, broken)
	}
}
