package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dharmayuga/dharmayuga/internal/catalog"
	"github.com/dharmayuga/dharmayuga/internal/domain"
	"github.com/dharmayuga/dharmayuga/internal/hero"
	"github.com/dharmayuga/dharmayuga/internal/interaction"
	"github.com/dharmayuga/dharmayuga/internal/ratelimit"
	"github.com/dharmayuga/dharmayuga/internal/reelfeed"
	"github.com/dharmayuga/dharmayuga/internal/repositories"
	mock_reel "github.com/dharmayuga/dharmayuga/internal/repositories/reel/mocks"
	mock_reelcomment "github.com/dharmayuga/dharmayuga/internal/repositories/reelcomment/mocks"
	mock_reellike "github.com/dharmayuga/dharmayuga/internal/repositories/reellike/mocks"
	"github.com/dharmayuga/dharmayuga/pkg/config"
	"github.com/dharmayuga/dharmayuga/pkg/errors"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
)

type staticCatalog[E any] struct {
	entries []E
}

func (s staticCatalog[E]) ListEntries(ctx context.Context) ([]E, error) {
	return s.entries, nil
}

func (s staticCatalog[E]) ListSections(ctx context.Context, parentID string) ([]domain.Section, error) {
	return nil, nil
}

func (s staticCatalog[E]) GetContent(ctx context.Context, parentID, sectionID string) (*domain.Content, error) {
	return nil, errors.NotFound("content not found")
}

type fixture struct {
	router   http.Handler
	reels    *mock_reel.MockRepository
	likes    *mock_reellike.MockRepository
	comments *mock_reelcomment.MockRepository
	hero     *hero.Controller
}

func newFixture(t *testing.T, burst int) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	reels := mock_reel.NewMockRepository(ctrl)
	likes := mock_reellike.NewMockRepository(ctrl)
	comments := mock_reelcomment.NewMockRepository(ctrl)

	cfg := &config.Config{}
	cfg.Session.CookieName = "user_session_id"
	cfg.Session.CookieMaxAge = time.Hour

	log := logger.Discard()
	clock := clockwork.NewFakeClock()

	controller := hero.New(clock, hero.DefaultConfig(), log)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go controller.Run(ctx)

	catalogSvc := catalog.NewService(
		staticCatalog[domain.Deity]{entries: []domain.Deity{{ID: "g1", Name: "Ganesha"}}},
		staticCatalog[domain.Scripture]{entries: []domain.Scripture{
			{ID: "s1", Name: "Rigveda", Category: "Veda"},
			{ID: "s2", Name: "Gita", Category: "Itihasa"},
		}},
	)

	h := NewHandler(Opts{
		Catalog: catalogSvc,
		Feed:    reelfeed.NewFeed(reels, log),
		Interactions: interaction.NewFactory(interaction.Opts{
			Reels:    reels,
			Likes:    likes,
			Comments: comments,
			Logger:   log,
		}),
		Hero:      controller,
		HeroPages: hero.NewPages(staticPages{}, controller),
		Limiter:   ratelimit.NewInMemoryLimiter(1, time.Hour, burst),
		Clock:     clock,
		Registry:  prometheus.NewRegistry(),
		Config:    cfg,
		Logger:    log,
	})

	return &fixture{
		router:   h.Router(),
		reels:    reels,
		likes:    likes,
		comments: comments,
		hero:     controller,
	}
}

// timeoutQuerier fails every statement the way a pool does when the deadline passes.
type timeoutQuerier struct{}

func (timeoutQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, context.DeadlineExceeded
}

func (timeoutQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, context.DeadlineExceeded
}

func (timeoutQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

type staticPages struct{}

func (staticPages) ListActive(ctx context.Context) ([]domain.HeroPage, error) {
	return []domain.HeroPage{{ID: "h1"}, {ID: "h2"}, {ID: "h3"}}, nil
}

func (f *fixture) do(method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, data any) APIResponse {
	t.Helper()
	resp := APIResponse{Data: data}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "user_session_id" {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestHealthz(t *testing.T) {
	f := newFixture(t, 5)
	rec := f.do(http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestScripturesByCategory(t *testing.T) {
	f := newFixture(t, 5)

	var st struct {
		Data []domain.Scripture `json:"data"`
	}
	rec := f.do(http.MethodGet, "/api/scriptures?category=veda", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	decode(t, rec, &st)
	if len(st.Data) != 1 || st.Data[0].ID != "s1" {
		t.Fatalf("data = %+v", st.Data)
	}
}

func TestContentNotFoundIsReportedInState(t *testing.T) {
	f := newFixture(t, 5)

	var st struct {
		Data *domain.Content `json:"data"`
		Err  string          `json:"error"`
	}
	rec := f.do(http.MethodGet, "/api/deities/g1/sections/x", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	decode(t, rec, &st)
	if st.Data != nil || st.Err != "content not found" {
		t.Fatalf("state = %+v", st)
	}
}

func TestToggleLikeIssuesSessionCookie(t *testing.T) {
	f := newFixture(t, 5)

	f.likes.EXPECT().ListByReel(gomock.Any(), "r1").Return(nil, nil)
	f.comments.EXPECT().ListByReel(gomock.Any(), "r1").Return(nil, nil)
	f.likes.EXPECT().Create(gomock.Any(), "r1", gomock.Any()).
		DoAndReturn(func(ctx context.Context, reelID, sessionID string) (*domain.ReelLike, error) {
			return &domain.ReelLike{ID: "l1", ReelID: reelID, UserSessionID: sessionID}, nil
		})
	f.reels.EXPECT().GetCounter(gomock.Any(), "r1", domain.CounterLikes).Return(3, nil)
	f.reels.EXPECT().SetCounter(gomock.Any(), "r1", domain.CounterLikes, 4).Return(nil)

	rec := f.do(http.MethodPost, "/api/reels/r1/like", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}

	cookie := sessionCookie(t, rec)
	if !strings.HasPrefix(cookie.Value, "session_") {
		t.Fatalf("cookie = %q", cookie.Value)
	}

	var st interaction.State
	decode(t, rec, &st)
	if !st.IsLiked || st.LikesCount != 1 {
		t.Fatalf("state = %+v", st)
	}
}

func TestInvalidCommentIsBadRequest(t *testing.T) {
	f := newFixture(t, 5)

	rec := f.do(http.MethodPost, "/api/reels/r1/comments", `{"user_name":"  ","comment_text":"hi"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if resp := decode(t, rec, nil); resp.Error != "Please enter your name." {
		t.Fatalf("error = %q", resp.Error)
	}

	rec = f.do(http.MethodPost, "/api/reels/r1/comments", `{"unknown":1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMutationsAreRateLimitedPerSession(t *testing.T) {
	f := newFixture(t, 1)
	body := `{"user_name":"","comment_text":""}`

	first := f.do(http.MethodPost, "/api/reels/r1/comments", body)
	if first.Code != http.StatusBadRequest {
		t.Fatalf("first status = %d", first.Code)
	}
	cookie := sessionCookie(t, first)

	second := f.do(http.MethodPost, "/api/reels/r1/comments", body, cookie)
	if second.Code != http.StatusTooManyRequests {
		t.Fatalf("second status = %d", second.Code)
	}

	// A new visitor has its own bucket.
	other := f.do(http.MethodPost, "/api/reels/r1/comments", body)
	if other.Code != http.StatusBadRequest {
		t.Fatalf("other status = %d", other.Code)
	}
}

func TestHeroEndpoints(t *testing.T) {
	f := newFixture(t, 5)

	var snap hero.Snapshot
	rec := f.do(http.MethodGet, "/api/hero", "")
	decode(t, rec, &snap)
	if len(snap.Pages) != 3 || snap.Index != 0 {
		t.Fatalf("snapshot = %+v", snap)
	}

	rec = f.do(http.MethodPost, "/api/hero/previous", "")
	decode(t, rec, &snap)
	if snap.Index != 2 {
		t.Fatalf("index = %d, want 2", snap.Index)
	}

	rec = f.do(http.MethodPost, "/api/hero/goto/abc", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}

	f.do(http.MethodPost, "/api/hero/touch-start", `{"x":300}`)
	rec = f.do(http.MethodPost, "/api/hero/touch-end", `{"x":100}`)
	decode(t, rec, &snap)
	if snap.Index != 0 {
		t.Fatalf("index after swipe = %d, want 0", snap.Index)
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: errors.Invalid("bad"), want: http.StatusBadRequest},
		{err: errors.NotFound("missing"), want: http.StatusNotFound},
		{err: interaction.ErrBusy, want: http.StatusConflict},
		{err: ErrRateLimited, want: http.StatusTooManyRequests},
		{err: errors.WrapWithCode(errors.Join(errors.ErrServiceUnavailable, context.DeadlineExceeded), errors.CodeRemote, "database unavailable"), want: http.StatusServiceUnavailable},
		{err: errors.New("connection refused"), want: http.StatusBadGateway},
	}
	for _, tt := range tests {
		if got := statusFor(tt.err); got != tt.want {
			t.Errorf("statusFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestUpdateLikesCount(t *testing.T) {
	f := newFixture(t, 5)

	f.reels.EXPECT().List(gomock.Any()).Return([]domain.Reel{{ID: "r1", LikesCount: 2}}, nil)
	f.reels.EXPECT().SetCounter(gomock.Any(), "r1", domain.CounterLikes, 3).Return(nil)

	var counts map[string]int
	rec := f.do(http.MethodPost, "/api/reels/r1/likes-count", `{"increment":true}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	decode(t, rec, &counts)
	if counts["likes_count"] != 3 {
		t.Fatalf("counts = %v", counts)
	}

	rec = f.do(http.MethodPost, "/api/reels/missing/likes-count", `{"increment":false}`, sessionCookie(t, rec))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown reel status = %d", rec.Code)
	}
}

func TestDatabaseTimeoutIsServiceUnavailable(t *testing.T) {
	f := newFixture(t, 5)

	f.reels.EXPECT().List(gomock.Any()).Return([]domain.Reel{{ID: "r1", SharesCount: 7}}, nil)
	f.reels.EXPECT().SetCounter(gomock.Any(), "r1", domain.CounterShares, 8).
		DoAndReturn(func(ctx context.Context, id string, counter domain.Counter, value int) error {
			_, err := repositories.Update(ctx, timeoutQuerier{}, "reels", map[string]any{"shares_count": value}, map[string]any{"id": id})
			return err
		})

	rec := f.do(http.MethodPost, "/api/reels/r1/share", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	if resp := decode(t, rec, nil); resp.Code != errors.CodeRemote {
		t.Fatalf("code = %q", resp.Code)
	}
}

func TestUnencodablePayloadIsReported(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := writeJSON(rec, http.StatusOK, APIResponse{Success: true, Data: make(chan int)}); err == nil {
		t.Fatal("expected encode error")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
