package httpapi

import (
	"net/http"
	"strconv"

	"github.com/dharmayuga/dharmayuga/internal/catalog"
	"github.com/dharmayuga/dharmayuga/internal/hero"
	"github.com/dharmayuga/dharmayuga/internal/interaction"
	"github.com/dharmayuga/dharmayuga/internal/ratelimit"
	"github.com/dharmayuga/dharmayuga/internal/reelfeed"
	"github.com/dharmayuga/dharmayuga/internal/session"
	"github.com/dharmayuga/dharmayuga/pkg/config"
	"github.com/dharmayuga/dharmayuga/pkg/errors"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"github.com/gorilla/mux"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var ErrRateLimited = errors.WrapWithCode(errors.ErrTooManyRequests, "rate_limited", "too many requests, slow down")

type Opts struct {
	fx.In

	Catalog      *catalog.Service
	Feed         *reelfeed.Feed
	Interactions *interaction.Factory
	Hero         *hero.Controller
	HeroPages    *hero.Pages
	Limiter      ratelimit.Limiter
	Clock        clockwork.Clock
	Registry     *prometheus.Registry
	Config       *config.Config
	Logger       logger.Logger
}

type Handler struct {
	catalog      *catalog.Service
	feed         *reelfeed.Feed
	interactions *interaction.Factory
	hero         *hero.Controller
	heroPages    *hero.Pages
	limiter      ratelimit.Limiter
	clock        clockwork.Clock
	registry     *prometheus.Registry
	cfg          *config.Config
	logger       logger.Logger
}

func NewHandler(opts Opts) *Handler {
	return &Handler{
		catalog:      opts.Catalog,
		feed:         opts.Feed,
		interactions: opts.Interactions,
		hero:         opts.Hero,
		heroPages:    opts.HeroPages,
		limiter:      opts.Limiter,
		clock:        opts.Clock,
		registry:     opts.Registry,
		cfg:          opts.Config,
		logger:       opts.Logger.WithComponent("HTTP"),
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		h.logger.Error("Failed to write response", "error", err)
	}
}

func (h *Handler) sessionFor(w http.ResponseWriter, r *http.Request) session.Provider {
	storage := newCookieStorage(w, r, h.cfg.Session.CookieName, h.cfg.Session.CookieMaxAge)
	return session.NewProvider(storage, h.clock)
}

// limited resolves the caller's session and charges one mutation to it.
func (h *Handler) limited(w http.ResponseWriter, r *http.Request) (session.Provider, error) {
	provider := h.sessionFor(w, r)
	id, err := provider.GetOrCreateSessionID()
	if err != nil {
		return nil, err
	}
	if !h.limiter.Allow(id) {
		h.logger.Warn("Mutation rate limited", "session_id", id, "path", r.URL.Path)
		return nil, ErrRateLimited
	}
	return session.Static(id), nil
}

// Deities

func (h *Handler) ListDeities(w http.ResponseWriter, r *http.Request) {
	h.success(w, http.StatusOK, h.catalog.Deities.EnsureEntries(r.Context()))
}

func (h *Handler) ListDeitySections(w http.ResponseWriter, r *http.Request) {
	res := h.catalog.Deities.Sections()
	res.SetKeys(r.Context(), mux.Vars(r)["id"])
	h.success(w, http.StatusOK, res.State())
}

func (h *Handler) GetDeityContent(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res := h.catalog.Deities.Content()
	res.SetKeys(r.Context(), vars["id"], vars["sectionID"])
	h.success(w, http.StatusOK, res.State())
}

// Scriptures

func (h *Handler) ListScriptures(w http.ResponseWriter, r *http.Request) {
	st := h.catalog.Scriptures.EnsureEntries(r.Context())
	if category := r.URL.Query().Get("category"); category != "" {
		st.Data = h.catalog.ScripturesByCategory(category)
	}
	h.success(w, http.StatusOK, st)
}

func (h *Handler) ListScriptureSections(w http.ResponseWriter, r *http.Request) {
	res := h.catalog.Scriptures.Sections()
	res.SetKeys(r.Context(), mux.Vars(r)["id"])
	h.success(w, http.StatusOK, res.State())
}

func (h *Handler) GetScriptureContent(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res := h.catalog.Scriptures.Content()
	res.SetKeys(r.Context(), vars["id"], vars["sectionID"])
	h.success(w, http.StatusOK, res.State())
}

// Reels

func (h *Handler) ListReels(w http.ResponseWriter, r *http.Request) {
	h.success(w, http.StatusOK, h.feed.Ensure(r.Context()))
}

func (h *Handler) ShareReel(w http.ResponseWriter, r *http.Request) {
	if _, err := h.limited(w, r); err != nil {
		h.failure(w, err)
		return
	}

	h.feed.Ensure(r.Context())
	shares, err := h.feed.UpdateShares(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.failure(w, err)
		return
	}
	h.success(w, http.StatusOK, map[string]int{"shares_count": shares})
}

type likesCountRequest struct {
	Increment bool `json:"increment"`
}

// UpdateLikesCount moves a reel's like counter without touching like rows.
func (h *Handler) UpdateLikesCount(w http.ResponseWriter, r *http.Request) {
	var req likesCountRequest
	if err := decodeJSON(r, &req); err != nil {
		h.failure(w, err)
		return
	}

	if _, err := h.limited(w, r); err != nil {
		h.failure(w, err)
		return
	}

	h.feed.Ensure(r.Context())
	likes, err := h.feed.UpdateLikes(r.Context(), mux.Vars(r)["id"], req.Increment)
	if err != nil {
		h.failure(w, err)
		return
	}
	h.success(w, http.StatusOK, map[string]int{"likes_count": likes})
}

func (h *Handler) GetInteractions(w http.ResponseWriter, r *http.Request) {
	hook := h.interactions.New(mux.Vars(r)["id"], h.sessionFor(w, r))
	if err := hook.Refresh(r.Context()); err != nil {
		h.failure(w, err)
		return
	}
	h.success(w, http.StatusOK, hook.State())
}

func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	provider, err := h.limited(w, r)
	if err != nil {
		h.failure(w, err)
		return
	}

	hook := h.interactions.New(mux.Vars(r)["id"], provider)
	if err := hook.Refresh(r.Context()); err != nil {
		h.failure(w, err)
		return
	}
	if _, err := hook.ToggleLike(r.Context()); err != nil {
		h.failure(w, err)
		return
	}
	h.success(w, http.StatusOK, hook.State())
}

type commentRequest struct {
	UserName    string `json:"user_name"`
	CommentText string `json:"comment_text"`
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.failure(w, err)
		return
	}

	provider, err := h.limited(w, r)
	if err != nil {
		h.failure(w, err)
		return
	}

	hook := h.interactions.New(mux.Vars(r)["id"], provider)
	comment, err := hook.AddComment(r.Context(), req.UserName, req.CommentText)
	if err != nil {
		h.failure(w, err)
		return
	}
	h.success(w, http.StatusCreated, comment)
}

// Hero

func (h *Handler) GetHero(w http.ResponseWriter, r *http.Request) {
	if !h.heroPages.Resource.Loaded() {
		h.heroPages.Refresh(r.Context())
	}
	h.success(w, http.StatusOK, h.hero.Snapshot())
}

// heroAction runs a controller command and answers with the new snapshot.
func (h *Handler) heroAction(action func(c *hero.Controller)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		action(h.hero)
		h.success(w, http.StatusOK, h.hero.Snapshot())
	}
}

func (h *Handler) HeroGoTo(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		h.failure(w, errors.Invalid("index must be an integer"))
		return
	}
	h.hero.GoTo(index)
	h.success(w, http.StatusOK, h.hero.Snapshot())
}

type touchRequest struct {
	X float64 `json:"x"`
}

func (h *Handler) heroTouch(action func(c *hero.Controller, x float64)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req touchRequest
		if err := decodeJSON(r, &req); err != nil {
			h.failure(w, err)
			return
		}
		action(h.hero, req.X)
		h.success(w, http.StatusOK, h.hero.Snapshot())
	}
}
