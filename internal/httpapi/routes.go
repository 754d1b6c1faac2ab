package httpapi

import (
	"net/http"

	"github.com/dharmayuga/dharmayuga/internal/hero"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Router() http.Handler {
	r := mux.NewRouter()
	r.Use(loggerMiddleware(h.logger))
	r.Use(metricsMiddleware)

	r.HandleFunc("/healthz", h.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	// Deities
	api.HandleFunc("/deities", h.ListDeities).Methods(http.MethodGet)
	api.HandleFunc("/deities/{id}/sections", h.ListDeitySections).Methods(http.MethodGet)
	api.HandleFunc("/deities/{id}/sections/{sectionID}", h.GetDeityContent).Methods(http.MethodGet)

	// Scriptures
	api.HandleFunc("/scriptures", h.ListScriptures).Methods(http.MethodGet)
	api.HandleFunc("/scriptures/{id}/sections", h.ListScriptureSections).Methods(http.MethodGet)
	api.HandleFunc("/scriptures/{id}/sections/{sectionID}", h.GetScriptureContent).Methods(http.MethodGet)

	// Reels
	api.HandleFunc("/reels", h.ListReels).Methods(http.MethodGet)
	api.HandleFunc("/reels/{id}/share", h.ShareReel).Methods(http.MethodPost)
	api.HandleFunc("/reels/{id}/likes-count", h.UpdateLikesCount).Methods(http.MethodPost)
	api.HandleFunc("/reels/{id}/interactions", h.GetInteractions).Methods(http.MethodGet)
	api.HandleFunc("/reels/{id}/like", h.ToggleLike).Methods(http.MethodPost)
	api.HandleFunc("/reels/{id}/comments", h.AddComment).Methods(http.MethodPost)

	// Hero
	api.HandleFunc("/hero", h.GetHero).Methods(http.MethodGet)
	api.HandleFunc("/hero/next", h.heroAction((*hero.Controller).Next)).Methods(http.MethodPost)
	api.HandleFunc("/hero/previous", h.heroAction((*hero.Controller).Previous)).Methods(http.MethodPost)
	api.HandleFunc("/hero/pointer-enter", h.heroAction((*hero.Controller).PointerEnter)).Methods(http.MethodPost)
	api.HandleFunc("/hero/pointer-leave", h.heroAction((*hero.Controller).PointerLeave)).Methods(http.MethodPost)
	api.HandleFunc("/hero/touch-start", h.heroTouch((*hero.Controller).TouchStart)).Methods(http.MethodPost)
	api.HandleFunc("/hero/touch-end", h.heroTouch((*hero.Controller).TouchEnd)).Methods(http.MethodPost)
	api.HandleFunc("/hero/goto/{index}", h.HeroGoTo).Methods(http.MethodPost)

	return r
}
