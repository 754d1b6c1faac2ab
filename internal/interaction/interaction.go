package interaction

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/dharmayuga/dharmayuga/internal/domain"
	"github.com/dharmayuga/dharmayuga/internal/monitoring"
	"github.com/dharmayuga/dharmayuga/internal/repositories/reel"
	"github.com/dharmayuga/dharmayuga/internal/repositories/reelcomment"
	"github.com/dharmayuga/dharmayuga/internal/repositories/reellike"
	"github.com/dharmayuga/dharmayuga/internal/session"
	"github.com/dharmayuga/dharmayuga/pkg/errors"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
)

const MaxCommentLength = 500

var (
	ErrNameRequired    = errors.Invalid("Please enter your name.")
	ErrCommentRequired = errors.Invalid("Please enter a comment.")
	ErrCommentTooLong  = errors.Invalid(fmt.Sprintf("Comment must be %d characters or less.", MaxCommentLength))
	ErrBusy            = errors.WrapWithCode(errors.ErrConflict, "busy", "Another update is still in progress.")
)

type State struct {
	ReelID        string               `json:"reel_id"`
	IsLiked       bool                 `json:"is_liked"`
	LikesCount    int                  `json:"likes_count"`
	Likes         []domain.ReelLike    `json:"-"`
	Comments      []domain.ReelComment `json:"comments"`
	CommentsCount int                  `json:"comments_count"`
	Loading       bool                 `json:"loading"`
}

// Hook keeps the like and comment state of one reel for one session.
// Local state changes only after the remote write succeeded.
type Hook struct {
	reelID   string
	reels    reel.Repository
	likes    reellike.Repository
	comments reelcomment.Repository
	session  session.Provider
	logger   logger.Logger

	inFlight atomic.Bool

	mu           sync.RWMutex
	likeSet      []domain.ReelLike
	commentList  []domain.ReelComment
	isLiked      bool
	sessionValue string
}

func (h *Hook) State() State {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return State{
		ReelID:        h.reelID,
		IsLiked:       h.isLiked,
		LikesCount:    len(h.likeSet),
		Likes:         slices.Clone(h.likeSet),
		Comments:      slices.Clone(h.commentList),
		CommentsCount: len(h.commentList),
		Loading:       h.inFlight.Load(),
	}
}

// Refresh reloads the like set and the comments (newest first).
// Whatever part loads is applied even when the other fails.
func (h *Hook) Refresh(ctx context.Context) error {
	sessionID, err := h.sessionID()
	if err != nil {
		return err
	}

	likes, likesErr := h.likes.ListByReel(ctx, h.reelID)
	if likesErr != nil {
		h.logger.Error("Failed to fetch likes", "reel_id", h.reelID, "error", likesErr)
		monitoring.FetchFailures.WithLabelValues("reel_likes").Inc()
	}

	comments, commentsErr := h.comments.ListByReel(ctx, h.reelID)
	if commentsErr != nil {
		h.logger.Error("Failed to fetch comments", "reel_id", h.reelID, "error", commentsErr)
		monitoring.FetchFailures.WithLabelValues("reel_comments").Inc()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if likesErr == nil {
		h.likeSet = likes
		h.isLiked = slices.ContainsFunc(likes, func(l domain.ReelLike) bool {
			return l.UserSessionID == sessionID
		})
	}
	if commentsErr == nil {
		h.commentList = comments
	}

	return errors.Join(likesErr, commentsErr)
}

// ToggleLike likes or unlikes the reel and returns the resulting liked flag.
// While another mutation is in flight it does nothing.
func (h *Hook) ToggleLike(ctx context.Context) (bool, error) {
	if !h.inFlight.CompareAndSwap(false, true) {
		return h.State().IsLiked, nil
	}
	defer h.inFlight.Store(false)

	sessionID, err := h.sessionID()
	if err != nil {
		return false, err
	}

	h.mu.RLock()
	liked := h.isLiked
	h.mu.RUnlock()

	if liked {
		removed, err := h.likes.Delete(ctx, h.reelID, sessionID)
		if err != nil {
			return true, fmt.Errorf("failed to remove like: %w", err)
		}

		h.mu.Lock()
		h.likeSet = slices.DeleteFunc(h.likeSet, func(l domain.ReelLike) bool {
			return l.UserSessionID == sessionID
		})
		h.isLiked = false
		h.mu.Unlock()

		// Another request already removed the row and moved the counter.
		if !removed {
			return false, nil
		}
		monitoring.ReelInteractions.WithLabelValues("unlike").Inc()
		h.syncCounter(ctx, domain.CounterLikes, -1)
		return false, nil
	}

	like, err := h.likes.Create(ctx, h.reelID, sessionID)
	if err != nil {
		return false, fmt.Errorf("failed to add like: %w", err)
	}

	h.mu.Lock()
	h.likeSet = append(h.likeSet, *like)
	h.isLiked = true
	h.mu.Unlock()

	monitoring.ReelInteractions.WithLabelValues("like").Inc()
	h.syncCounter(ctx, domain.CounterLikes, 1)
	return true, nil
}

// AddComment validates and stores a comment, then puts it first in the local list.
func (h *Hook) AddComment(ctx context.Context, userName, commentText string) (*domain.ReelComment, error) {
	name := strings.TrimSpace(userName)
	text := strings.TrimSpace(commentText)

	switch {
	case name == "":
		return nil, ErrNameRequired
	case text == "":
		return nil, ErrCommentRequired
	case utf8.RuneCountInString(text) > MaxCommentLength:
		return nil, ErrCommentTooLong
	}

	if !h.inFlight.CompareAndSwap(false, true) {
		return nil, ErrBusy
	}
	defer h.inFlight.Store(false)

	stored, err := h.comments.Create(ctx, domain.NewComment{
		ReelID:      h.reelID,
		UserName:    name,
		CommentText: text,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	h.mu.Lock()
	h.commentList = slices.Insert(h.commentList, 0, *stored)
	h.mu.Unlock()

	monitoring.ReelInteractions.WithLabelValues("comment").Inc()
	h.syncCounter(ctx, domain.CounterComments, 1)
	return stored, nil
}

// syncCounter moves a denormalized counter by delta with a read then a write,
// never below zero. Concurrent sessions can race here; the counter is advisory.
func (h *Hook) syncCounter(ctx context.Context, counter domain.Counter, delta int) {
	if err := AdjustCounter(ctx, h.reels, h.reelID, counter, delta); err != nil {
		monitoring.CounterSyncFailures.WithLabelValues(string(counter)).Inc()
		h.logger.Warn("Failed to update reel counter",
			"reel_id", h.reelID,
			"counter", counter,
			"delta", delta,
			"error", err,
		)
	}
}

// AdjustCounter reads the counter, adds delta (floored at zero) and writes it back.
func AdjustCounter(ctx context.Context, reels reel.Repository, reelID string, counter domain.Counter, delta int) error {
	current, err := reels.GetCounter(ctx, reelID, counter)
	if err != nil {
		return err
	}
	return reels.SetCounter(ctx, reelID, counter, max(0, current+delta))
}

func (h *Hook) sessionID() (string, error) {
	h.mu.RLock()
	id := h.sessionValue
	h.mu.RUnlock()
	if id != "" {
		return id, nil
	}

	id, err := h.session.GetOrCreateSessionID()
	if err != nil {
		return "", err
	}

	h.mu.Lock()
	h.sessionValue = id
	h.mu.Unlock()
	return id, nil
}
