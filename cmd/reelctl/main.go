// reelctl interacts with reels from a terminal. The session identifier is kept
// in a local file so likes stay attached to this machine.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dharmayuga/dharmayuga/internal/interaction"
	"github.com/dharmayuga/dharmayuga/internal/repositories/reel"
	"github.com/dharmayuga/dharmayuga/internal/repositories/reelcomment"
	"github.com/dharmayuga/dharmayuga/internal/repositories/reellike"
	"github.com/dharmayuga/dharmayuga/internal/session"
	"github.com/dharmayuga/dharmayuga/pkg/config"
	"github.com/dharmayuga/dharmayuga/pkg/formatter"
	"github.com/dharmayuga/dharmayuga/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
)

const usage = "Usage: reelctl [session|list|show <reel-id>|like <reel-id>|comment <reel-id> <name> <text>]"

var errUsage = errors.New(usage)

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// checkArgs rejects malformed invocations before any connection is opened.
func checkArgs(args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "session", "list":
		return nil
	case "show", "like":
		if len(args) < 2 {
			return errUsage
		}
		return nil
	case "comment":
		if len(args) < 4 {
			return errUsage
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q\n%w", args[0], errUsage)
	}
}

func run(args []string) error {
	if err := checkArgs(args); err != nil {
		return err
	}

	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	provider := session.NewProvider(session.NewFileStorage(cfg.Session.StoragePath), clockwork.NewRealClock())

	if args[0] == "session" {
		id, err := provider.GetOrCreateSessionID()
		if err != nil {
			return fmt.Errorf("failed to resolve session: %w", err)
		}
		fmt.Println(id)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.GetDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	lg := logger.New(logger.Opts{Env: cfg.App.Env})
	reels := reel.NewPgx(pool, lg)
	factory := interaction.NewFactory(interaction.Opts{
		Reels:    reels,
		Likes:    reellike.NewPgx(pool, lg),
		Comments: reelcomment.NewPgx(pool, lg),
		Logger:   lg,
	})

	switch args[0] {
	case "list":
		items, err := reels.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list reels: %w", err)
		}
		for _, r := range items {
			fmt.Printf("%s  %-40s  %s likes  %s comments  %s shares\n", r.ID, r.Title,
				formatter.FormatCount(r.LikesCount),
				formatter.FormatCount(r.CommentsCount),
				formatter.FormatCount(r.SharesCount),
			)
		}
	case "show":
		hook, err := loadHook(ctx, factory, provider, args[1])
		if err != nil {
			return err
		}
		printState(hook.State())
	case "like":
		hook, err := loadHook(ctx, factory, provider, args[1])
		if err != nil {
			return err
		}
		liked, err := hook.ToggleLike(ctx)
		if err != nil {
			return fmt.Errorf("failed to toggle like: %w", err)
		}
		if liked {
			fmt.Println("Liked")
		} else {
			fmt.Println("Like removed")
		}
		printState(hook.State())
	case "comment":
		hook := factory.New(args[1], provider)
		comment, err := hook.AddComment(ctx, args[2], strings.Join(args[3:], " "))
		if err != nil {
			return fmt.Errorf("failed to add comment: %w", err)
		}
		fmt.Printf("Comment %s added\n", comment.ID)
	}
	return nil
}

func loadHook(ctx context.Context, factory *interaction.Factory, provider session.Provider, reelID string) (*interaction.Hook, error) {
	hook := factory.New(reelID, provider)
	if err := hook.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("failed to load reel: %w", err)
	}
	return hook, nil
}

func printState(st interaction.State) {
	fmt.Printf("Reel %s: %s likes (liked: %t), %s comments\n",
		st.ReelID, formatter.FormatNumber(st.LikesCount), st.IsLiked, formatter.FormatNumber(st.CommentsCount))
	for _, c := range st.Comments {
		fmt.Printf("  %s  %s: %s\n", c.CreatedAt.Format(time.DateTime), c.UserName, c.CommentText)
	}
}
