// Package catalog serves the deity and scripture browsers: the top level
// collection, the sections of one entry and the content page of a section.
package catalog

import (
	"context"
	"strings"

	"github.com/dharmayuga/dharmayuga/internal/domain"
	"github.com/dharmayuga/dharmayuga/internal/loader"
	catalogrepo "github.com/dharmayuga/dharmayuga/internal/repositories/catalog"
	"github.com/dharmayuga/dharmayuga/pkg/errors"
)

// Browser loads one catalog through its repository.
type Browser[E any] struct {
	name    string
	repo    catalogrepo.Repository[E]
	opts    []loader.Option
	entries *loader.Resource[[]E]
}

func NewBrowser[E any](name string, repo catalogrepo.Repository[E], opts ...loader.Option) *Browser[E] {
	return &Browser[E]{
		name:    name,
		repo:    repo,
		opts:    opts,
		entries: loader.NewCollection[E](name, repo.ListEntries, opts...),
	}
}

// Entries is the shared top level collection, ordered by order_index.
func (b *Browser[E]) Entries() *loader.Resource[[]E] {
	return b.entries
}

// EnsureEntries loads the collection on first use and returns its state.
func (b *Browser[E]) EnsureEntries(ctx context.Context) loader.State[[]E] {
	if !b.entries.Loaded() {
		return b.entries.Refetch(ctx)
	}
	return b.entries.State()
}

// Sections returns a fresh resource keyed by the entry id.
func (b *Browser[E]) Sections() *loader.Keyed[[]domain.Section] {
	return loader.NewKeyedCollection[domain.Section](b.name+"_sections",
		func(ctx context.Context, keys []string) ([]domain.Section, error) {
			return b.repo.ListSections(ctx, keys[0])
		}, b.opts...)
}

// Content returns a fresh resource keyed by (entry id, section id).
func (b *Browser[E]) Content() *loader.Keyed[*domain.Content] {
	return loader.NewKeyedSingle[domain.Content](b.name+"_content",
		func(ctx context.Context, keys []string) (*domain.Content, error) {
			return b.repo.GetContent(ctx, keys[0], keys[1])
		}, b.opts...)
}

type Service struct {
	Deities    *Browser[domain.Deity]
	Scriptures *Browser[domain.Scripture]
}

func NewService(deities catalogrepo.Repository[domain.Deity], scriptures catalogrepo.Repository[domain.Scripture], opts ...loader.Option) *Service {
	return &Service{
		Deities:    NewBrowser("gods", deities, opts...),
		Scriptures: NewBrowser("scriptures", scriptures, opts...),
	}
}

// ScripturesByCategory filters the loaded scriptures. An empty category
// returns all of them.
func (s *Service) ScripturesByCategory(category string) []domain.Scripture {
	all := s.Scriptures.Entries().State().Data
	if category == "" {
		return all
	}

	out := make([]domain.Scripture, 0, len(all))
	for _, sc := range all {
		if strings.EqualFold(sc.Category, category) {
			out = append(out, sc)
		}
	}
	return out
}

// Refresh refetches both top level collections. Each keeps its own state;
// the returned error lists the ones that failed.
func (s *Service) Refresh(ctx context.Context) error {
	var errs []error
	if st := s.Deities.Entries().Refetch(ctx); st.Err != "" {
		errs = append(errs, errors.New("gods: "+st.Err))
	}
	if st := s.Scriptures.Entries().Refetch(ctx); st.Err != "" {
		errs = append(errs, errors.New("scriptures: "+st.Err))
	}
	return errors.Join(errs...)
}
