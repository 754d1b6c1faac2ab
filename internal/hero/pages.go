package hero

import (
	"context"

	"github.com/dharmayuga/dharmayuga/internal/domain"
	"github.com/dharmayuga/dharmayuga/internal/loader"
	"github.com/dharmayuga/dharmayuga/internal/repositories/heropage"
)

// Pages loads the active hero pages and feeds them to a controller.
type Pages struct {
	Resource   *loader.Resource[[]domain.HeroPage]
	controller *Controller
}

func NewPages(repo heropage.Repository, controller *Controller, opts ...loader.Option) *Pages {
	return &Pages{
		Resource:   loader.NewCollection[domain.HeroPage]("hero_pages", repo.ListActive, opts...),
		controller: controller,
	}
}

// Refresh refetches the pages. A failed fetch leaves the controller on its
// current pages.
func (p *Pages) Refresh(ctx context.Context) loader.State[[]domain.HeroPage] {
	st := p.Resource.Refetch(ctx)
	if st.Err == "" {
		p.controller.SetPages(st.Data)
	}
	return st
}
