package fx

import (
	"github.com/dharmayuga/dharmayuga/internal/repositories/catalog"
	"github.com/dharmayuga/dharmayuga/internal/repositories/heropage"
	"github.com/dharmayuga/dharmayuga/internal/repositories/reel"
	"github.com/dharmayuga/dharmayuga/internal/repositories/reelcomment"
	"github.com/dharmayuga/dharmayuga/internal/repositories/reellike"
	"go.uber.org/fx"
)

var Module = fx.Options(
	reel.Module,
	reellike.Module,
	reelcomment.Module,
	heropage.Module,
	catalog.Module,
)
