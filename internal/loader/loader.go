// Package loader decides, per engine context, which lexicon tiers are active,
// which region place and business entries are narrowed to, and which
// confidence threshold gates automatic correction.
//
// A Loader is cheap to build and owned by a single caller. It holds no
// process-wide state, so callers with different contexts never interfere.
package loader

import (
	"log/slog"
	"slices"

	"github.com/MrWong99/kupu/pkg/lexicon"
	"github.com/MrWong99/kupu/pkg/types"
)

// essentialTiers are active for every context.
var essentialTiers = []lexicon.Tier{
	lexicon.TierPhoneticLegality,
	lexicon.TierComplexPlaceName,
	lexicon.TierComplexIwiName,
	lexicon.TierIdentity,
	lexicon.TierPlaceName,
	lexicon.TierTourismBusiness,
}

// enhancedTiers lists the optional tiers enabled for each user level.
var enhancedTiers = map[types.UserLevel][]lexicon.Tier{
	types.UserLevelTourist:  {lexicon.TierGenericVocabulary},
	types.UserLevelBusiness: {lexicon.TierGenericVocabulary, lexicon.TierSilentSound},
	types.UserLevelExpert:   {lexicon.TierGenericVocabulary, lexicon.TierSilentSound, lexicon.TierCulturalContext},
}

// Option configures a [Loader].
type Option func(*Loader)

// WithLogger sets the logger used to report context fallbacks. Defaults to
// [slog.Default].
func WithLogger(l *slog.Logger) Option {
	return func(ld *Loader) {
		ld.log = l
	}
}

// Loader scopes a lexicon store to one engine context. A Loader must not be
// reconfigured while a correction that uses it is running; give each
// goroutine its own.
type Loader struct {
	store     *lexicon.Store
	log       *slog.Logger
	active    map[lexicon.Tier]bool
	ctx       types.EngineContext
	region    lexicon.Region
	threshold int
}

// New returns a Loader over store, initialised for ctx.
func New(store *lexicon.Store, ctx types.EngineContext, opts ...Option) *Loader {
	l := &Loader{
		store: store,
		log:   slog.Default(),
	}
	for _, o := range opts {
		o(l)
	}
	l.Initialize(ctx)
	return l
}

// Initialize resets the loader for ctx: it activates the essential tiers plus
// the enhanced tiers for ctx.UserLevel, narrows to ctx.Region and sets the
// threshold for ctx.DemoMode.
//
// An unset user level activates every tier. Unknown user levels, regions and
// demo modes are logged and treated as unset; they are never errors.
func (l *Loader) Initialize(ctx types.EngineContext) {
	l.ctx = ctx
	l.active = make(map[lexicon.Tier]bool, len(lexicon.AllTiers))
	for _, t := range essentialTiers {
		l.active[t] = true
	}

	level := ctx.UserLevel
	if level != "" && !level.IsValid() {
		l.log.Info("loader: unknown user level, activating every tier", "user_level", string(level))
		level = ""
	}
	if extra, ok := enhancedTiers[level]; ok {
		for _, t := range extra {
			l.active[t] = true
		}
	} else {
		for _, t := range lexicon.AllTiers {
			l.active[t] = true
		}
	}
	l.ctx.UserLevel = level

	l.AdaptToRegion(ctx.Region)
	l.SetDemoMode(ctx.DemoMode)
}

// AdaptToRegion narrows place-name and business matching to entries scoped to
// region or to every region. An empty or unknown region removes the
// restriction; unknown regions are logged.
func (l *Loader) AdaptToRegion(region lexicon.Region) {
	if region != "" && !region.IsValid() {
		l.log.Info("loader: unknown region, matching every region", "region", string(region))
		region = ""
	}
	if region == lexicon.RegionAll {
		region = ""
	}
	l.region = region
	l.ctx.Region = region
}

// SetDemoMode sets the confidence threshold: 97 for curated, 95 for advanced,
// 90 for general. An unset mode gives 90, or 95 for expert users. An unknown
// mode is logged and gives 90.
func (l *Loader) SetDemoMode(mode types.DemoMode) {
	switch mode {
	case types.DemoModeCurated:
		l.threshold = types.ThresholdCurated
	case types.DemoModeAdvanced:
		l.threshold = types.ThresholdAdvanced
	case types.DemoModeGeneral:
		l.threshold = types.ThresholdGeneral
	case "":
		l.threshold = types.ThresholdGeneral
		if l.ctx.UserLevel == types.UserLevelExpert {
			l.threshold = types.ThresholdAdvanced
		}
	default:
		l.log.Info("loader: unknown demo mode, using the general threshold", "demo_mode", string(mode))
		mode = ""
		l.threshold = types.ThresholdGeneral
	}
	l.ctx.DemoMode = mode
	l.ctx.ConfidenceThreshold = l.threshold
}

// Store returns the lexicon store the loader scopes.
func (l *Loader) Store() *lexicon.Store { return l.store }

// Context returns the effective context: unknown values cleared and the
// derived threshold filled in.
func (l *Loader) Context() types.EngineContext { return l.ctx }

// Threshold returns the confidence threshold for automatic correction.
func (l *Loader) Threshold() int { return l.threshold }

// Region returns the region focus, or "" when unrestricted.
func (l *Loader) Region() lexicon.Region { return l.region }

// IsActive reports whether tier t is active.
func (l *Loader) IsActive(t lexicon.Tier) bool { return l.active[t] }

// ActiveTiers returns the active tiers in pass order.
func (l *Loader) ActiveTiers() []lexicon.Tier {
	var out []lexicon.Tier
	for _, t := range lexicon.AllTiers {
		if l.active[t] {
			out = append(out, t)
		}
	}
	return out
}

// LookupTiers returns the active whole-word lookup tiers in priority order.
func (l *Loader) LookupTiers() []lexicon.Tier {
	return slices.DeleteFunc(slices.Clone(lexicon.LookupOrder), func(t lexicon.Tier) bool {
		return !l.active[t]
	})
}

// InRegion reports whether e applies under the current region focus.
// Only place and business entries are regional.
func (l *Loader) InRegion(e lexicon.Entry) bool {
	switch e.Category {
	case lexicon.CategoryPlace, lexicon.CategoryBusiness:
		return e.Region.Matches(l.region)
	}
	return true
}
