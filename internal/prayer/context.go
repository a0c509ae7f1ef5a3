package prayer

// Context is the long-lived handle §4.J describes: a resolved Config (every
// field except the date) paired with its own Engine, so repeated Compute
// calls for the same location and method keep hitting the config cache.
type Context struct {
	config Config
	engine *Engine
}

// NewContext validates cfg and returns a Context ready for repeated Compute
// calls at varying dates. cfg.DateMs is ignored here — each Compute call
// overwrites it — and Config.Validate does not check it.
func NewContext(cfg Config) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Context{config: cfg, engine: NewEngine()}, nil
}

// Compute overwrites the retained configuration's date and runs it through
// the same kernel ComputePrayerTimes uses, returning a View (§4.J, "each
// call overwrites the date field on the retained configuration and enters
// the same kernel").
func (ctx *Context) Compute(dateMs float64) View {
	ctx.config.DateMs = dateMs
	return NewView(ctx.engine.Compute(ctx.config))
}

// Clear empties this context's engine caches (§6, "clear_solar_cache").
func (ctx *Context) Clear() {
	ctx.engine.Clear()
}

// ComputePrayerTimes is the one-shot entry point (§6, "compute_prayer_times
// (config) -> output"): validate, run a fresh Engine once, and project the
// result into a View.
func ComputePrayerTimes(cfg Config) (View, error) {
	if err := cfg.Validate(); err != nil {
		return View{}, err
	}
	return NewView(NewEngine().Compute(cfg)), nil
}
