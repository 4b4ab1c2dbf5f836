package service

import (
	"context"
	"time"

	"github.com/vetrovegor/storefront/internal/schedule"
	"github.com/vetrovegor/storefront/internal/tenant"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -destination=mocks/backend/mock.go -package=mocktenantbackend . Backend
type Backend interface {
	GetBranding(ctx context.Context, slug string) (tenant.Branding, error)
	GetSchedule(ctx context.Context, slug string) ([]schedule.Entry, error)
}

//go:generate mockgen -destination=mocks/cache/mock.go -package=mockbrandingcache . Cache
type Cache interface {
	Get(ctx context.Context, slug string) (tenant.Branding, bool, error)
	Set(ctx context.Context, slug string, b tenant.Branding) error
}

type Options struct {
	Defaults       tenant.ThemeColors
	LoadingTimeout time.Duration
	Location       *time.Location
}

type service struct {
	backend Backend
	cache   Cache
	opts    Options
	now     func() time.Time
	group   singleflight.Group
	logger  *zap.Logger
}

// NewService builds the tenant context loader. cache may be nil.
func NewService(backend Backend, cache Cache, opts Options, logger *zap.Logger) *service {
	if opts.Location == nil {
		opts.Location = time.Local
	}

	return &service{
		backend: backend,
		cache:   cache,
		opts:    opts,
		now:     time.Now,
		logger:  logger,
	}
}

// Load resolves the establishment for slug and starts evaluating its schedule
// into gate. It returns once branding is known and either the schedule has
// been applied or the loading timeout passed, whichever comes first. The
// schedule fetch keeps running on ctx after the timeout. Failures are logged
// and degrade to a neutral establishment and a pending (open) gate.
func (s *service) Load(ctx context.Context, slug string, gate *schedule.Gate) tenant.Establishment {
	scheduled := make(chan struct{})
	go func() {
		defer close(scheduled)
		s.loadSchedule(ctx, slug, gate)
	}()

	est := tenant.Fallback(slug, s.opts.Defaults)

	var g errgroup.Group

	g.Go(func() error {
		branding, err := s.branding(ctx, slug)
		if err != nil {
			return err
		}

		est = tenant.NewEstablishment(slug, branding, s.opts.Defaults)
		return nil
	})

	g.Go(func() error {
		s.awaitSchedule(ctx, slug, scheduled)
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("unexpected error when loading tenant branding",
			zap.String("tenant", slug),
			zap.Error(err),
		)
	} else if !est.IsBranded() {
		s.logger.Warn("tenant branding has no establishment name", zap.String("tenant", slug))
	}

	return est
}

func (s *service) awaitSchedule(ctx context.Context, slug string, scheduled <-chan struct{}) {
	if s.opts.LoadingTimeout <= 0 {
		<-scheduled
		return
	}

	timer := time.NewTimer(s.opts.LoadingTimeout)
	defer timer.Stop()

	select {
	case <-scheduled:
	case <-ctx.Done():
	case <-timer.C:
		s.logger.Info("schedule still loading, proceeding as open", zap.String("tenant", slug))
	}
}

func (s *service) loadSchedule(ctx context.Context, slug string, gate *schedule.Gate) {
	entries, err := s.backend.GetSchedule(ctx, slug)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error("unexpected error when loading schedule",
				zap.String("tenant", slug),
				zap.Error(err),
			)
		}
		return
	}

	if err := schedule.Validate(entries); err != nil {
		s.logger.Warn("malformed schedule entries", zap.String("tenant", slug), zap.Error(err))
	}

	status := gate.Apply(entries, s.now().In(s.opts.Location))
	s.logger.Debug("schedule evaluated", zap.String("tenant", slug), zap.Stringer("status", status))
}

// branding shares one backend call between concurrent loads of the same
// tenant and goes through the cache when one is configured.
func (s *service) branding(ctx context.Context, slug string) (tenant.Branding, error) {
	if s.cache != nil {
		b, ok, err := s.cache.Get(ctx, slug)
		if err != nil {
			s.logger.Warn("branding cache unavailable", zap.String("tenant", slug), zap.Error(err))
		}
		if ok {
			return b, nil
		}
	}

	// the shared call must not die with whichever session started it
	shared := context.WithoutCancel(ctx)

	v, err, _ := s.group.Do(slug, func() (any, error) {
		b, err := s.backend.GetBranding(shared, slug)
		if err != nil {
			return tenant.Branding{}, err
		}

		if s.cache != nil {
			if err := s.cache.Set(shared, slug, b); err != nil {
				s.logger.Warn("unexpected error when caching branding", zap.String("tenant", slug), zap.Error(err))
			}
		}

		return b, nil
	})
	if err != nil {
		return tenant.Branding{}, err
	}

	return v.(tenant.Branding), nil
}
