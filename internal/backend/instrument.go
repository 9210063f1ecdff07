package backend

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nexus-data-service/internal/domain/clubs"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/features"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/news"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/session"
	"github.com/preston-bernstein/nexus-data-service/internal/logging"
	"github.com/preston-bernstein/nexus-data-service/internal/metrics"
)

// Instrument wraps b so every call is timed, counted and logged. It adds no
// behaviour: no retries, no fallback to another backend.
func Instrument(b Backend, logger *slog.Logger, recorder *metrics.Recorder) Backend {
	obs := &observer{backend: b.Name(), logger: logger, recorder: recorder}
	return &instrumented{
		inner:    b,
		clubs:    &instrumentedClubs{inner: b.Clubs(), obs: obs},
		news:     &instrumentedNews{inner: b.News(), obs: obs},
		features: &instrumentedFeatures{inner: b.Features(), obs: obs},
		auth:     &instrumentedAuth{inner: b.Auth(), obs: obs},
	}
}

type instrumented struct {
	inner    Backend
	clubs    ClubService
	news     NewsService
	features FeatureService
	auth     AuthService
}

func (i *instrumented) Name() string             { return i.inner.Name() }
func (i *instrumented) Clubs() ClubService       { return i.clubs }
func (i *instrumented) News() NewsService        { return i.news }
func (i *instrumented) Features() FeatureService { return i.features }
func (i *instrumented) Auth() AuthService        { return i.auth }

type observer struct {
	backend  string
	logger   *slog.Logger
	recorder *metrics.Recorder
}

func (o *observer) done(ctx context.Context, op string, start time.Time, err error, args ...any) {
	elapsed := time.Since(start)
	o.recorder.RecordBackendCall(o.backend, op, elapsed, err)
	logging.BackendCall(logging.FromContext(ctx, o.logger), o.backend, op, elapsed, err, args...)
}

type instrumentedClubs struct {
	inner ClubService
	obs   *observer
}

func (c *instrumentedClubs) List(ctx context.Context) ([]clubs.Club, error) {
	start := time.Now()
	items, err := c.inner.List(ctx)
	c.obs.done(ctx, OpClubsList, start, err, slog.Int(logging.FieldCount, len(items)))
	return items, err
}

func (c *instrumentedClubs) Get(ctx context.Context, id string) (clubs.Club, bool, error) {
	start := time.Now()
	club, ok, err := c.inner.Get(ctx, id)
	c.obs.done(ctx, OpClubsGet, start, err, slog.String(logging.FieldClubID, id), slog.Bool("found", ok))
	return club, ok, err
}

func (c *instrumentedClubs) Update(ctx context.Context, id string, patch clubs.Patch) (clubs.Club, error) {
	start := time.Now()
	club, err := c.inner.Update(ctx, id, patch)
	c.obs.done(ctx, OpClubsUpdate, start, err, slog.String(logging.FieldClubID, id))
	return club, err
}

type instrumentedNews struct {
	inner NewsService
	obs   *observer
}

func (n *instrumentedNews) List(ctx context.Context) ([]news.Item, error) {
	start := time.Now()
	items, err := n.inner.List(ctx)
	n.obs.done(ctx, OpNewsList, start, err, slog.Int(logging.FieldCount, len(items)))
	return items, err
}

func (n *instrumentedNews) Create(ctx context.Context, item news.Item) (news.Item, error) {
	start := time.Now()
	created, err := n.inner.Create(ctx, item)
	n.obs.done(ctx, OpNewsCreate, start, err, slog.String(logging.FieldNewsID, created.ID))
	return created, err
}

func (n *instrumentedNews) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := n.inner.Delete(ctx, id)
	n.obs.done(ctx, OpNewsDelete, start, err, slog.String(logging.FieldNewsID, id))
	return err
}

type instrumentedFeatures struct {
	inner FeatureService
	obs   *observer
}

func (f *instrumentedFeatures) List(ctx context.Context) ([]features.Feature, error) {
	start := time.Now()
	items, err := f.inner.List(ctx)
	f.obs.done(ctx, OpFeaturesList, start, err, slog.Int(logging.FieldCount, len(items)))
	return items, err
}

type instrumentedAuth struct {
	inner AuthService
	obs   *observer
}

// Login never logs the password.
func (a *instrumentedAuth) Login(ctx context.Context, password string) (session.AuthResponse, error) {
	start := time.Now()
	resp, err := a.inner.Login(ctx, password)
	a.obs.done(ctx, OpAuthLogin, start, err, slog.Bool("success", resp.Success))
	return resp, err
}

func (a *instrumentedAuth) Logout(ctx context.Context) error {
	start := time.Now()
	err := a.inner.Logout(ctx)
	a.obs.done(ctx, OpAuthLogout, start, err)
	return err
}
