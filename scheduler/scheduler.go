package scheduler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/talkdeck/talkdeck-push-server/dispatcher"
	"github.com/talkdeck/talkdeck-push-server/redisprovider"
)

const CName = "push.scheduler"

var log = logger.NewNamed(CName)

var ErrUnknownJob = errors.New("unknown job")

const (
	JobDailyReminder   = "dailyReminder"
	JobWeeklyHighlight = "weeklyHighlight"
	JobQuickQuestion   = "quickQuestion"
)

const lockKeyPrefix = "push:schedule:"

// Config holds a cron spec per job, an empty spec disables the job.
type Config struct {
	Timezone string        `yaml:"timezone"`
	Timeout  time.Duration `yaml:"timeout"`
	// LockTTL makes each tick of a job fire on a single instance, 0 disables locking.
	LockTTL         time.Duration `yaml:"lockTtl"`
	DailyReminder   string        `yaml:"dailyReminder"`
	WeeklyHighlight string        `yaml:"weeklyHighlight"`
	QuickQuestion   string        `yaml:"quickQuestion"`
}

func (c Config) Specs() map[string]string {
	return map[string]string{
		JobDailyReminder:   c.DailyReminder,
		JobWeeklyHighlight: c.WeeklyHighlight,
		JobQuickQuestion:   c.QuickQuestion,
	}
}

type configSource interface {
	GetSchedule() Config
}

type Job struct {
	Name string
	Spec string
	Next time.Time
}

func New() Scheduler {
	return new(scheduler)
}

type Scheduler interface {
	// Fire runs a job once, bypassing its schedule and lock.
	Fire(ctx context.Context, job string) error
	// Jobs lists the enabled jobs sorted by name.
	Jobs() []Job
	app.ComponentRunnable
}

type scheduler struct {
	conf       Config
	dispatcher dispatcher.Dispatcher
	redis      redis.UniversalClient
	cron       *cron.Cron
	jobs       map[string]func(ctx context.Context)
	entries    map[string]cron.EntryID
	instance   string
}

func (s *scheduler) Init(a *app.App) (err error) {
	s.conf = a.MustComponent("config").(configSource).GetSchedule()
	s.dispatcher = a.MustComponent(dispatcher.CName).(dispatcher.Dispatcher)
	if c := a.Component(redisprovider.CName); c != nil {
		s.redis = c.(redisprovider.RedisProvider).Redis()
	}
	s.instance, _ = os.Hostname()
	s.jobs = map[string]func(ctx context.Context){
		JobDailyReminder:   s.dispatcher.DailyReminder,
		JobWeeklyHighlight: s.dispatcher.WeeklyHighlight,
		JobQuickQuestion:   s.dispatcher.QuickQuestion,
	}

	loc := time.UTC
	if s.conf.Timezone != "" {
		if loc, err = time.LoadLocation(s.conf.Timezone); err != nil {
			return
		}
	}
	cronLog := cronLogger{log.Sugar()}
	s.cron = cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog)),
	)
	s.entries = make(map[string]cron.EntryID)
	for name, spec := range s.conf.Specs() {
		if spec == "" {
			continue
		}
		id, err := s.cron.AddFunc(spec, func() { s.runScheduled(name, time.Now()) })
		if err != nil {
			return fmt.Errorf("job %s: %w", name, err)
		}
		s.entries[name] = id
	}
	return
}

func (s *scheduler) Name() (name string) {
	return CName
}

func (s *scheduler) Run(ctx context.Context) (err error) {
	s.cron.Start()
	for _, job := range s.Jobs() {
		log.Info("job scheduled", zap.String("job", job.Name), zap.String("spec", job.Spec), zap.Time("next", job.Next))
	}
	return
}

func (s *scheduler) Fire(ctx context.Context, job string) error {
	run, ok := s.jobs[job]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownJob, job)
	}
	run(ctx)
	return nil
}

func (s *scheduler) Jobs() []Job {
	specs := s.conf.Specs()
	jobs := make([]Job, 0, len(s.entries))
	for name, id := range s.entries {
		jobs = append(jobs, Job{
			Name: name,
			Spec: specs[name],
			Next: s.cron.Entry(id).Next,
		})
	}
	slices.SortFunc(jobs, func(a, b Job) int {
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
	return jobs
}

func (s *scheduler) runScheduled(job string, tick time.Time) {
	ctx, cancel := s.jobContext()
	defer cancel()
	if !s.lock(ctx, job, tick) {
		log.Debug("job tick is locked by another instance", zap.String("job", job), zap.Time("tick", tick))
		return
	}
	st := time.Now()
	if err := s.Fire(ctx, job); err != nil {
		log.Error("job error", zap.String("job", job), zap.Error(err))
		return
	}
	log.Debug("job done", zap.String("job", job), zap.Duration("dur", time.Since(st)))
}

func (s *scheduler) jobContext() (context.Context, context.CancelFunc) {
	if s.conf.Timeout > 0 {
		return context.WithTimeout(context.Background(), s.conf.Timeout)
	}
	return context.WithCancel(context.Background())
}

// lock reports whether this instance owns the given tick of the job.
// Cron ticks fall on whole seconds, so instances firing the same tick share a key.
// A redis failure does not block the job.
func (s *scheduler) lock(ctx context.Context, job string, tick time.Time) bool {
	if s.redis == nil || s.conf.LockTTL <= 0 {
		return true
	}
	ok, err := s.redis.SetNX(ctx, lockKey(job, tick), s.instance, s.conf.LockTTL).Result()
	if err != nil {
		log.Warn("job lock error", zap.String("job", job), zap.Error(err))
		return true
	}
	return ok
}

func lockKey(job string, tick time.Time) string {
	return lockKeyPrefix + job + ":" + strconv.FormatInt(tick.Truncate(time.Second).Unix(), 10)
}

func (s *scheduler) Close(ctx context.Context) (err error) {
	if s.cron == nil {
		return
	}
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	return
}

type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugw(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorw(msg, append(keysAndValues, "error", err)...)
}
