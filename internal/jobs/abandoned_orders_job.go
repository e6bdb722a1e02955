package jobs

import (
	"context"
	"log/slog"
	"time"

	"deliveryapi/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const (
	DefaultAbandonedOrdersSchedule = "0 * * * * *"
	DefaultAbandonedOrderTTL       = 2 * time.Hour
)

// AbandonedOrdersCanceler is satisfied by
// *commands.CancelAbandonedOrdersCommandHandler.
type AbandonedOrdersCanceler interface {
	Handle(ctx context.Context, cmd commands.CancelAbandonedOrdersCommand) (int, error)
}

type AbandonedOrdersConfig struct {
	// Schedule is a cron spec with a leading seconds field.
	Schedule string
	// TTL is how long an order may stay unconfirmed.
	TTL time.Duration
}

// AbandonedOrdersJob cancels Created and Pending orders older than the TTL.
type AbandonedOrdersJob struct {
	handler  AbandonedOrdersCanceler
	cron     *cron.Cron
	schedule cron.Schedule
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

// NewAbandonedOrdersJob validates the schedule up front so that a bad value
// fails startup. Zero config values fall back to the defaults.
func NewAbandonedOrdersJob(
	handler AbandonedOrdersCanceler,
	cfg AbandonedOrdersConfig,
	logger *slog.Logger,
) (*AbandonedOrdersJob, error) {
	if cfg.Schedule == "" {
		cfg.Schedule = DefaultAbandonedOrdersSchedule
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultAbandonedOrderTTL
	}

	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	schedule, err := parser.Parse(cfg.Schedule)
	if err != nil {
		return nil, err
	}

	return &AbandonedOrdersJob{
		handler:  handler,
		cron:     cron.New(cron.WithParser(parser)),
		schedule: schedule,
		ttl:      cfg.TTL,
		now:      time.Now,
		logger:   logger.With("component", "abandoned_orders_job"),
	}, nil
}

func (j *AbandonedOrdersJob) Name() string { return "abandoned orders job" }

func (j *AbandonedOrdersJob) Start() error {
	j.cron.Schedule(j.schedule, cron.FuncJob(func() {
		j.Run(context.Background())
	}))

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Abandoned orders job started", "ttl", j.ttl.String())
	return nil
}

// Stop stops the scheduler and waits for a running pass to finish.
func (j *AbandonedOrdersJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Abandoned orders job stopped")
}

// Run performs one pass and returns how many orders it canceled. Errors are
// logged.
func (j *AbandonedOrdersJob) Run(ctx context.Context) int {
	now := j.now()
	cmd, err := commands.NewCancelAbandonedOrdersCommand(now.Add(-j.ttl), now)
	if err != nil {
		j.logger.ErrorContext(ctx, "Abandoned orders job failed", "error", err)
		return 0
	}

	canceled, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Abandoned orders job failed", "error", err)
		return 0
	}

	if canceled > 0 {
		j.logger.InfoContext(ctx, "Canceled abandoned orders",
			"count", canceled,
			"created_before", cmd.CreatedBefore().Format(time.RFC3339),
		)
	}
	return canceled
}

// SetClock replaces time.Now; used in tests.
func (j *AbandonedOrdersJob) SetClock(now func() time.Time) {
	j.now = now
}
