package scheduler

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	db "github.com/merrydance/dispatch/db/sqlc"
	"github.com/merrydance/dispatch/util"
	"github.com/merrydance/dispatch/worker"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

const (
	// 默认每5分钟扫描一次滞留订单组
	defaultRedispatchSpec = "*/5 * * * *"
	// 超过该时长仍未完全分派的组视为滞留
	defaultStaleGroupAge = 10 * time.Minute
	// 单轮扫描最多补发的组数
	staleGroupBatchSize = 100
)

// Scheduler 滞留订单组补发调度器。
// 运力不足时调度任务会留下 pending / partially_dispatched 的组，
// 这里定时扫描并重新入队，等骑手空闲后自动补齐。
type Scheduler struct {
	cron        *cron.Cron
	store       db.Store
	distributor worker.TaskDistributor
	config      util.Config
}

// NewScheduler 创建补发调度器
func NewScheduler(store db.Store, distributor worker.TaskDistributor, config util.Config) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		store:       store,
		distributor: distributor,
		config:      config,
	}
}

// Start 启动调度器
func (s *Scheduler) Start() error {
	spec := s.config.DispatchRedispatchCron
	if spec == "" {
		spec = defaultRedispatchSpec
	}

	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := s.RedispatchStaleGroups(ctx); err != nil {
			log.Error().Err(err).Msg("failed to redispatch stale order groups")
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Info().Str("spec", spec).Msg("redispatch scheduler started")

	// 启动时立即执行一次
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := s.RedispatchStaleGroups(ctx); err != nil {
			log.Error().Err(err).Msg("failed to redispatch initial stale order groups")
		}
	}()

	return nil
}

// Stop 停止调度器
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Info().Msg("redispatch scheduler stopped")
}

// RedispatchStaleGroups 扫描滞留订单组并重新入队调度任务
func (s *Scheduler) RedispatchStaleGroups(ctx context.Context) error {
	age := s.config.DispatchStaleGroupAge
	if age <= 0 {
		age = defaultStaleGroupAge
	}

	groups, err := s.store.ListStaleOrderGroups(ctx, db.ListStaleOrderGroupsParams{
		CreatedAt: time.Now().Add(-age),
		Limit:     staleGroupBatchSize,
	})
	if err != nil {
		return err
	}
	if len(groups) == 0 {
		return nil
	}

	log.Info().Int("count", len(groups)).Msg("stale order groups found, redispatching")

	for _, group := range groups {
		err := s.distributor.DistributeTaskDispatchOrderGroup(
			ctx,
			&worker.PayloadDispatchOrderGroup{OrderGroupID: group.ID},
			asynq.MaxRetry(5),
			asynq.Queue(worker.QueueCritical),
		)
		if err != nil {
			log.Error().Err(err).
				Int64("order_group_id", group.ID).
				Msg("failed to enqueue redispatch task")
			continue
		}
		log.Debug().
			Int64("order_group_id", group.ID).
			Str("status", group.Status).
			Msg("stale order group requeued")
	}

	return nil
}
