package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/merrydance/dispatch/algorithm"
	db "github.com/merrydance/dispatch/db/sqlc"
	"github.com/merrydance/dispatch/util"
	"github.com/rs/zerolog/log"
)

const (
	TaskDispatchOrderGroup = "order_group:dispatch"

	// 单次调度最多拉取的候选骑手数
	courierCandidateLimit = 50
)

// PayloadDispatchOrderGroup 订单组调度任务载荷
type PayloadDispatchOrderGroup struct {
	OrderGroupID int64 `json:"order_group_id"`
}

// DistributeTaskDispatchOrderGroup 分发订单组调度任务
func (distributor *RedisTaskDistributor) DistributeTaskDispatchOrderGroup(
	ctx context.Context,
	payload *PayloadDispatchOrderGroup,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskDispatchOrderGroup, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Info().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int("max_retry", info.MaxRetry).
		Int64("order_group_id", payload.OrderGroupID).
		Msg("enqueued dispatch order group task")

	return nil
}

// ProcessTaskDispatchOrderGroup 处理订单组调度任务：
// 读取订单组快照 → 执行调度算法 → 逐个分派事务落库 → 推送骑手通知 → 更新组状态。
// 骑手认领冲突（并发调度抢占同一骑手）通过候选回退解决，不整体重试。
func (processor *RedisTaskProcessor) ProcessTaskDispatchOrderGroup(ctx context.Context, task *asynq.Task) error {
	var payload PayloadDispatchOrderGroup
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", asynq.SkipRetry)
	}

	log.Info().
		Str("type", task.Type()).
		Int64("order_group_id", payload.OrderGroupID).
		Msg("processing dispatch order group task")

	group, err := processor.store.GetOrderGroup(ctx, payload.OrderGroupID)
	if err != nil {
		if errors.Is(err, db.ErrRecordNotFound) {
			return fmt.Errorf("order group %d not found: %w", payload.OrderGroupID, asynq.SkipRetry)
		}
		return fmt.Errorf("get order group: %w", err)
	}

	// 只处理仍有待分派订单的组
	if group.Status != "pending" && group.Status != "partially_dispatched" {
		log.Info().
			Int64("order_group_id", group.ID).
			Str("status", group.Status).
			Msg("order group is not dispatchable, skip")
		return nil
	}

	orders, err := processor.store.ListGroupPendingOrders(ctx, group.ID)
	if err != nil {
		return fmt.Errorf("list pending orders: %w", err)
	}
	if len(orders) == 0 {
		log.Info().
			Int64("order_group_id", group.ID).
			Msg("no pending orders in group, skip")
		return nil
	}

	couriers, err := processor.store.ListAvailableCouriers(ctx, courierCandidateLimit)
	if err != nil {
		return fmt.Errorf("list available couriers: %w", err)
	}

	cfg := BuildDispatchConfig(processor.config)
	input := algorithm.DispatchInput{
		Points:        BuildPickupPoints(orders),
		DeliveryPoint: algorithm.Location{Longitude: group.DeliveryLongitude, Latitude: group.DeliveryLatitude},
		Couriers:      BuildCourierCandidates(couriers),
		Config:        cfg,
	}

	result, err := algorithm.Dispatch(input)
	if err != nil {
		switch {
		case errors.Is(err, algorithm.ErrNoAvailableCouriers):
			// 运力为零，等下一轮重试或补发
			return fmt.Errorf("dispatch group %d: %w", group.ID, err)
		case errors.Is(err, algorithm.ErrEmptyGroup), errors.Is(err, algorithm.ErrInvalidGeometry):
			return fmt.Errorf("dispatch group %d: %v: %w", group.ID, err, asynq.SkipRetry)
		default:
			return fmt.Errorf("dispatch group %d: %w", group.ID, err)
		}
	}

	log.Info().
		Int64("order_group_id", group.ID).
		Str("run_id", result.RunID).
		Str("strategy", string(result.Strategy)).
		Int("assignments", len(result.Assignments)).
		Int("unassigned", len(result.UnassignedOrderIDs)).
		Str("reason", result.Reason).
		Msg("dispatch plan computed")

	// 骑手快照供提交时做乐观并发控制
	snapshot := make(map[int64]db.Courier, len(couriers))
	for _, c := range couriers {
		snapshot[c.ID] = c
	}

	// 已被本轮其他分派方案占用的骑手不参与回退
	taken := make(map[int64]bool, len(result.Assignments))
	for _, a := range result.Assignments {
		taken[a.CourierID] = true
	}

	committed := 0
	failedOrders := 0
	for _, assignment := range result.Assignments {
		courierID, err := processor.commitAssignment(ctx, assignment, result.RunID, input, snapshot, taken, cfg)
		if err != nil {
			failedOrders += len(assignment.OrderIDs)
			log.Warn().Err(err).
				Int64("order_group_id", group.ID).
				Str("run_id", result.RunID).
				Ints64("order_ids", assignment.OrderIDs).
				Msg("assignment not committed")
			continue
		}
		committed++
		processor.publishAssignment(ctx, courierID, result.RunID, assignment)
	}

	if committed == 0 {
		// 一个方案都没落地，保持组状态让 asynq 重试
		return fmt.Errorf("dispatch group %d: no assignment committed (run %s)", group.ID, result.RunID)
	}

	status := "dispatched"
	if failedOrders > 0 || len(result.UnassignedOrderIDs) > 0 {
		status = "partially_dispatched"
	}
	_, err = processor.store.UpdateOrderGroupStatus(ctx, db.UpdateOrderGroupStatusParams{
		ID:        group.ID,
		Status:    status,
		LastRunID: pgtype.Text{String: result.RunID, Valid: true},
	})
	if err != nil {
		return fmt.Errorf("update order group status: %w", err)
	}

	log.Info().
		Int64("order_group_id", group.ID).
		Str("run_id", result.RunID).
		Str("status", status).
		Int("committed", committed).
		Float64("cost_efficiency", result.Metrics.CostEfficiency).
		Msg("dispatch order group task processed")

	return nil
}

// commitAssignment 尝试把一个分派方案落库。算法选中的骑手优先；
// 被并发抢占时在剩余骑手中按接近度回退重试，全部失败返回错误。
func (processor *RedisTaskProcessor) commitAssignment(
	ctx context.Context,
	assignment algorithm.Assignment,
	runID string,
	input algorithm.DispatchInput,
	snapshot map[int64]db.Courier,
	taken map[int64]bool,
	cfg algorithm.DispatchConfig,
) (int64, error) {
	candidates := []int64{assignment.CourierID}
	for _, c := range fallbackCandidates(input.Couriers, assignment, taken, cfg) {
		candidates = append(candidates, c.ID)
	}

	txOrders := make([]db.ClaimAssignmentOrder, len(assignment.Route.PickupPoints))
	for i, p := range assignment.Route.PickupPoints {
		txOrders[i] = db.ClaimAssignmentOrder{
			OrderID:         p.OrderID,
			OriginLongitude: p.Location.Longitude,
			OriginLatitude:  p.Location.Latitude,
		}
	}

	for _, courierID := range candidates {
		courier, ok := snapshot[courierID]
		if !ok {
			continue
		}

		_, err := processor.store.ClaimAssignmentTx(ctx, db.ClaimAssignmentTxParams{
			CourierID:            courierID,
			ExpectedActiveOrders: courier.ActiveOrders,
			RunID:                runID,
			Orders:               txOrders,
			DestinationLongitude: assignment.Route.DeliveryPoint.Longitude,
			DestinationLatitude:  assignment.Route.DeliveryPoint.Latitude,
			DistanceKm:           assignment.Route.TotalDistanceKm,
			EstimatedMinutes:     int32(assignment.Route.EstimatedMinutes),
			Priority:             int16(assignment.Priority),
		})
		if err != nil {
			if errors.Is(err, db.ErrCourierClaimed) {
				log.Warn().
					Int64("courier_id", courierID).
					Str("run_id", runID).
					Msg("courier claimed concurrently, trying next candidate")
				taken[courierID] = true
				continue
			}
			return 0, err
		}

		taken[courierID] = true
		return courierID, nil
	}

	return 0, db.ErrCourierClaimed
}

// publishAssignment 通过 Redis Pub/Sub 推送分派结果给骑手端网关
func (processor *RedisTaskProcessor) publishAssignment(ctx context.Context, courierID int64, runID string, assignment algorithm.Assignment) {
	if processor.redisClient == nil {
		return
	}

	message, err := json.Marshal(map[string]any{
		"type":              "assignment",
		"run_id":            runID,
		"courier_id":        courierID,
		"order_ids":         assignment.OrderIDs,
		"distance_km":       assignment.Route.TotalDistanceKm,
		"estimated_minutes": assignment.Route.EstimatedMinutes,
		"priority":          assignment.Priority,
		"timestamp":         time.Now(),
	})
	if err != nil {
		log.Error().Err(err).Int64("courier_id", courierID).Msg("marshal assignment event failed")
		return
	}

	channel := fmt.Sprintf("dispatch:courier:%d", courierID)
	if err := processor.redisClient.Publish(ctx, channel, message).Err(); err != nil {
		log.Error().Err(err).Int64("courier_id", courierID).Msg("publish to redis failed")
		return
	}
	log.Debug().Int64("courier_id", courierID).Str("run_id", runID).Msg("published assignment push request to Redis")
}

// fallbackCandidates 返回未被占用的骑手，按到取餐点质心的距离排序
func fallbackCandidates(couriers []algorithm.CourierCandidate, assignment algorithm.Assignment, taken map[int64]bool, cfg algorithm.DispatchConfig) []algorithm.CourierCandidate {
	spare := make([]algorithm.CourierCandidate, 0, len(couriers))
	for _, c := range couriers {
		if taken[c.ID] {
			continue
		}
		spare = append(spare, c)
	}
	if len(spare) == 0 {
		return nil
	}

	locations := make([]algorithm.Location, len(assignment.Route.PickupPoints))
	for i, p := range assignment.Route.PickupPoints {
		locations[i] = p.Location
	}
	centroid := algorithm.CenterPoint(locations)
	return algorithm.RankCouriers(spare, centroid, len(spare), cfg)
}

// BuildPickupPoints 把待分派订单装配成算法输入的取餐点
func BuildPickupPoints(orders []db.Order) []algorithm.PickupPoint {
	points := make([]algorithm.PickupPoint, len(orders))
	for i, o := range orders {
		points[i] = algorithm.PickupPoint{
			BusinessID:  o.BusinessID,
			OrderID:     o.ID,
			OrderNumber: o.OrderNumber,
			Location: algorithm.Location{
				Longitude: o.PickupLongitude,
				Latitude:  o.PickupLatitude,
			},
			EstimatedPrepTime: int(o.EstimatedPrepTime),
			ItemCount:         int(o.ItemCount),
		}
	}
	return points
}

// BuildCourierCandidates 把骑手行装配成算法输入的候选快照
func BuildCourierCandidates(couriers []db.Courier) []algorithm.CourierCandidate {
	candidates := make([]algorithm.CourierCandidate, len(couriers))
	for i, c := range couriers {
		candidate := algorithm.CourierCandidate{
			ID:           c.ID,
			ActiveOrders: int(c.ActiveOrders),
			MaxCapacity:  int(c.MaxCapacity),
		}
		if c.CurrentLongitude.Valid && c.CurrentLatitude.Valid {
			candidate.Location = &algorithm.Location{
				Longitude: c.CurrentLongitude.Float64,
				Latitude:  c.CurrentLatitude.Float64,
			}
		}
		candidates[i] = candidate
	}
	return candidates
}

// BuildDispatchConfig 从应用配置装配算法配置，缺省项使用默认值
func BuildDispatchConfig(cfg util.Config) algorithm.DispatchConfig {
	dc := algorithm.DefaultDispatchConfig()
	if cfg.DispatchMaxOrdersPerCourier > 0 {
		dc.MaxOrdersPerCourier = cfg.DispatchMaxOrdersPerCourier
	}
	if cfg.DispatchMaxGroupingDistance > 0 {
		dc.MaxGroupingDistance = cfg.DispatchMaxGroupingDistance
	}
	if cfg.DispatchMaxAdditionalWait > 0 {
		dc.MaxAdditionalWait = cfg.DispatchMaxAdditionalWait
	}
	if cfg.DispatchMinOrdersForHybrid > 0 {
		dc.MinOrdersForHybrid = cfg.DispatchMinOrdersForHybrid
	}
	if cfg.DispatchSearchRadius > 0 {
		dc.SearchRadiusKm = cfg.DispatchSearchRadius
	}
	if cfg.DispatchDistanceWeight > 0 {
		dc.DistanceWeight = cfg.DispatchDistanceWeight
	}
	if cfg.DispatchPrepTimeWeight > 0 {
		dc.PrepTimeWeight = cfg.DispatchPrepTimeWeight
	}
	if cfg.DispatchOrderCountWeight > 0 {
		dc.OrderCountWeight = cfg.DispatchOrderCountWeight
	}
	if cfg.DispatchWorkloadWeight > 0 {
		dc.WorkloadWeight = cfg.DispatchWorkloadWeight
	}
	return dc
}
