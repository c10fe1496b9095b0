package algorithm

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

// DispatchInput 一次调度的完整输入，全部为外部取好的只读快照
type DispatchInput struct {
	Points        []PickupPoint      `json:"points"`
	DeliveryPoint Location           `json:"delivery_point"`
	Couriers      []CourierCandidate `json:"couriers"`
	Config        DispatchConfig     `json:"config"`
}

// Dispatch 对一个订单组执行调度：场景分析 → 按策略分派 → 紧急度评分 → 指标汇总
// 纯同步计算，除 RunID 和时间戳外结果完全由输入决定。
// 产出的 AssignmentResult 是提交层的"提案"：骑手认领冲突由提交层用候选池重算
func Dispatch(input DispatchInput) (AssignmentResult, error) {
	if len(input.Points) == 0 {
		return AssignmentResult{}, ErrEmptyGroup
	}

	if !ValidLocation(input.DeliveryPoint) {
		return AssignmentResult{}, fmt.Errorf("%w: 送达坐标 (%f, %f)", ErrInvalidGeometry, input.DeliveryPoint.Latitude, input.DeliveryPoint.Longitude)
	}
	for _, p := range input.Points {
		if !ValidLocation(p.Location) {
			return AssignmentResult{}, fmt.Errorf("%w: 订单 %d 的取餐坐标 (%f, %f)", ErrInvalidGeometry, p.OrderID, p.Location.Latitude, p.Location.Longitude)
		}
	}

	config := input.Config.normalize()
	scenario := AnalyzeScenario(input.Points, config)

	// 候选骑手按到送达点的距离排序并截断
	candidates := RankCouriers(input.Couriers, input.DeliveryPoint, len(input.Points), config)
	if len(candidates) == 0 {
		return AssignmentResult{}, ErrNoAvailableCouriers
	}
	pool := NewCourierPool(candidates, config)

	var result AssignmentResult
	switch scenario.RecommendedStrategy {
	case StrategyIndividual:
		result = assignIndividual(input, pool, config)
	case StrategyGrouped:
		result = assignGrouped(input, pool, config, StrategyGrouped, scenario.Reason)
	default:
		result = assignHybrid(input, pool, config)
	}

	result.RunID = uuid.NewString()
	result.CreatedAt = time.Now()
	return result, nil
}

// assignIndividual 一单一骑手，骑手已按就近排序
// 骑手不够时剩余订单记入 UnassignedOrderIDs，等下一轮补发
func assignIndividual(input DispatchInput, pool *CourierPool, config DispatchConfig) AssignmentResult {
	assignments := make([]Assignment, 0, len(input.Points))
	var unassigned []int64

	for _, p := range input.Points {
		courier, ok := pool.PickNext()
		if !ok {
			unassigned = append(unassigned, p.OrderID)
			continue
		}
		assignments = append(assignments, buildAssignment(courier, []PickupPoint{p}, input.DeliveryPoint))
	}

	return AssignmentResult{
		Strategy:           StrategyIndividual,
		Assignments:        assignments,
		UnassignedOrderIDs: unassigned,
		Reason:             "商家分散或出餐时间差过大，逐单分派",
		Metrics:            CalculateMetrics(assignments, len(input.Points), config),
	}
}

// assignGrouped 全部订单交给评分最高的一个骑手
func assignGrouped(input DispatchInput, pool *CourierPool, config DispatchConfig, strategy Strategy, reason string) AssignmentResult {
	locations := make([]Location, len(input.Points))
	for i, p := range input.Points {
		locations[i] = p.Location
	}
	centroid := CenterPoint(locations)

	courier, _ := pool.PickBest(centroid)
	assignment := buildAssignment(courier, input.Points, input.DeliveryPoint)

	return AssignmentResult{
		Strategy:    strategy,
		Assignments: []Assignment{assignment},
		Reason:      reason,
		Metrics:     CalculateMetrics([]Assignment{assignment}, len(input.Points), config),
	}
}

// assignHybrid 聚类后一类一骑手；运力或容量不足时退化为 GROUPED / SEQUENTIAL
func assignHybrid(input DispatchInput, pool *CourierPool, config DispatchConfig) AssignmentResult {
	n := len(input.Points)
	k := int(math.Ceil(float64(n) / 2))
	if pool.Size() < k {
		k = pool.Size()
	}
	if config.MaxOrdersPerCourier < k {
		k = config.MaxOrdersPerCourier
	}

	if k <= 1 || k*config.MaxOrdersPerCourier < n {
		// 运力不足，无法拆分：全部交给一个骑手。
		// 超出单骑手容量上限时标记为 SEQUENTIAL，属于最后兜底
		if n > config.MaxOrdersPerCourier {
			return assignGrouped(input, pool, config, StrategySequential,
				fmt.Sprintf("可用骑手不足，%d单顺序交给一个骑手（超出单骑手容量上限）", n))
		}
		return assignGrouped(input, pool, config, StrategyGrouped,
			fmt.Sprintf("可用骑手不足，%d单合并交给一个骑手", n))
	}

	clusters := ClusterPoints(input.Points, k, config.MaxOrdersPerCourier)

	assignments := make([]Assignment, 0, len(clusters))
	var unassigned []int64
	for _, cluster := range clusters {
		courier, ok := pool.PickBest(cluster.Centroid)
		if !ok {
			unassigned = append(unassigned, cluster.OrderIDs...)
			continue
		}
		assignments = append(assignments, buildAssignment(courier, cluster.Points, input.DeliveryPoint))
	}

	return AssignmentResult{
		Strategy:           StrategyHybrid,
		Assignments:        assignments,
		UnassignedOrderIDs: unassigned,
		Reason:             fmt.Sprintf("按空间聚类拆分为%d组分派", len(clusters)),
		Metrics:            CalculateMetrics(assignments, n, config),
	}
}

// buildAssignment 为一组取餐点生成分派：路径优化 + 紧急度评分
func buildAssignment(courier CourierCandidate, points []PickupPoint, deliveryPoint Location) Assignment {
	route := OptimizeRoute(points, deliveryPoint)

	orderIDs := make([]int64, len(points))
	for i, p := range points {
		orderIDs[i] = p.OrderID
	}

	assignment := Assignment{
		CourierID: courier.ID,
		OrderIDs:  orderIDs,
		Route:     route,
	}
	assignment.Priority = CalculatePriority(assignment)
	return assignment
}
