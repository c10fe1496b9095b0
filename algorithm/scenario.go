package algorithm

import "fmt"

// Scenario 订单组的场景分析结果
type Scenario struct {
	TotalOrders         int      `json:"total_orders"`
	MaxDistanceKm       float64  `json:"max_distance_km"` // 取餐点间最大距离
	AvgDistanceKm       float64  `json:"avg_distance_km"` // 取餐点间平均距离
	PrepTimeSpread      int      `json:"prep_time_spread"` // 最长与最短出餐时间差（分钟）
	RecommendedStrategy Strategy `json:"recommended_strategy"`
	Reason              string   `json:"reason"`
}

// AnalyzeScenario 分析订单组的取餐点分布和出餐时间差，推荐分派策略
// 规则按顺序评估，命中即返回：
//  1. 只有一单 → INDIVIDUAL
//  2. 商家过于分散或出餐时间差过大 → INDIVIDUAL
//  3. 订单少且平均距离近 → GROUPED
//  4. 其余 → HYBRID
func AnalyzeScenario(points []PickupPoint, config DispatchConfig) Scenario {
	config = config.normalize()

	matrix := distanceMatrix(points)
	var maxDistance, sum float64
	var cells int
	for i := range matrix {
		for j := range matrix[i] {
			if matrix[i][j] > maxDistance {
				maxDistance = matrix[i][j]
			}
			sum += matrix[i][j]
			cells++
		}
	}
	var avgDistance float64
	if cells > 0 {
		avgDistance = sum / float64(cells)
	}

	minPrep := points[0].EstimatedPrepTime
	maxPrep := points[0].EstimatedPrepTime
	for _, p := range points[1:] {
		if p.EstimatedPrepTime < minPrep {
			minPrep = p.EstimatedPrepTime
		}
		if p.EstimatedPrepTime > maxPrep {
			maxPrep = p.EstimatedPrepTime
		}
	}
	prepSpread := maxPrep - minPrep

	scenario := Scenario{
		TotalOrders:    len(points),
		MaxDistanceKm:  maxDistance,
		AvgDistanceKm:  avgDistance,
		PrepTimeSpread: prepSpread,
	}

	switch {
	case len(points) == 1:
		scenario.RecommendedStrategy = StrategyIndividual
		scenario.Reason = "单笔订单，直接分派"
	case maxDistance > config.MaxGroupingDistance || prepSpread > config.MaxAdditionalWait:
		scenario.RecommendedStrategy = StrategyIndividual
		scenario.Reason = fmt.Sprintf("商家过于分散（%.2fkm）或出餐时间差过大（%d分钟），不宜合并", maxDistance, prepSpread)
	case len(points) <= config.MinOrdersForHybrid && avgDistance <= config.MaxGroupingDistance:
		scenario.RecommendedStrategy = StrategyGrouped
		scenario.Reason = fmt.Sprintf("商家集中（%d单，平均间距%.2fkm），一个骑手可全部取完", len(points), avgDistance)
	default:
		scenario.RecommendedStrategy = StrategyHybrid
		scenario.Reason = fmt.Sprintf("订单较多（%d单），按空间聚类拆分给多个骑手", len(points))
	}

	return scenario
}
