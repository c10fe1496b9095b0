package algorithm

// CalculateMetrics 汇总一次调度的效率指标
// 总时间取最慢一条路径：整组的送达速度由最慢的骑手决定
func CalculateMetrics(assignments []Assignment, totalOrders int, config DispatchConfig) DispatchMetrics {
	config = config.normalize()

	metrics := DispatchMetrics{
		TotalOrders:    totalOrders,
		DeliveriesUsed: len(assignments),
	}

	if len(assignments) == 0 {
		return metrics
	}

	metrics.AverageOrdersPerDelivery = float64(totalOrders) / float64(len(assignments))

	for _, a := range assignments {
		if a.Route.EstimatedMinutes > metrics.EstimatedTotalTime {
			metrics.EstimatedTotalTime = a.Route.EstimatedMinutes
		}
	}

	metrics.CostEfficiency = metrics.AverageOrdersPerDelivery / float64(config.MaxOrdersPerCourier) * 100
	if metrics.CostEfficiency > 100 {
		metrics.CostEfficiency = 100
	}

	return metrics
}
