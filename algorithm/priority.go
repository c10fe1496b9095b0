package algorithm

// CalculatePriority 计算一个分派任务的紧急度（1-5）
// 基准 3 分；多单 +1；最短出餐时间小于 20 分钟说明马上可取 +1
func CalculatePriority(assignment Assignment) int {
	priority := 3

	if len(assignment.OrderIDs) > 2 {
		priority++
	}

	if minPrep, ok := minPrepTime(assignment.Route.PickupPoints); ok && minPrep < 20 {
		priority++
	}

	if priority > 5 {
		priority = 5
	}
	return priority
}

func minPrepTime(points []PickupPoint) (int, bool) {
	if len(points) == 0 {
		return 0, false
	}
	min := points[0].EstimatedPrepTime
	for _, p := range points[1:] {
		if p.EstimatedPrepTime < min {
			min = p.EstimatedPrepTime
		}
	}
	return min, true
}
