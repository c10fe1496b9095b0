package algorithm

// OptimizeRoute 计算一个聚类的取餐访问顺序
// 多点时使用最近邻启发式：从输入的第一个点出发，每步走向最近的未访问点，
// 最后追加到送达点的一程和固定交付时间。Sequence 是输入数组的下标排列
func OptimizeRoute(points []PickupPoint, deliveryPoint Location) Route {
	if len(points) == 0 {
		return Route{DeliveryPoint: deliveryPoint}
	}

	if len(points) == 1 {
		return Route{
			PickupPoints:     points,
			DeliveryPoint:    deliveryPoint,
			Sequence:         []int{0},
			TotalDistanceKm:  HaversineKm(points[0].Location, deliveryPoint),
			EstimatedMinutes: points[0].EstimatedPrepTime + handoffMinutes,
		}
	}

	visited := make([]bool, len(points))
	sequence := make([]int, 0, len(points))

	current := 0
	visited[0] = true
	sequence = append(sequence, 0)

	totalDistance := 0.0
	totalTime := points[0].EstimatedPrepTime

	for len(sequence) < len(points) {
		nearest := -1
		nearestDist := 0.0
		for i := range points {
			if visited[i] {
				continue
			}
			d := HaversineKm(points[current].Location, points[i].Location)
			if nearest < 0 || d < nearestDist {
				nearest = i
				nearestDist = d
			}
		}

		visited[nearest] = true
		sequence = append(sequence, nearest)
		totalDistance += nearestDist
		totalTime += points[nearest].EstimatedPrepTime
		current = nearest
	}

	totalDistance += HaversineKm(points[current].Location, deliveryPoint)
	totalTime += handoffMinutes

	ordered := make([]PickupPoint, len(sequence))
	for i, idx := range sequence {
		ordered[i] = points[idx]
	}

	return Route{
		PickupPoints:     ordered,
		DeliveryPoint:    deliveryPoint,
		Sequence:         sequence,
		TotalDistanceKm:  totalDistance,
		EstimatedMinutes: totalTime,
	}
}
