package algorithm

const (
	// 质心迭代的收敛阈值（度）
	centroidEpsilon = 1e-4

	// 质心迭代的最大轮数
	maxClusterIterations = 10
)

// ClusterPoints 把取餐点划分成 k 个空间聚类，单个聚类成员数不超过 maxSize
// k >= 点数时每个点自成一类；否则以最远点采样初始化质心后迭代收敛，
// 超员的聚类把离质心最远的成员移交给最近的未满聚类。
// 初始化是确定性的：相同输入必然产生相同聚类，保证调度结果可重现
func ClusterPoints(points []PickupPoint, k int, maxSize int) []Cluster {
	if k <= 0 || len(points) == 0 {
		return nil
	}
	if maxSize > 0 && k*maxSize < len(points) {
		// 总容量不足，无法满足成员数上限
		return nil
	}

	if k >= len(points) {
		clusters := make([]Cluster, 0, len(points))
		for _, p := range points {
			clusters = append(clusters, Cluster{
				OrderIDs:      []int64{p.OrderID},
				Points:        []PickupPoint{p},
				Centroid:      p.Location,
				MaxDistanceKm: 0,
				TotalPrepTime: p.EstimatedPrepTime,
			})
		}
		return clusters
	}

	centroids := seedCentroids(points, k)

	// assignment[i] = 点 i 所属的质心下标
	assignment := make([]int, len(points))

	for iter := 0; iter < maxClusterIterations; iter++ {
		for i, p := range points {
			nearest := 0
			nearestDist := HaversineKm(p.Location, centroids[0])
			for c := 1; c < len(centroids); c++ {
				if d := HaversineKm(p.Location, centroids[c]); d < nearestDist {
					nearestDist = d
					nearest = c
				}
			}
			assignment[i] = nearest
		}

		// 重算质心：成员经纬度的算术平均
		sumLat := make([]float64, k)
		sumLng := make([]float64, k)
		count := make([]int, k)
		for i, p := range points {
			c := assignment[i]
			sumLat[c] += p.Location.Latitude
			sumLng[c] += p.Location.Longitude
			count[c]++
		}

		moved := false
		for c := 0; c < k; c++ {
			if count[c] == 0 {
				continue
			}
			next := Location{
				Latitude:  sumLat[c] / float64(count[c]),
				Longitude: sumLng[c] / float64(count[c]),
			}
			if absFloat(next.Latitude-centroids[c].Latitude) > centroidEpsilon ||
				absFloat(next.Longitude-centroids[c].Longitude) > centroidEpsilon {
				moved = true
			}
			centroids[c] = next
		}

		if !moved {
			break
		}
	}

	if maxSize > 0 {
		rebalanceOversized(points, assignment, centroids, k, maxSize)
	}

	// 收集结果，丢弃空聚类
	clusters := make([]Cluster, k)
	for i, p := range points {
		c := assignment[i]
		clusters[c].OrderIDs = append(clusters[c].OrderIDs, p.OrderID)
		clusters[c].Points = append(clusters[c].Points, p)
	}

	result := make([]Cluster, 0, k)
	for c := range clusters {
		if len(clusters[c].Points) == 0 {
			continue
		}
		cluster := clusters[c]
		cluster.Centroid = centroids[c]
		for _, p := range cluster.Points {
			if d := HaversineKm(p.Location, cluster.Centroid); d > cluster.MaxDistanceKm {
				cluster.MaxDistanceKm = d
			}
			cluster.TotalPrepTime += p.EstimatedPrepTime
		}
		result = append(result, cluster)
	}

	return result
}

// seedCentroids 最远点采样：先取第一个点，之后每轮取离已选质心最远的点
// 相比随机采样结果可重现，且初始质心天然分散，收敛更快
func seedCentroids(points []PickupPoint, k int) []Location {
	centroids := make([]Location, 0, k)
	centroids = append(centroids, points[0].Location)

	// minDist[i] = 点 i 到最近已选质心的距离
	minDist := make([]float64, len(points))
	for i, p := range points {
		minDist[i] = HaversineKm(p.Location, centroids[0])
	}

	for len(centroids) < k {
		farthest := 0
		for i := 1; i < len(points); i++ {
			if minDist[i] > minDist[farthest] {
				farthest = i
			}
		}
		next := points[farthest].Location
		centroids = append(centroids, next)

		for i, p := range points {
			if d := HaversineKm(p.Location, next); d < minDist[i] {
				minDist[i] = d
			}
		}
	}

	return centroids
}

// rebalanceOversized 把超员聚类中离质心最远的成员移交给最近的未满聚类
// 调用方已保证 k*maxSize >= 点数，因此总能找到有空位的聚类
func rebalanceOversized(points []PickupPoint, assignment []int, centroids []Location, k, maxSize int) {
	count := make([]int, k)
	for _, c := range assignment {
		count[c]++
	}

	for c := 0; c < k; c++ {
		for count[c] > maxSize {
			// 找出该聚类中离质心最远的成员
			farthest := -1
			farthestDist := 0.0
			for i := range points {
				if assignment[i] != c {
					continue
				}
				d := HaversineKm(points[i].Location, centroids[c])
				if farthest < 0 || d > farthestDist {
					farthest = i
					farthestDist = d
				}
			}

			// 移交给最近的未满聚类
			target := -1
			targetDist := 0.0
			for t := 0; t < k; t++ {
				if t == c || count[t] >= maxSize {
					continue
				}
				d := HaversineKm(points[farthest].Location, centroids[t])
				if target < 0 || d < targetDist {
					target = t
					targetDist = d
				}
			}

			assignment[farthest] = target
			count[c]--
			count[target]++
		}
	}
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
