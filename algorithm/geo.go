package algorithm

import "math"

const (
	// 地球半径（千米）
	earthRadiusKm = 6371.0

	// 平均骑行速度（米/秒）- 约 20km/h
	avgRidingSpeed = 5.5

	// 取餐完成后的交付时间（分钟）：最后一程骑行 + 上楼交接
	handoffMinutes = 15
)

// HaversineKm 计算两点间的球面距离（千米）
// 使用 Haversine 公式
func HaversineKm(loc1, loc2 Location) float64 {
	lat1 := toRadians(loc1.Latitude)
	lat2 := toRadians(loc2.Latitude)
	deltaLat := toRadians(loc2.Latitude - loc1.Latitude)
	deltaLng := toRadians(loc2.Longitude - loc1.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// HaversineMeters 计算两点间的球面距离（米）
// 用于精细的就近判断，例如骑手是否已到达送达点
func HaversineMeters(loc1, loc2 Location) int {
	return int(HaversineKm(loc1, loc2) * 1000)
}

// EstimateTime 估算骑行时间（分钟）
func EstimateTime(distanceMeters int) int {
	if distanceMeters <= 0 {
		return 0
	}
	seconds := float64(distanceMeters) / avgRidingSpeed
	return int(math.Ceil(seconds / 60))
}

// toRadians 角度转弧度
func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// CenterPoint 计算多个点的中心点
func CenterPoint(locations []Location) Location {
	if len(locations) == 0 {
		return Location{}
	}
	if len(locations) == 1 {
		return locations[0]
	}

	var sumLat, sumLng float64
	for _, loc := range locations {
		sumLat += loc.Latitude
		sumLng += loc.Longitude
	}

	n := float64(len(locations))
	return Location{
		Longitude: sumLng / n,
		Latitude:  sumLat / n,
	}
}

// ValidLocation 判断坐标是否在合法范围内
// 全零坐标视为缺失：历史数据曾把缺失坐标落成 (0,0)，会污染所有后续距离计算
func ValidLocation(loc Location) bool {
	if loc.Latitude == 0 && loc.Longitude == 0 {
		return false
	}
	if loc.Latitude < -90 || loc.Latitude > 90 {
		return false
	}
	if loc.Longitude < -180 || loc.Longitude > 180 {
		return false
	}
	return true
}

// distanceMatrix 计算所有取餐点两两之间的距离（千米）
func distanceMatrix(points []PickupPoint) [][]float64 {
	matrix := make([][]float64, len(points))
	for i := range points {
		matrix[i] = make([]float64, len(points))
		for j := range points {
			if i == j {
				continue
			}
			matrix[i][j] = HaversineKm(points[i].Location, points[j].Location)
		}
	}
	return matrix
}
