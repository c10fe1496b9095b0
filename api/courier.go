package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	db "github.com/merrydance/dispatch/db/sqlc"
)

// ==================== 骑手管理 ====================

type courierIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type createCourierRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	MaxCapacity int32  `json:"max_capacity" binding:"omitempty,min=1,max=10"`
}

type courierResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	IsOnline     bool     `json:"is_online"`
	IsAvailable  bool     `json:"is_available"`
	ActiveOrders int32    `json:"active_orders"`
	MaxCapacity  int32    `json:"max_capacity"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
}

func newCourierResponse(courier db.Courier) courierResponse {
	rsp := courierResponse{
		ID:           courier.ID,
		Name:         courier.Name,
		Phone:        courier.Phone,
		IsOnline:     courier.IsOnline,
		IsAvailable:  courier.IsAvailable,
		ActiveOrders: courier.ActiveOrders,
		MaxCapacity:  courier.MaxCapacity,
	}
	if courier.CurrentLongitude.Valid && courier.CurrentLatitude.Valid {
		rsp.Longitude = &courier.CurrentLongitude.Float64
		rsp.Latitude = &courier.CurrentLatitude.Float64
	}
	return rsp
}

// createCourier 注册骑手
// POST /v1/couriers
func (server *Server) createCourier(ctx *gin.Context) {
	var req createCourierRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	maxCapacity := req.MaxCapacity
	if maxCapacity == 0 {
		maxCapacity = 4
	}

	courier, err := server.store.CreateCourier(ctx, db.CreateCourierParams{
		Name:        req.Name,
		Phone:       req.Phone,
		MaxCapacity: maxCapacity,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusCreated, newCourierResponse(courier))
}

type setCourierOnlineRequest struct {
	IsOnline *bool `json:"is_online" binding:"required"`
}

// setCourierOnline 骑手上线/下线
// POST /v1/couriers/:id/online
func (server *Server) setCourierOnline(ctx *gin.Context) {
	var uri courierIDRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req setCourierOnlineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	courier, err := server.store.SetCourierOnline(ctx, db.SetCourierOnlineParams{
		ID:       uri.ID,
		IsOnline: *req.IsOnline,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("骑手不存在")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newCourierResponse(courier))
}

type updateCourierLocationRequest struct {
	Longitude float64 `json:"longitude" binding:"required,gte=-180,lte=180"`
	Latitude  float64 `json:"latitude" binding:"required,gte=-90,lte=90"`
}

// updateCourierLocation 上报骑手位置
// PATCH /v1/couriers/:id/location
func (server *Server) updateCourierLocation(ctx *gin.Context) {
	var uri courierIDRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	var req updateCourierLocationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	courier, err := server.store.UpdateCourierLocation(ctx, db.UpdateCourierLocationParams{
		ID:               uri.ID,
		CurrentLongitude: pgtype.Float8{Float64: req.Longitude, Valid: true},
		CurrentLatitude:  pgtype.Float8{Float64: req.Latitude, Valid: true},
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("骑手不存在")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, newCourierResponse(courier))
}

// listCourierDeliveries 查询骑手在途配送单
// GET /v1/couriers/:id/deliveries
func (server *Server) listCourierDeliveries(ctx *gin.Context) {
	var uri courierIDRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	deliveries, err := server.store.ListCourierActiveDeliveries(ctx, uri.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, deliveries)
}
