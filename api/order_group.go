package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	db "github.com/merrydance/dispatch/db/sqlc"
	"github.com/merrydance/dispatch/util"
)

// ==================== 订单组管理 ====================

type orderGroupIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

type createOrderItemRequest struct {
	BusinessID        int64   `json:"business_id" binding:"required,min=1"`
	PickupLongitude   float64 `json:"pickup_longitude" binding:"required,gte=-180,lte=180"`
	PickupLatitude    float64 `json:"pickup_latitude" binding:"required,gte=-90,lte=90"`
	EstimatedPrepTime int32   `json:"estimated_prep_time" binding:"omitempty,min=1,max=180"`
	ItemCount         int32   `json:"item_count" binding:"omitempty,min=1"`
}

type createOrderGroupRequest struct {
	CustomerID        int64                    `json:"customer_id" binding:"required,min=1"`
	DeliveryAddress   string                   `json:"delivery_address" binding:"required"`
	DeliveryLongitude float64                  `json:"delivery_longitude" binding:"required,gte=-180,lte=180"`
	DeliveryLatitude  float64                  `json:"delivery_latitude" binding:"required,gte=-90,lte=90"`
	Orders            []createOrderItemRequest `json:"orders" binding:"required,min=1,dive"`
}

type orderGroupResponse struct {
	Group  db.OrderGroup `json:"group"`
	Orders []db.Order    `json:"orders"`
}

// createOrderGroup 创建订单组及其订单
// POST /v1/order-groups
func (server *Server) createOrderGroup(ctx *gin.Context) {
	var req createOrderGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	group, err := server.store.CreateOrderGroup(ctx, db.CreateOrderGroupParams{
		CustomerID:        req.CustomerID,
		DeliveryAddress:   req.DeliveryAddress,
		DeliveryLongitude: req.DeliveryLongitude,
		DeliveryLatitude:  req.DeliveryLatitude,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	orders := make([]db.Order, 0, len(req.Orders))
	for _, item := range req.Orders {
		prepTime := item.EstimatedPrepTime
		if prepTime == 0 {
			prepTime = 30
		}
		itemCount := item.ItemCount
		if itemCount == 0 {
			itemCount = 1
		}

		order, err := server.store.CreateOrder(ctx, db.CreateOrderParams{
			OrderGroupID:      group.ID,
			OrderNumber:       util.RandomOrderNumber(),
			BusinessID:        item.BusinessID,
			PickupLongitude:   item.PickupLongitude,
			PickupLatitude:    item.PickupLatitude,
			EstimatedPrepTime: prepTime,
			ItemCount:         itemCount,
		})
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
			return
		}
		orders = append(orders, order)
	}

	RecordOrderGroupCreated()

	ctx.JSON(http.StatusCreated, orderGroupResponse{
		Group:  group,
		Orders: orders,
	})
}

// getOrderGroup 查询订单组详情
// GET /v1/order-groups/:id
func (server *Server) getOrderGroup(ctx *gin.Context) {
	var uri orderGroupIDRequest
	if err := ctx.ShouldBindUri(&uri); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	group, err := server.store.GetOrderGroup(ctx, uri.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			ctx.JSON(http.StatusNotFound, errorResponse(errors.New("订单组不存在")))
			return
		}
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	orders, err := server.store.ListGroupOrders(ctx, group.ID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, internalError(ctx, err))
		return
	}

	ctx.JSON(http.StatusOK, orderGroupResponse{
		Group:  group,
		Orders: orders,
	})
}
