package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	mockdb "github.com/merrydance/dispatch/db/mock"
	db "github.com/merrydance/dispatch/db/sqlc"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateOrderGroupAPI(t *testing.T) {
	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{
				"customer_id":        1001,
				"delivery_address":   "朝阳区望京街10号",
				"delivery_longitude": 116.48,
				"delivery_latitude":  39.99,
				"orders": []gin.H{
					{
						"business_id":      21,
						"pickup_longitude": 116.46,
						"pickup_latitude":  39.97,
					},
					{
						"business_id":         22,
						"pickup_longitude":    116.47,
						"pickup_latitude":     39.98,
						"estimated_prep_time": 20,
						"item_count":          3,
					},
				},
			},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CreateOrderGroup(gomock.Any(), db.CreateOrderGroupParams{
						CustomerID:        1001,
						DeliveryAddress:   "朝阳区望京街10号",
						DeliveryLongitude: 116.48,
						DeliveryLatitude:  39.99,
					}).
					Times(1).
					Return(db.OrderGroup{ID: 5, CustomerID: 1001, Status: "pending"}, nil)

				store.EXPECT().
					CreateOrder(gomock.Any(), gomock.Any()).
					Times(2).
					DoAndReturn(func(_ any, arg db.CreateOrderParams) (db.Order, error) {
						require.Equal(t, int64(5), arg.OrderGroupID)
						require.NotEmpty(t, arg.OrderNumber)
						switch arg.BusinessID {
						case 21:
							require.Equal(t, int32(30), arg.EstimatedPrepTime)
							require.Equal(t, int32(1), arg.ItemCount)
						case 22:
							require.Equal(t, int32(20), arg.EstimatedPrepTime)
							require.Equal(t, int32(3), arg.ItemCount)
						default:
							t.Fatalf("意外的商家ID: %d", arg.BusinessID)
						}
						return db.Order{
							ID:           arg.BusinessID + 100,
							OrderGroupID: arg.OrderGroupID,
							BusinessID:   arg.BusinessID,
							Status:       "pending",
						}, nil
					})
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusCreated, recorder.Code)

				var rsp orderGroupResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.Equal(t, int64(5), rsp.Group.ID)
				require.Equal(t, "pending", rsp.Group.Status)
				require.Len(t, rsp.Orders, 2)
			},
		},
		{
			name: "空订单列表",
			body: gin.H{
				"customer_id":        1001,
				"delivery_address":   "朝阳区望京街10号",
				"delivery_longitude": 116.48,
				"delivery_latitude":  39.99,
				"orders":             []gin.H{},
			},
			buildStubs: func(store *mockdb.MockStore) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/v1/order-groups", bytes.NewReader(data))
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestGetOrderGroupAPI(t *testing.T) {
	testCases := []struct {
		name          string
		groupID       int64
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:    "OK",
			groupID: 5,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetOrderGroup(gomock.Any(), int64(5)).
					Times(1).
					Return(db.OrderGroup{ID: 5, Status: "dispatched"}, nil)
				store.EXPECT().
					ListGroupOrders(gomock.Any(), int64(5)).
					Times(1).
					Return([]db.Order{
						{ID: 101, OrderGroupID: 5, Status: "confirmed"},
					}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var rsp orderGroupResponse
				err := json.Unmarshal(recorder.Body.Bytes(), &rsp)
				require.NoError(t, err)
				require.Equal(t, "dispatched", rsp.Group.Status)
				require.Len(t, rsp.Orders, 1)
			},
		},
		{
			name:    "订单组不存在",
			groupID: 999,
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetOrderGroup(gomock.Any(), int64(999)).
					Times(1).
					Return(db.OrderGroup{}, pgx.ErrNoRows)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store)
			recorder := httptest.NewRecorder()

			url := fmt.Sprintf("/v1/order-groups/%d", tc.groupID)
			request, err := http.NewRequest(http.MethodGet, url, nil)
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}
