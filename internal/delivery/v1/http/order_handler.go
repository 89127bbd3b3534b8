package http

import (
	"net/http"

	"github.com/doodle-alley/go-backend/internal/usecase"
	"github.com/doodle-alley/go-backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// submitOrder
//
//	@Summary	Оформление заказа
//	@Accept		json
//	@Produce	json
//	@Success	201	{object}	map[string]interface{}
//	@Failure	400	{object}	ErrorResponse
//	@Router		/orders [post]
func (o *OrderHandler) submitOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := decodeJSON(r, &req); err != nil {
		o.logger.Warnf("%d invalid order body: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	order, err := o.orderUsecase.SubmitOrder(r.Context(), req.toSubmitReq())
	if err != nil {
		o.logger.Warnf("failed to submit order: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, map[string]interface{}{
		"order": toOrderResponse(order),
	})
}

// listOrders
//
//	@Summary	Список заказов, новые первыми (только администратор)
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Router		/orders [get]
func (o *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := o.orderUsecase.ListOrders(r.Context())
	if err != nil {
		o.logger.Errorf(err, "failed to list orders")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"orders": toOrderResponses(orders),
	})
}
