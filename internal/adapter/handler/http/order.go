package http

import (
	"net/http"
	"strings"

	"github.com/MikeRez0/ordermodule/internal/core/domain"
	"github.com/MikeRez0/ordermodule/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.OrderService
	search  port.OrderSearchService
}

func NewOrderHandler(service port.OrderService, search port.OrderSearchService,
	logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
		search:  search,
	}, nil
}

type searchRequest struct {
	Keyword       string `form:"keyword"`
	Start         int    `form:"start" binding:"min=0"`
	Count         int    `form:"count" binding:"min=0"`
	ResponseGroup string `form:"responseGroup"`
}

// SearchOrders godoc
//
//	@Summary	Search orders
//	@Tags		orders
//	@Produce	json
//	@Param		keyword			query		string	false	"Keyword"
//	@Param		start			query		int		false	"Offset"
//	@Param		count			query		int		false	"Page size"
//	@Param		responseGroup	query		string	false	"Response group"
//	@Success	200				{object}	domain.OrderSearchResult
//	@Router		/api/orders [get]
func (oh *OrderHandler) SearchOrders(ctx *gin.Context) {
	var req searchRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	result, err := oh.search.Search(ctx.Request.Context(), domain.OrderSearchCriteria{
		Keyword:       req.Keyword,
		Start:         req.Start,
		Count:         req.Count,
		ResponseGroup: domain.ParseResponseGroup(req.ResponseGroup),
	})
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, result)
}

// GetOrder godoc
//
//	@Summary	Get order by id
//	@Tags		orders
//	@Produce	json
//	@Param		id				path		string	true	"Order id"
//	@Param		responseGroup	query		string	false	"Response group"
//	@Success	200				{object}	domain.CustomerOrder
//	@Router		/api/orders/{id} [get]
func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	group := domain.ParseResponseGroup(ctx.Query("responseGroup"))

	order, err := oh.service.GetByID(ctx.Request.Context(), ctx.Param("id"), group)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, order)
}

// SaveOrders godoc
//
//	@Summary	Create or update orders
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		orders	body		[]domain.CustomerOrder	true	"Orders"
//	@Success	200		{array}		domain.CustomerOrder
//	@Router		/api/orders [post]
func (oh *OrderHandler) SaveOrders(ctx *gin.Context) {
	var orders []*domain.CustomerOrder
	if err := ctx.ShouldBindJSON(&orders); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	if err := oh.service.SaveChanges(ctx.Request.Context(), orders); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.logger.Debug("Orders saved",
		zap.String("operator", getAuthPayload(ctx).OperatorID),
		zap.Int("count", len(orders)))
	oh.handleSuccess(ctx, orders)
}

// DeleteOrders godoc
//
//	@Summary	Delete orders
//	@Tags		orders
//	@Param		ids	query	[]string	true	"Order ids"	collectionFormat(multi)
//	@Success	204
//	@Router		/api/orders [delete]
func (oh *OrderHandler) DeleteOrders(ctx *gin.Context) {
	var ids []string
	for _, v := range ctx.QueryArray("ids") {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	if err := oh.service.Delete(ctx.Request.Context(), ids); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
