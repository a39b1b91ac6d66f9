package http

import (
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server exposes the order lifecycle over HTTP. It coordinates between the
// echo handlers and the application use cases: every route parses the wire
// request, builds a command or query, and maps the outcome back onto HTTP.
type Server struct {
	// Command handlers
	submitOrderHandler     commands.SubmitOrderCommandHandler
	acceptOrderHandler     commands.AcceptOrderCommandHandler
	declineOrderHandler    commands.DeclineOrderCommandHandler
	readyOrderHandler      commands.ReadyOrderCommandHandler
	assignDelivererHandler commands.AssignDelivererCommandHandler
	beginDeliveryHandler   commands.BeginDeliveryCommandHandler
	completeOrderHandler   commands.CompleteOrderCommandHandler
	modifyOrderHandler     commands.ModifyOrderCommandHandler

	// Query handlers
	listOrdersHandler queries.ListOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
}

// NewServer creates an HTTP server with the required command and query
// handlers.
func NewServer(
	submitOrderHandler commands.SubmitOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	declineOrderHandler commands.DeclineOrderCommandHandler,
	readyOrderHandler commands.ReadyOrderCommandHandler,
	assignDelivererHandler commands.AssignDelivererCommandHandler,
	beginDeliveryHandler commands.BeginDeliveryCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	modifyOrderHandler commands.ModifyOrderCommandHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		submitOrderHandler:     submitOrderHandler,
		acceptOrderHandler:     acceptOrderHandler,
		declineOrderHandler:    declineOrderHandler,
		readyOrderHandler:      readyOrderHandler,
		assignDelivererHandler: assignDelivererHandler,
		beginDeliveryHandler:   beginDeliveryHandler,
		completeOrderHandler:   completeOrderHandler,
		modifyOrderHandler:     modifyOrderHandler,
		listOrdersHandler:      listOrdersHandler,
		getOrderHandler:        getOrderHandler,
	}
}

// RegisterRoutes mounts the API under /api/orders. All order routes sit
// behind the identity middleware; the collection route additionally parses
// pagination.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Healthy")
	})

	orders := e.Group("/api/orders", IdentityMiddleware())
	orders.POST("", s.SubmitOrder)
	orders.GET("", s.ListOrders, PaginationMiddleware())
	orders.GET("/:id", s.GetOrder)
	orders.PATCH("/:id", s.ModifyOrder)
	orders.POST("/:id/accept", s.AcceptOrder)
	orders.POST("/:id/decline", s.DeclineOrder)
	orders.POST("/:id/ready", s.ReadyOrder)
	orders.POST("/:id/assign", s.AssignDeliverer)
	orders.POST("/:id/deliver", s.BeginDelivery)
	orders.POST("/:id/completed", s.CompleteOrder)
}

// SubmitOrder handles POST /api/orders - places a new order for the
// authenticated client.
func (s *Server) SubmitOrder(ctx echo.Context) error {
	var request SubmitOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	draft, err := draftFromRequest(request)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSubmitOrderCommand(actorFrom(ctx), draft)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.submitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// ListOrders handles GET /api/orders - retrieves the page of orders visible
// to the authenticated actor. Optional query parameters: status (repeatable)
// and deliverer (me|none, deliverers only).
func (s *Server) ListOrders(ctx echo.Context) error {
	statuses, err := statusesFromQuery(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	pool, err := poolFromQuery(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "deliverer must be one of: me, none",
		})
	}

	skip, size := pageFrom(ctx)
	query, err := queries.NewListOrdersQuery(actorFrom(ctx), statuses, pool, skip, size)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := OrderListResponse{
		Total:  result.Total,
		Orders: make([]OrderResponse, len(result.Orders)),
	}
	for i, aggregate := range result.Orders {
		response.Orders[i] = orderToResponse(aggregate)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/:id - retrieves a single order if the
// authenticated actor may see it.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, actorFrom(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	aggregate, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(aggregate))
}

// ModifyOrder handles PATCH /api/orders/:id - applies an administrative
// partial update bypassing the lifecycle state machine.
func (s *Server) ModifyOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var request PatchOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	patch, err := patchFromRequest(request)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewModifyOrderCommand(orderID, actorFrom(ctx), patch)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.modifyOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// AcceptOrder handles POST /api/orders/:id/accept - the restaurant owner
// takes the order into preparation.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, actorFrom(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// DeclineOrder handles POST /api/orders/:id/decline - the restaurant owner
// cancels the order.
func (s *Server) DeclineOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeclineOrderCommand(orderID, actorFrom(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.declineOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// ReadyOrder handles POST /api/orders/:id/ready - the restaurant owner marks
// the order ready for pickup.
func (s *Server) ReadyOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewReadyOrderCommand(orderID, actorFrom(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.readyOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// AssignDeliverer handles POST /api/orders/:id/assign - the authenticated
// deliverer claims the order.
func (s *Server) AssignDeliverer(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignDelivererCommand(orderID, actorFrom(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.assignDelivererHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// BeginDelivery handles POST /api/orders/:id/deliver - the deliverer picks
// up the order and starts the delivery run.
func (s *Server) BeginDelivery(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewBeginDeliveryCommand(orderID, actorFrom(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.beginDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// CompleteOrder handles POST /api/orders/:id/completed - the assigned
// deliverer hands the order over.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	orderID, err := orderIDFromPath(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, actorFrom(ctx))
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

func orderIDFromPath(ctx echo.Context) (kernel.UUID, error) {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return orderID, nil
}

func statusesFromQuery(ctx echo.Context) ([]order.Status, error) {
	raw := ctx.QueryParams()["status"]
	if len(raw) == 0 {
		return nil, nil
	}

	statuses := make([]order.Status, 0, len(raw))
	for _, name := range raw {
		status, err := order.StatusFromString(name)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

func poolFromQuery(ctx echo.Context) (order.PoolFilter, error) {
	switch ctx.QueryParam("deliverer") {
	case "":
		return order.PoolAll, nil
	case "me":
		return order.PoolMine, nil
	case "none":
		return order.PoolUnassigned, nil
	default:
		return order.PoolAll, echo.ErrBadRequest
	}
}
