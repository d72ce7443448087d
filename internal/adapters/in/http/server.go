package http

import (
	"errors"
	"net/http"

	"purchase/internal/core/application/usecases/commands"
	"purchase/internal/core/application/usecases/queries"
	"purchase/internal/core/domain/model/kernel"
	"purchase/internal/core/domain/model/purchase"
	"purchase/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles the purchase HTTP endpoints.
// It coordinates between HTTP handlers and application use cases and renders
// domain failures as status codes: precondition and state-machine violations
// become 400, a missing purchase becomes 404, storage failures become 500.
type Server struct {
	// Command handlers
	createPurchaseHandler      commands.CreatePurchaseCommandHandler
	updateStatusHandler        commands.UpdateStatusCommandHandler
	changePaymentMethodHandler commands.ChangePaymentMethodCommandHandler

	// Query handlers
	getPurchaseHandler     queries.GetPurchaseQueryHandler
	getAllPurchasesHandler queries.GetAllPurchasesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createPurchaseHandler commands.CreatePurchaseCommandHandler,
	updateStatusHandler commands.UpdateStatusCommandHandler,
	changePaymentMethodHandler commands.ChangePaymentMethodCommandHandler,
	getPurchaseHandler queries.GetPurchaseQueryHandler,
	getAllPurchasesHandler queries.GetAllPurchasesQueryHandler,
) *Server {
	return &Server{
		createPurchaseHandler:      createPurchaseHandler,
		updateStatusHandler:        updateStatusHandler,
		changePaymentMethodHandler: changePaymentMethodHandler,
		getPurchaseHandler:         getPurchaseHandler,
		getAllPurchasesHandler:     getAllPurchasesHandler,
	}
}

// RegisterRoutes wires the purchase endpoints into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.GET("/purchases", s.GetPurchases)
	api.GET("/purchases/:id", s.GetPurchase)
	api.POST("/purchases", s.CreatePurchase)
	api.PATCH("/purchases/:id/status", s.UpdateStatus)
	api.PATCH("/purchases/:id/payment-method", s.ChangePaymentMethod)
}

// GetPurchases handles GET /api/v1/purchases - retrieves all purchases.
func (s *Server) GetPurchases(ctx echo.Context) error {
	query := queries.NewGetAllPurchasesQuery()

	purchases, err := s.getAllPurchasesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve purchases",
		})
	}

	response := make([]PurchaseResponse, 0, len(purchases))
	for _, aggregate := range purchases {
		response = append(response, toPurchaseResponse(aggregate))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPurchase handles GET /api/v1/purchases/:id - retrieves one purchase.
func (s *Server) GetPurchase(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid purchase id",
		})
	}

	query, err := queries.NewGetPurchaseQuery(id)
	if err != nil {
		return s.renderError(ctx, err)
	}

	aggregate, err := s.getPurchaseHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.renderError(ctx, err)
	}
	if aggregate == nil {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Purchase not found",
		})
	}

	return ctx.JSON(http.StatusOK, toPurchaseResponse(aggregate))
}

// CreatePurchase handles POST /api/v1/purchases - creates a new purchase.
func (s *Server) CreatePurchase(ctx echo.Context) error {
	var request CreatePurchaseRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	method, err := purchase.PaymentMethodFromString(request.PaymentMethod)
	if err != nil {
		return s.renderError(ctx, err)
	}

	lines := make([]commands.ProductLine, 0, len(request.PurchasedProducts))
	for _, product := range request.PurchasedProducts {
		line, lineErr := commands.NewProductLine(
			product.Name,
			product.Reference,
			product.Quantity,
			product.Price,
		)
		if lineErr != nil {
			return s.renderError(ctx, lineErr)
		}
		lines = append(lines, line)
	}

	cmd, err := commands.NewCreatePurchaseCommand(request.Currency, method, lines)
	if err != nil {
		return s.renderError(ctx, err)
	}

	aggregate, err := s.createPurchaseHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toPurchaseResponse(aggregate))
}

// UpdateStatus handles PATCH /api/v1/purchases/:id/status - advances the payment status.
func (s *Server) UpdateStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid purchase id",
		})
	}

	var request UpdateStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := purchase.StatusFromString(request.Status)
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewUpdateStatusCommand(id, status)
	if err != nil {
		return s.renderError(ctx, err)
	}

	aggregate, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPurchaseResponse(aggregate))
}

// ChangePaymentMethod handles PATCH /api/v1/purchases/:id/payment-method -
// replaces the payment method while the purchase is still in progress.
func (s *Server) ChangePaymentMethod(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid purchase id",
		})
	}

	var request ChangePaymentMethodRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	method, err := purchase.PaymentMethodFromString(request.PaymentMethod)
	if err != nil {
		return s.renderError(ctx, err)
	}

	cmd, err := commands.NewChangePaymentMethodCommand(id, method)
	if err != nil {
		return s.renderError(ctx, err)
	}

	aggregate, err := s.changePaymentMethodHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.renderError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPurchaseResponse(aggregate))
}

// renderError maps an application or domain failure to its response.
func (s *Server) renderError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, purchase.ErrEmptyPurchase),
		errors.Is(err, purchase.ErrStatusChangeNotAllowed),
		errors.Is(err, purchase.ErrPaymentMethodLocked),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	default:
		// Storage failures reach this point unchanged and are rendered opaque.
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
