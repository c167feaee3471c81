package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "orderdesk/internal/domain/errors"
	"orderdesk/internal/server/http/dto"
)

// OrderHandler manages order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/orders. Visibility follows the caller's role;
// an unrecognized role is forbidden outright.
func (h *OrderHandler) List(c *gin.Context) {
	identity := CurrentIdentity(c)
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	orders, pagination, err := h.facade.Orders(c.Request.Context(), identity, page, limit)
	if err != nil {
		if errors.Is(err, domainErrors.ErrRoleForbidden) {
			respondMessage(c, http.StatusForbidden, "Invalid role")
			return
		}
		internalError(c, "Failed to fetch orders")
		return
	}

	response := dto.ListOrdersResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
		Pagination: dto.PaginationResponse{
			Total: pagination.Total,
			Page:  pagination.Page,
			Limit: pagination.Limit,
			Pages: pagination.Pages,
		},
	}
	for _, o := range orders {
		response.Orders = append(response.Orders, dto.NewOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/orders. Users only; the owner comes from
// the session regardless of the payload.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Missing fields")
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), CurrentIdentity(c), req.Draft())
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrRoleForbidden):
			respondMessage(c, http.StatusForbidden, "Forbidden: insufficient permissions")
		case errors.Is(err, domainErrors.ErrValidation):
			respondMessage(c, http.StatusBadRequest, err.Error())
		default:
			internalError(c, "Creation failed")
		}
		return
	}

	c.JSON(http.StatusCreated, dto.OrderEnvelope{Order: dto.NewOrderResponse(*order)})
}

// Update handles PUT /api/orders?id=. Owner-only field edits; status
// and approval fields are stripped by construction.
func (h *OrderHandler) Update(c *gin.Context) {
	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid payload")
		return
	}

	order, err := h.facade.UpdateOrder(c.Request.Context(), CurrentIdentity(c), c.Query("id"), req.Update())
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidOrderID):
			respondMessage(c, http.StatusBadRequest, "Invalid id")
		case errors.Is(err, domainErrors.ErrRoleForbidden):
			respondMessage(c, http.StatusForbidden, "Forbidden: only users can update orders")
		case errors.Is(err, domainErrors.ErrNotFound):
			respondMessage(c, http.StatusNotFound, "Not found")
		case errors.Is(err, domainErrors.ErrNotOwner):
			respondMessage(c, http.StatusForbidden, "Forbidden: cannot update others' orders")
		case errors.Is(err, domainErrors.ErrValidation):
			respondMessage(c, http.StatusBadRequest, err.Error())
		default:
			internalError(c, "Update failed")
		}
		return
	}

	c.JSON(http.StatusOK, dto.OrderEnvelope{Order: dto.NewOrderResponse(*order)})
}

// Transition handles PATCH /api/orders?id=. Managers only.
func (h *OrderHandler) Transition(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, "Invalid status")
		return
	}

	order, err := h.facade.TransitionOrder(c.Request.Context(), CurrentIdentity(c), c.Query("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidOrderID):
			respondMessage(c, http.StatusBadRequest, "Invalid id")
		case errors.Is(err, domainErrors.ErrRoleForbidden):
			respondMessage(c, http.StatusForbidden, "Forbidden: only managers can update order status")
		case errors.Is(err, domainErrors.ErrInvalidStatus):
			respondMessage(c, http.StatusBadRequest, "Invalid status")
		case errors.Is(err, domainErrors.ErrNotFound):
			respondMessage(c, http.StatusNotFound, "Not found")
		default:
			internalError(c, "Status update failed")
		}
		return
	}

	c.JSON(http.StatusOK, dto.OrderEnvelope{Order: dto.NewOrderResponse(*order)})
}

// Delete handles DELETE /api/orders?id=. Owner-only.
func (h *OrderHandler) Delete(c *gin.Context) {
	err := h.facade.DeleteOrder(c.Request.Context(), CurrentIdentity(c), c.Query("id"))
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidOrderID):
			respondMessage(c, http.StatusBadRequest, "Invalid id")
		case errors.Is(err, domainErrors.ErrRoleForbidden):
			respondMessage(c, http.StatusForbidden, "Forbidden: only users can delete orders")
		case errors.Is(err, domainErrors.ErrNotFound):
			respondMessage(c, http.StatusNotFound, "Not found")
		case errors.Is(err, domainErrors.ErrNotOwner):
			respondMessage(c, http.StatusForbidden, "Forbidden: cannot delete others' orders")
		default:
			internalError(c, "Delete failed")
		}
		return
	}

	respondMessage(c, http.StatusOK, "Deleted")
}
