package api

import (
	"context"
	"errors"
	"net/http"

	"rentalflow/internal/domain/order"
	reqdto "rentalflow/internal/handler/dto/request"
	resdto "rentalflow/internal/handler/dto/response"
	"rentalflow/internal/pkg/errs"
	"rentalflow/internal/usecase/commands"
	"rentalflow/internal/usecase/queries"
	"rentalflow/internal/usecase/sequence"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderCommands commands.OrderCommands
	orderQueries  queries.OrderQueries
}

func NewOrderHandler(orderCommands commands.OrderCommands, orderQueries queries.OrderQueries) *OrderHandler {
	return &OrderHandler{
		orderCommands: orderCommands,
		orderQueries:  orderQueries,
	}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req reqdto.CreateOrderRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.orderCommands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		h.renderCommandError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromOrderView(view))
}

func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := h.orderIDParam(c)
	if !ok {
		return
	}

	view, err := h.orderQueries.GetByID(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, queries.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

func (h *OrderHandler) Confirm(c *gin.Context) {
	h.transition(c, h.orderCommands.Confirm)
}

func (h *OrderHandler) Deliver(c *gin.Context) {
	h.transition(c, h.orderCommands.Deliver)
}

func (h *OrderHandler) Return(c *gin.Context) {
	h.transition(c, h.orderCommands.Return)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	h.transition(c, h.orderCommands.Cancel)
}

func (h *OrderHandler) Undo(c *gin.Context) {
	if err := h.orderCommands.Undo(c.Request.Context()); err != nil {
		switch {
		case errors.Is(err, errs.ErrUndoNotAvailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Nothing to undo"})
		case errors.Is(err, errs.ErrUndoFailed):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Undo failed; history left unchanged"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"canRedo": h.orderCommands.CanRedo()})
}

func (h *OrderHandler) Redo(c *gin.Context) {
	if err := h.orderCommands.Redo(c.Request.Context()); err != nil {
		switch {
		case errors.Is(err, errs.ErrRedoNotAvailable):
			c.JSON(http.StatusConflict, gin.H{"error": "Nothing to redo"})
		case errors.Is(err, errs.ErrRedoFailed):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Redo failed; history left unchanged"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"canUndo": h.orderCommands.CanUndo()})
}

func (h *OrderHandler) History(c *gin.Context) {
	resp := resdto.FromCommandRecords(
		h.orderCommands.History(),
		h.orderCommands.CanUndo(),
		h.orderCommands.CanRedo(),
	)
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) transition(c *gin.Context, fn func(ctx context.Context, orderID uuid.UUID) (*queries.OrderView, error)) {
	orderID, ok := h.orderIDParam(c)
	if !ok {
		return
	}

	view, err := fn(c.Request.Context(), orderID)
	if err != nil {
		h.renderCommandError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

func (h *OrderHandler) orderIDParam(c *gin.Context) (uuid.UUID, bool) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return uuid.Nil, false
	}
	return orderID, true
}

func (h *OrderHandler) renderCommandError(c *gin.Context, err error) {
	var trErr *order.TransitionError

	switch {
	case errors.As(err, &trErr):
		c.JSON(http.StatusConflict, gin.H{
			"error": trErr.Error(),
			"detail": gin.H{
				"currentState":       trErr.Current.String(),
				"allowedTransitions": transitionStrings(trErr.Allowed),
			},
		})
	case errors.Is(err, commands.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, commands.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
	case errors.Is(err, commands.ErrItemUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "One or more items are not available"})
	case errors.Is(err, sequence.ErrGenerationFailed):
		// Retryable by the client; the core performs no automatic retry.
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Order number allocation failed, retry the request"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func transitionStrings(transitions []order.Transition) []string {
	out := make([]string, 0, len(transitions))
	for _, tr := range transitions {
		out = append(out, tr.String())
	}
	return out
}
