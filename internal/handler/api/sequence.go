package api

import (
	"net/http"

	reqdto "rentalflow/internal/handler/dto/request"
	resdto "rentalflow/internal/handler/dto/response"
	"rentalflow/internal/usecase/sequence"

	"github.com/gin-gonic/gin"
)

type SequenceHandler struct {
	generator sequence.Generator
}

func NewSequenceHandler(generator sequence.Generator) *SequenceHandler {
	return &SequenceHandler{generator: generator}
}

func (h *SequenceHandler) Peek(c *gin.Context) {
	name := c.Param("name")

	value, err := h.generator.Peek(c.Request.Context(), name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.SequenceResponse{Name: name, LastValue: value})
}

func (h *SequenceHandler) Reset(c *gin.Context) {
	name := c.Param("name")

	var req reqdto.ResetSequenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.generator.Reset(c.Request.Context(), name, req.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, resdto.SequenceResponse{Name: name, LastValue: req.Value})
}
