package handlers

import (
	"net/http"

	"storefront_orders/internal/adapter/http/dto/request"
	"storefront_orders/internal/adapter/http/middleware"
	"storefront_orders/internal/usecase"
	"storefront_orders/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CardHandler manages the caller's saved cards.
type CardHandler struct {
	usecase usecase.ICardUseCase
}

func NewCardHandler(uc usecase.ICardUseCase) *CardHandler {
	return &CardHandler{usecase: uc}
}

// @Summary List saved cards
// @Tags cards
// @Produce json
// @Success 200 {array} entities.SavedCard
// @Router /v1/cards [get]
func (h *CardHandler) ListCards(c *gin.Context) {
	cards, err := h.usecase.ListCards(c.Request.Context(), middleware.ActorFrom(c))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, cards)
}

// @Summary Save a card
// @Tags cards
// @Accept json
// @Produce json
// @Param payload body request.SaveCardRequest true "Card token"
// @Success 201 {object} entities.SavedCard
// @Router /v1/cards [post]
func (h *CardHandler) SaveCard(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var payload request.SaveCardRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.WithMessage(err.Error()).ToHTTPError())
		return
	}

	card, err := h.usecase.SaveCard(c.Request.Context(), actor, payload.Token, payload.Payer.ToEntity())
	if err != nil {
		logger.Warn("[card][handler] save failed", zap.String("user_id", actor.UserID), zap.Error(err))
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, card)
}

// @Summary Delete a saved card
// @Tags cards
// @Param card_id path string true "Card id"
// @Success 204
// @Router /v1/cards/{card_id} [delete]
func (h *CardHandler) DeleteCard(c *gin.Context) {
	actor := middleware.ActorFrom(c)
	cardID := c.Param("card_id")

	if err := h.usecase.DeleteCard(c.Request.Context(), actor, cardID); err != nil {
		logger.Warn("[card][handler] delete failed", zap.String("user_id", actor.UserID), zap.String("card_id", cardID), zap.Error(err))
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
