package handlers

import (
	"net/http"
	"strconv"

	request "romaneio_api/internal/adapter/http/dto/request"
	response "romaneio_api/internal/adapter/http/dto/response"
	"romaneio_api/internal/usecase"
	"romaneio_api/pkg"

	"github.com/gin-gonic/gin"
)

var errMissingManifestQuery = pkg.NewDomainErrorSimple("INVALID_REQUEST", "romaneio_id query parameter must be a positive integer", http.StatusBadRequest)

// DeliveryHandler handles HTTP requests for deliveries (entregas).
type DeliveryHandler struct {
	usecase usecase.IDeliveryUseCase
}

func NewDeliveryHandler(uc usecase.IDeliveryUseCase) *DeliveryHandler {
	return &DeliveryHandler{usecase: uc}
}

// CreateDelivery godoc
// @Summary      Add a delivery to a manifest
// @Description  New deliveries always start as Pendente; valor must be positive.
// @Tags         entregas
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateDeliveryRequest  true  "Delivery"
// @Success      201   {object}  response.DeliveryResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /entregas [post]
func (h *DeliveryHandler) CreateDelivery(c *gin.Context) {
	var payload request.CreateDeliveryRequest
	if !bindJSON(c, &payload) {
		return
	}

	delivery, err := h.usecase.Create(c.Request.Context(), usecase.CreateDeliveryInput{
		ManifestID: payload.RomaneioID,
		Client:     payload.Cliente,
		Address:    payload.Endereco,
		Value:      payload.Valor,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromDelivery(delivery))
}

// ListDeliveries godoc
// @Summary      List deliveries of a manifest
// @Description  An unknown manifest yields an empty list.
// @Tags         entregas
// @Produce      json
// @Param        romaneio_id  query     int  true  "Manifest id"
// @Success      200          {array}   response.DeliveryResponse
// @Failure      400          {object}  pkg.HTTPError
// @Router       /entregas [get]
func (h *DeliveryHandler) ListDeliveries(c *gin.Context) {
	manifestID, err := strconv.ParseInt(c.Query("romaneio_id"), 10, 64)
	if err != nil || manifestID <= 0 {
		respondError(c, errMissingManifestQuery)
		return
	}

	deliveries, err := h.usecase.ListByManifestID(c.Request.Context(), manifestID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDeliveries(deliveries))
}

// UpdateDeliveryStatus godoc
// @Summary      Change delivery status
// @Description  Any of Pendente, Entregue, Cancelada may be set at any time.
// @Tags         entregas
// @Accept       json
// @Produce      json
// @Param        id    path      int                                  true  "Delivery id"
// @Param        body  body      request.UpdateDeliveryStatusRequest  true  "New status"
// @Success      200   {object}  response.DeliveryResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /entregas/{id}/status [patch]
func (h *DeliveryHandler) UpdateDeliveryStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var payload request.UpdateDeliveryStatusRequest
	if !bindJSON(c, &payload) {
		return
	}

	delivery, err := h.usecase.UpdateStatus(c.Request.Context(), id, payload.ResolveStatus())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDelivery(delivery))
}
