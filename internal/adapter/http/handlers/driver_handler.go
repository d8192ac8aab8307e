package handlers

import (
	"net/http"

	request "romaneio_api/internal/adapter/http/dto/request"
	response "romaneio_api/internal/adapter/http/dto/response"
	"romaneio_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// DriverHandler handles HTTP requests for drivers (motoristas).
type DriverHandler struct {
	usecase usecase.IDriverUseCase
}

func NewDriverHandler(uc usecase.IDriverUseCase) *DriverHandler {
	return &DriverHandler{usecase: uc}
}

// CreateDriver godoc
// @Summary      Create driver
// @Tags         motoristas
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateDriverRequest  true  "Driver"
// @Success      201   {object}  response.DriverResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /motoristas [post]
func (h *DriverHandler) CreateDriver(c *gin.Context) {
	var payload request.CreateDriverRequest
	if !bindJSON(c, &payload) {
		return
	}

	driver, err := h.usecase.Create(c.Request.Context(), usecase.CreateDriverInput{
		Name:  payload.Nome,
		CPF:   payload.CPF,
		Phone: payload.Telefone,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromDriver(driver))
}

// ListDrivers godoc
// @Summary      List drivers
// @Tags         motoristas
// @Produce      json
// @Success      200  {array}   response.DriverResponse
// @Router       /motoristas [get]
func (h *DriverHandler) ListDrivers(c *gin.Context) {
	drivers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDrivers(drivers))
}

// GetDriver godoc
// @Summary      Get driver by id
// @Tags         motoristas
// @Produce      json
// @Param        id   path      int  true  "Driver id"
// @Success      200  {object}  response.DriverResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /motoristas/{id} [get]
func (h *DriverHandler) GetDriver(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	driver, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDriver(driver))
}

// UpdateDriver godoc
// @Summary      Partially update driver
// @Tags         motoristas
// @Accept       json
// @Produce      json
// @Param        id    path      int                          true  "Driver id"
// @Param        body  body      request.UpdateDriverRequest  true  "Fields to change"
// @Success      200   {object}  response.DriverResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /motoristas/{id} [patch]
func (h *DriverHandler) UpdateDriver(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var payload request.UpdateDriverRequest
	if !bindJSON(c, &payload) {
		return
	}

	driver, err := h.usecase.Update(c.Request.Context(), id, payload.ToDriverUpdate())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromDriver(driver))
}
