package handlers

import (
	"net/http"

	request "romaneio_api/internal/adapter/http/dto/request"
	response "romaneio_api/internal/adapter/http/dto/response"
	"romaneio_api/internal/usecase"
	"romaneio_api/pkg"

	"github.com/gin-gonic/gin"
)

// ManifestHandler handles HTTP requests for manifests (romaneios).
type ManifestHandler struct {
	usecase usecase.IManifestUseCase
}

func NewManifestHandler(uc usecase.IManifestUseCase) *ManifestHandler {
	return &ManifestHandler{usecase: uc}
}

// CreateManifest godoc
// @Summary      Create manifest
// @Description  New manifests always start as Aberto.
// @Tags         romaneios
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateManifestRequest  true  "Manifest"
// @Success      201   {object}  response.ManifestResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /romaneios [post]
func (h *ManifestHandler) CreateManifest(c *gin.Context) {
	var payload request.CreateManifestRequest
	if !bindJSON(c, &payload) {
		return
	}
	issueDate, err := payload.ResolveIssueDate()
	if err != nil {
		respondError(c, pkg.NewValidationErrors([]string{err.Error()}))
		return
	}

	manifest, err := h.usecase.Create(c.Request.Context(), usecase.CreateManifestInput{
		Number:    payload.NumeroRomaneio,
		IssueDate: issueDate,
		DriverID:  payload.MotoristaID,
		Vehicle:   payload.Veiculo,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromManifest(manifest))
}

// ListManifests godoc
// @Summary      List manifests
// @Description  Deliveries are not included in the listing.
// @Tags         romaneios
// @Produce      json
// @Success      200  {array}   response.ManifestResponse
// @Router       /romaneios [get]
func (h *ManifestHandler) ListManifests(c *gin.Context) {
	manifests, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromManifests(manifests))
}

// GetManifest godoc
// @Summary      Get manifest by id with its deliveries
// @Tags         romaneios
// @Produce      json
// @Param        id   path      int  true  "Manifest id"
// @Success      200  {object}  response.ManifestResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /romaneios/{id} [get]
func (h *ManifestHandler) GetManifest(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	manifest, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromManifest(manifest))
}

// UpdateManifestStatus godoc
// @Summary      Change manifest status
// @Description  Allowed: Aberto -> Em trânsito | Finalizado, Em trânsito -> Finalizado.
// @Tags         romaneios
// @Accept       json
// @Produce      json
// @Param        id    path      int                                  true  "Manifest id"
// @Param        body  body      request.UpdateManifestStatusRequest  true  "New status"
// @Success      200   {object}  response.ManifestResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /romaneios/{id}/status [patch]
func (h *ManifestHandler) UpdateManifestStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var payload request.UpdateManifestStatusRequest
	if !bindJSON(c, &payload) {
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		respondError(c, pkg.NewValidationErrors([]string{err.Error()}))
		return
	}

	manifest, err := h.usecase.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromManifest(manifest))
}

// DeleteManifest godoc
// @Summary      Delete manifest and its deliveries
// @Tags         romaneios
// @Param        id   path  int  true  "Manifest id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /romaneios/{id} [delete]
func (h *ManifestHandler) DeleteManifest(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
