package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solvia-inc/solvia/internal/application/catalog/usecases"
	"github.com/solvia-inc/solvia/internal/shared/logger"
	"github.com/solvia-inc/solvia/internal/shared/utils"
)

// DimensionHandler serves the domain and sector endpoints. Domains are
// created under a solution; sectors are created catalog-wide and fan out
// across every solution.
type DimensionHandler struct {
	createDomainUC *usecases.CreateDomainForSolutionUseCase
	getDomainUC    *usecases.GetDomainUseCase
	listDomainsUC  *usecases.ListDomainsUseCase
	updateDomainUC *usecases.UpdateDomainUseCase
	deleteDomainUC *usecases.DeleteDomainUseCase
	createSectorUC *usecases.CreateSectorUseCase
	getSectorUC    *usecases.GetSectorUseCase
	listSectorsUC  *usecases.ListSectorsUseCase
	updateSectorUC *usecases.UpdateSectorUseCase
	deleteSectorUC *usecases.DeleteSectorUseCase
	logger         logger.Interface
}

func NewDimensionHandler(
	createDomainUC *usecases.CreateDomainForSolutionUseCase,
	getDomainUC *usecases.GetDomainUseCase,
	listDomainsUC *usecases.ListDomainsUseCase,
	updateDomainUC *usecases.UpdateDomainUseCase,
	deleteDomainUC *usecases.DeleteDomainUseCase,
	createSectorUC *usecases.CreateSectorUseCase,
	getSectorUC *usecases.GetSectorUseCase,
	listSectorsUC *usecases.ListSectorsUseCase,
	updateSectorUC *usecases.UpdateSectorUseCase,
	deleteSectorUC *usecases.DeleteSectorUseCase,
) *DimensionHandler {
	return &DimensionHandler{
		createDomainUC: createDomainUC,
		getDomainUC:    getDomainUC,
		listDomainsUC:  listDomainsUC,
		updateDomainUC: updateDomainUC,
		deleteDomainUC: deleteDomainUC,
		createSectorUC: createSectorUC,
		getSectorUC:    getSectorUC,
		listSectorsUC:  listSectorsUC,
		updateSectorUC: updateSectorUC,
		deleteSectorUC: deleteSectorUC,
		logger:         logger.NewLogger(),
	}
}

type CreateDimensionRequest struct {
	Description string `json:"description" binding:"required"`
	WebText     string `json:"web_text"`
	Prefix      string `json:"prefix"`
	Slug        string `json:"slug"`
}

type UpdateDimensionRequest struct {
	Description *string `json:"description"`
	WebText     *string `json:"web_text"`
	Prefix      *string `json:"prefix"`
	Slug        *string `json:"slug"`
}

func (h *DimensionHandler) CreateDomainForSolution(c *gin.Context) {
	solutionID, err := utils.ParseIDParam(c, "id", "solution")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateDimensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create domain", "solution_id", solutionID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createDomainUC.Execute(c.Request.Context(), usecases.CreateDomainForSolutionCommand{
		SolutionID:  solutionID,
		Description: req.Description,
		WebText:     req.WebText,
		Prefix:      req.Prefix,
		Slug:        req.Slug,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Domain created successfully")
}

func (h *DimensionHandler) GetDomain(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "domain")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.getDomainUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Domain retrieved successfully", dto)
}

func (h *DimensionHandler) ListDomains(c *gin.Context) {
	dtos, err := h.listDomainsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Domains retrieved successfully", dtos)
}

func (h *DimensionHandler) UpdateDomain(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "domain")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateDimensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update domain", "domain_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.updateDomainUC.Execute(c.Request.Context(), usecases.UpdateDimensionCommand{
		ID:          id,
		Description: req.Description,
		WebText:     req.WebText,
		Prefix:      req.Prefix,
		Slug:        req.Slug,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Domain updated successfully", nil)
}

// DeleteDomain removes a domain and every association row that references
// it, in one transaction.
func (h *DimensionHandler) DeleteDomain(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "domain")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteDomainUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *DimensionHandler) CreateSector(c *gin.Context) {
	var req CreateDimensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create sector", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createSectorUC.Execute(c.Request.Context(), usecases.CreateSectorCommand{
		Description: req.Description,
		WebText:     req.WebText,
		Prefix:      req.Prefix,
		Slug:        req.Slug,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Sector created successfully")
}

func (h *DimensionHandler) GetSector(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "sector")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.getSectorUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sector retrieved successfully", dto)
}

func (h *DimensionHandler) ListSectors(c *gin.Context) {
	dtos, err := h.listSectorsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sectors retrieved successfully", dtos)
}

func (h *DimensionHandler) UpdateSector(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "sector")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateDimensionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update sector", "sector_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.updateSectorUC.Execute(c.Request.Context(), usecases.UpdateDimensionCommand{
		ID:          id,
		Description: req.Description,
		WebText:     req.WebText,
		Prefix:      req.Prefix,
		Slug:        req.Slug,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sector updated successfully", nil)
}

func (h *DimensionHandler) DeleteSector(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "sector")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteSectorUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
