package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solvia-inc/solvia/internal/application/catalog/usecases"
	"github.com/solvia-inc/solvia/internal/shared/logger"
	"github.com/solvia-inc/solvia/internal/shared/utils"
)

type SolutionHandler struct {
	createSolutionUC *usecases.CreateSolutionUseCase
	getSolutionUC    *usecases.GetSolutionUseCase
	listSolutionsUC  *usecases.ListSolutionsUseCase
	updateSolutionUC *usecases.UpdateSolutionUseCase
	deleteSolutionUC *usecases.DeleteSolutionUseCase
	listAssocUC      *usecases.ListSolutionAssociationsUseCase
	logger           logger.Interface
}

func NewSolutionHandler(
	createSolutionUC *usecases.CreateSolutionUseCase,
	getSolutionUC *usecases.GetSolutionUseCase,
	listSolutionsUC *usecases.ListSolutionsUseCase,
	updateSolutionUC *usecases.UpdateSolutionUseCase,
	deleteSolutionUC *usecases.DeleteSolutionUseCase,
	listAssocUC *usecases.ListSolutionAssociationsUseCase,
) *SolutionHandler {
	return &SolutionHandler{
		createSolutionUC: createSolutionUC,
		getSolutionUC:    getSolutionUC,
		listSolutionsUC:  listSolutionsUC,
		updateSolutionUC: updateSolutionUC,
		deleteSolutionUC: deleteSolutionUC,
		listAssocUC:      listAssocUC,
		logger:           logger.NewLogger(),
	}
}

type CreateSolutionRequest struct {
	Slug             string                 `json:"slug" validate:"omitempty,lowercase,max=255"`
	Title            string                 `json:"title" binding:"required" validate:"required,max=255"`
	Subtitle         string                 `json:"subtitle" validate:"max=500"`
	Description      string                 `json:"description"`
	Icon             string                 `json:"icon" validate:"max=255"`
	CTAPrimaryText   string                 `json:"cta_primary_text" validate:"max=255"`
	CTAPrimaryLink   string                 `json:"cta_primary_link" validate:"max=500"`
	CTASecondaryText string                 `json:"cta_secondary_text" validate:"max=255"`
	CTASecondaryLink string                 `json:"cta_secondary_link" validate:"max=500"`
	Multimedia       map[string]interface{} `json:"multimedia"`
}

type UpdateSolutionRequest struct {
	Title            *string `json:"title" validate:"omitempty,min=1,max=255"`
	Subtitle         *string `json:"subtitle" validate:"omitempty,max=500"`
	Description      *string `json:"description"`
	Icon             *string `json:"icon" validate:"omitempty,max=255"`
	CTAPrimaryText   *string `json:"cta_primary_text" validate:"omitempty,max=255"`
	CTAPrimaryLink   *string `json:"cta_primary_link" validate:"omitempty,max=500"`
	CTASecondaryText *string `json:"cta_secondary_text" validate:"omitempty,max=255"`
	CTASecondaryLink *string `json:"cta_secondary_link" validate:"omitempty,max=500"`
}

func (h *SolutionHandler) CreateSolution(c *gin.Context) {
	var req CreateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create solution", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createSolutionUC.Execute(c.Request.Context(), usecases.CreateSolutionCommand{
		Slug:             req.Slug,
		Title:            req.Title,
		Subtitle:         req.Subtitle,
		Description:      req.Description,
		Icon:             req.Icon,
		CTAPrimaryText:   req.CTAPrimaryText,
		CTAPrimaryLink:   req.CTAPrimaryLink,
		CTASecondaryText: req.CTASecondaryText,
		CTASecondaryLink: req.CTASecondaryLink,
		Multimedia:       req.Multimedia,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Solution created successfully")
}

func (h *SolutionHandler) GetSolution(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "solution")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.getSolutionUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Solution retrieved successfully", dto)
}

func (h *SolutionHandler) GetSolutionBySlug(c *gin.Context) {
	dto, err := h.getSolutionUC.ExecuteBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Solution retrieved successfully", dto)
}

func (h *SolutionHandler) ListSolutions(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listSolutionsUC.Execute(c.Request.Context(), usecases.ListSolutionsCommand{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Solutions, result.Total, result.Page, result.PageSize)
}

func (h *SolutionHandler) UpdateSolution(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "solution")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSolutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update solution", "solution_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.updateSolutionUC.Execute(c.Request.Context(), usecases.UpdateSolutionCommand{
		SolutionID:       id,
		Title:            req.Title,
		Subtitle:         req.Subtitle,
		Description:      req.Description,
		Icon:             req.Icon,
		CTAPrimaryText:   req.CTAPrimaryText,
		CTAPrimaryLink:   req.CTAPrimaryLink,
		CTASecondaryText: req.CTASecondaryText,
		CTASecondaryLink: req.CTASecondaryLink,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Solution updated successfully", nil)
}

func (h *SolutionHandler) DeleteSolution(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "solution")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteSolutionUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *SolutionHandler) ListSolutionAssociations(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "solution")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.listAssocUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Solution associations retrieved successfully", dto)
}
