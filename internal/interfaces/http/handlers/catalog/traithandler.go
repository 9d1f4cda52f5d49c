package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solvia-inc/solvia/internal/application/catalog/usecases"
	catalogdomain "github.com/solvia-inc/solvia/internal/domain/catalog"
	appErrors "github.com/solvia-inc/solvia/internal/shared/errors"
	"github.com/solvia-inc/solvia/internal/shared/logger"
	"github.com/solvia-inc/solvia/internal/shared/utils"
)

// TraitHandler serves benefits, features and problems. The three share one
// handler; the :kind route segment selects which table the request targets.
type TraitHandler struct {
	createTraitUC *usecases.CreateTraitUseCase
	getTraitUC    *usecases.GetTraitUseCase
	listTraitsUC  *usecases.ListTraitsUseCase
	updateTraitUC *usecases.UpdateTraitUseCase
	deleteTraitUC *usecases.DeleteTraitUseCase
	logger        logger.Interface
}

func NewTraitHandler(
	createTraitUC *usecases.CreateTraitUseCase,
	getTraitUC *usecases.GetTraitUseCase,
	listTraitsUC *usecases.ListTraitsUseCase,
	updateTraitUC *usecases.UpdateTraitUseCase,
	deleteTraitUC *usecases.DeleteTraitUseCase,
) *TraitHandler {
	return &TraitHandler{
		createTraitUC: createTraitUC,
		getTraitUC:    getTraitUC,
		listTraitsUC:  listTraitsUC,
		updateTraitUC: updateTraitUC,
		deleteTraitUC: deleteTraitUC,
		logger:        logger.NewLogger(),
	}
}

type CreateTraitRequest struct {
	Pragma      string `json:"pragma"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	SolutionID  uint   `json:"solution_id"`
}

type UpdateTraitRequest struct {
	Pragma      *string `json:"pragma"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

func parseTraitKind(c *gin.Context) (catalogdomain.TraitKind, error) {
	kind := catalogdomain.TraitKind(c.Param("kind"))
	if !kind.Valid() {
		return "", appErrors.NewValidationError("kind must be one of benefit, feature, problem")
	}
	return kind, nil
}

// CreateTrait creates a benefit, feature or problem. When solution_id is set
// the new trait is linked to that solution in the same transaction.
func (h *TraitHandler) CreateTrait(c *gin.Context) {
	kind, err := parseTraitKind(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateTraitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create trait", "kind", kind, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createTraitUC.Execute(c.Request.Context(), usecases.CreateTraitCommand{
		Kind:        kind,
		Pragma:      req.Pragma,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		SolutionID:  req.SolutionID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Trait created successfully")
}

func (h *TraitHandler) GetTrait(c *gin.Context) {
	kind, err := parseTraitKind(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "trait")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dto, err := h.getTraitUC.Execute(c.Request.Context(), kind, id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Trait retrieved successfully", dto)
}

func (h *TraitHandler) ListTraits(c *gin.Context) {
	kind, err := parseTraitKind(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	dtos, err := h.listTraitsUC.Execute(c.Request.Context(), kind)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Traits retrieved successfully", dtos)
}

func (h *TraitHandler) UpdateTrait(c *gin.Context) {
	kind, err := parseTraitKind(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "trait")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTraitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update trait", "kind", kind, "trait_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.updateTraitUC.Execute(c.Request.Context(), usecases.UpdateTraitCommand{
		Kind:        kind,
		ID:          id,
		Pragma:      req.Pragma,
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Trait updated successfully", nil)
}

// DeleteTrait removes a trait and its junction rows in one transaction.
func (h *TraitHandler) DeleteTrait(c *gin.Context) {
	kind, err := parseTraitKind(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	id, err := utils.ParseIDParam(c, "id", "trait")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteTraitUC.Execute(c.Request.Context(), kind, id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
