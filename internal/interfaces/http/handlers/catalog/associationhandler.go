package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solvia-inc/solvia/internal/application/catalog/usecases"
	catalogdomain "github.com/solvia-inc/solvia/internal/domain/catalog"
	"github.com/solvia-inc/solvia/internal/shared/logger"
	"github.com/solvia-inc/solvia/internal/shared/utils"
)

// AssociationHandler serves the junction endpoints: linking solutions to
// domains, sectors, (domain, sector) pairs and traits, editing the scoped
// snapshots stored on those links, and removing them. Associate calls are
// idempotent; repeating one reports created=false instead of failing.
type AssociationHandler struct {
	associateDomainUC       *usecases.AssociateDomainUseCase
	associateSectorUC       *usecases.AssociateSectorUseCase
	associateDomainSectorUC *usecases.AssociateDomainSectorUseCase
	associateTraitUC        *usecases.AssociateTraitUseCase
	updateDomainLinkUC      *usecases.UpdateSolutionDomainUseCase
	updateSectorLinkUC      *usecases.UpdateSolutionSectorUseCase
	updateTripleLinkUC      *usecases.UpdateSolutionDomainSectorUseCase
	disassociateDomainUC    *usecases.DisassociateDomainUseCase
	disassociateSectorUC    *usecases.DisassociateSectorUseCase
	disassociateTripleUC    *usecases.DisassociateDomainSectorUseCase
	disassociateTraitUC     *usecases.DisassociateTraitUseCase
	logger                  logger.Interface
}

func NewAssociationHandler(
	associateDomainUC *usecases.AssociateDomainUseCase,
	associateSectorUC *usecases.AssociateSectorUseCase,
	associateDomainSectorUC *usecases.AssociateDomainSectorUseCase,
	associateTraitUC *usecases.AssociateTraitUseCase,
	updateDomainLinkUC *usecases.UpdateSolutionDomainUseCase,
	updateSectorLinkUC *usecases.UpdateSolutionSectorUseCase,
	updateTripleLinkUC *usecases.UpdateSolutionDomainSectorUseCase,
	disassociateDomainUC *usecases.DisassociateDomainUseCase,
	disassociateSectorUC *usecases.DisassociateSectorUseCase,
	disassociateTripleUC *usecases.DisassociateDomainSectorUseCase,
	disassociateTraitUC *usecases.DisassociateTraitUseCase,
) *AssociationHandler {
	return &AssociationHandler{
		associateDomainUC:       associateDomainUC,
		associateSectorUC:       associateSectorUC,
		associateDomainSectorUC: associateDomainSectorUC,
		associateTraitUC:        associateTraitUC,
		updateDomainLinkUC:      updateDomainLinkUC,
		updateSectorLinkUC:      updateSectorLinkUC,
		updateTripleLinkUC:      updateTripleLinkUC,
		disassociateDomainUC:    disassociateDomainUC,
		disassociateSectorUC:    disassociateSectorUC,
		disassociateTripleUC:    disassociateTripleUC,
		disassociateTraitUC:     disassociateTraitUC,
		logger:                  logger.NewLogger(),
	}
}

type UpdateDomainLinkRequest struct {
	Title            *string `json:"title"`
	Subtitle         *string `json:"subtitle"`
	Description      *string `json:"description"`
	Icon             *string `json:"icon"`
	CTAPrimaryText   *string `json:"cta_primary_text"`
	CTAPrimaryLink   *string `json:"cta_primary_link"`
	CTASecondaryText *string `json:"cta_secondary_text"`
	CTASecondaryLink *string `json:"cta_secondary_link"`
	ProblemsPragma   *string `json:"problems_pragma"`
	ProblemsTitle    *string `json:"problems_title"`
	FeaturesPragma   *string `json:"features_pragma"`
	FeaturesTitle    *string `json:"features_title"`
	BenefitsPragma   *string `json:"benefits_pragma"`
	BenefitsTitle    *string `json:"benefits_title"`
}

func (r UpdateDomainLinkRequest) toUpdate() catalogdomain.PresentationUpdate {
	return catalogdomain.PresentationUpdate{
		Title:            r.Title,
		Subtitle:         r.Subtitle,
		Description:      r.Description,
		Icon:             r.Icon,
		CTAPrimaryText:   r.CTAPrimaryText,
		CTAPrimaryLink:   r.CTAPrimaryLink,
		CTASecondaryText: r.CTASecondaryText,
		CTASecondaryLink: r.CTASecondaryLink,
		ProblemsPragma:   r.ProblemsPragma,
		ProblemsTitle:    r.ProblemsTitle,
		FeaturesPragma:   r.FeaturesPragma,
		FeaturesTitle:    r.FeaturesTitle,
		BenefitsPragma:   r.BenefitsPragma,
		BenefitsTitle:    r.BenefitsTitle,
	}
}

type UpdateSectorLinkRequest struct {
	AltDescription *string `json:"alt_description"`
	AltText        *string `json:"alt_text"`
}

func (h *AssociationHandler) solutionAndDimensionIDs(c *gin.Context, dimParam, dimEntity string) (uint, uint, error) {
	solutionID, err := utils.ParseIDParam(c, "id", "solution")
	if err != nil {
		return 0, 0, err
	}
	dimID, err := utils.ParseIDParam(c, dimParam, dimEntity)
	if err != nil {
		return 0, 0, err
	}
	return solutionID, dimID, nil
}

func (h *AssociationHandler) respondAssociate(c *gin.Context, result *usecases.AssociateResult) {
	if result.Created {
		utils.CreatedResponse(c, result, "Association created successfully")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result.Message, result)
}

func (h *AssociationHandler) respondDisassociate(c *gin.Context, result *usecases.DisassociateResult) {
	if result.Deleted {
		utils.NoContentResponse(c)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Association did not exist", result)
}

func (h *AssociationHandler) AssociateDomain(c *gin.Context) {
	solutionID, domainID, err := h.solutionAndDimensionIDs(c, "domain_id", "domain")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.associateDomainUC.Execute(c.Request.Context(), usecases.AssociateDomainCommand{
		SolutionID: solutionID,
		DomainID:   domainID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.respondAssociate(c, result)
}

func (h *AssociationHandler) AssociateSector(c *gin.Context) {
	solutionID, sectorID, err := h.solutionAndDimensionIDs(c, "sector_id", "sector")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.associateSectorUC.Execute(c.Request.Context(), usecases.AssociateSectorCommand{
		SolutionID: solutionID,
		SectorID:   sectorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.respondAssociate(c, result)
}

func (h *AssociationHandler) AssociateDomainSector(c *gin.Context) {
	solutionID, domainID, err := h.solutionAndDimensionIDs(c, "domain_id", "domain")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sectorID, err := utils.ParseIDParam(c, "sector_id", "sector")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.associateDomainSectorUC.Execute(c.Request.Context(), usecases.AssociateDomainSectorCommand{
		SolutionID: solutionID,
		DomainID:   domainID,
		SectorID:   sectorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.respondAssociate(c, result)
}

func (h *AssociationHandler) AssociateTrait(c *gin.Context) {
	kind, err := parseTraitKind(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	solutionID, traitID, err := h.solutionAndDimensionIDs(c, "trait_id", "trait")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.associateTraitUC.Execute(c.Request.Context(), usecases.AssociateTraitCommand{
		Kind:       kind,
		SolutionID: solutionID,
		TraitID:    traitID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.respondAssociate(c, result)
}

// UpdateDomainLink edits the presentation snapshot stored on one
// (solution, domain) link. The solution itself is untouched.
func (h *AssociationHandler) UpdateDomainLink(c *gin.Context) {
	solutionID, domainID, err := h.solutionAndDimensionIDs(c, "domain_id", "domain")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateDomainLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update domain link", "solution_id", solutionID, "domain_id", domainID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.updateDomainLinkUC.Execute(c.Request.Context(), usecases.UpdateSolutionDomainCommand{
		SolutionID: solutionID,
		DomainID:   domainID,
		Update:     req.toUpdate(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Association updated successfully", nil)
}

func (h *AssociationHandler) UpdateSectorLink(c *gin.Context) {
	solutionID, sectorID, err := h.solutionAndDimensionIDs(c, "sector_id", "sector")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSectorLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update sector link", "solution_id", solutionID, "sector_id", sectorID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.updateSectorLinkUC.Execute(c.Request.Context(), usecases.UpdateSolutionSectorCommand{
		SolutionID: solutionID,
		SectorID:   sectorID,
		Update: catalogdomain.SectorLinkUpdate{
			AltDescription: req.AltDescription,
			AltText:        req.AltText,
		},
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Association updated successfully", nil)
}

func (h *AssociationHandler) UpdateDomainSectorLink(c *gin.Context) {
	solutionID, domainID, err := h.solutionAndDimensionIDs(c, "domain_id", "domain")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sectorID, err := utils.ParseIDParam(c, "sector_id", "sector")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateDomainLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update domain sector link",
			"solution_id", solutionID, "domain_id", domainID, "sector_id", sectorID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.updateTripleLinkUC.Execute(c.Request.Context(), usecases.UpdateSolutionDomainSectorCommand{
		SolutionID: solutionID,
		DomainID:   domainID,
		SectorID:   sectorID,
		Update:     req.toUpdate(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Association updated successfully", nil)
}

func (h *AssociationHandler) DisassociateDomain(c *gin.Context) {
	solutionID, domainID, err := h.solutionAndDimensionIDs(c, "domain_id", "domain")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.disassociateDomainUC.Execute(c.Request.Context(), solutionID, domainID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.respondDisassociate(c, result)
}

func (h *AssociationHandler) DisassociateSector(c *gin.Context) {
	solutionID, sectorID, err := h.solutionAndDimensionIDs(c, "sector_id", "sector")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.disassociateSectorUC.Execute(c.Request.Context(), solutionID, sectorID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.respondDisassociate(c, result)
}

func (h *AssociationHandler) DisassociateDomainSector(c *gin.Context) {
	solutionID, domainID, err := h.solutionAndDimensionIDs(c, "domain_id", "domain")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sectorID, err := utils.ParseIDParam(c, "sector_id", "sector")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.disassociateTripleUC.Execute(c.Request.Context(), solutionID, domainID, sectorID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.respondDisassociate(c, result)
}

func (h *AssociationHandler) DisassociateTrait(c *gin.Context) {
	kind, err := parseTraitKind(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	solutionID, traitID, err := h.solutionAndDimensionIDs(c, "trait_id", "trait")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.disassociateTraitUC.Execute(c.Request.Context(), kind, solutionID, traitID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.respondDisassociate(c, result)
}
