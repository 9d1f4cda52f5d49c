package repository

import (
	"github.com/solvia-inc/solvia/internal/domain/catalog"
)

// presentationUpdateColumns maps the non-nil fields of a partial update onto
// the fixed allow-list of snapshot columns. Nothing outside this list can be
// touched by an update request.
func presentationUpdateColumns(u catalog.PresentationUpdate) map[string]interface{} {
	columns := make(map[string]interface{})
	set := func(name string, v *string) {
		if v != nil {
			columns[name] = *v
		}
	}

	set("title", u.Title)
	set("subtitle", u.Subtitle)
	set("description", u.Description)
	set("icon", u.Icon)
	set("cta_primary_text", u.CTAPrimaryText)
	set("cta_primary_link", u.CTAPrimaryLink)
	set("cta_secondary_text", u.CTASecondaryText)
	set("cta_secondary_link", u.CTASecondaryLink)
	set("problems_pragma", u.ProblemsPragma)
	set("problems_title", u.ProblemsTitle)
	set("features_pragma", u.FeaturesPragma)
	set("features_title", u.FeaturesTitle)
	set("benefits_pragma", u.BenefitsPragma)
	set("benefits_title", u.BenefitsTitle)

	return columns
}

// dimensionUpdateColumns maps a dimension partial update onto its allow-list.
func dimensionUpdateColumns(u catalog.DimensionUpdate) map[string]interface{} {
	columns := make(map[string]interface{})
	if u.Description != nil {
		columns["description"] = *u.Description
	}
	if u.WebText != nil {
		columns["textoweb"] = *u.WebText
	}
	if u.Prefix != nil {
		columns["prefijo"] = *u.Prefix
	}
	if u.Slug != nil {
		columns["slug"] = *u.Slug
	}
	return columns
}

// traitUpdateColumns maps a trait partial update onto its allow-list.
func traitUpdateColumns(u catalog.TraitUpdate) map[string]interface{} {
	columns := make(map[string]interface{})
	if u.Pragma != nil {
		columns["pragma"] = *u.Pragma
	}
	if u.Title != nil {
		columns["title"] = *u.Title
	}
	if u.Description != nil {
		columns["description"] = *u.Description
	}
	if u.Icon != nil {
		columns["icon"] = *u.Icon
	}
	return columns
}

// sectorLinkUpdateColumns maps a sector link partial update onto its allow-list.
func sectorLinkUpdateColumns(u catalog.SectorLinkUpdate) map[string]interface{} {
	columns := make(map[string]interface{})
	if u.AltDescription != nil {
		columns["descalternativa"] = *u.AltDescription
	}
	if u.AltText != nil {
		columns["textoalternativo"] = *u.AltText
	}
	return columns
}
