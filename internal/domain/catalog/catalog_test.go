package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSolution_Validation(t *testing.T) {
	_, err := NewSolution("", Presentation{Title: "T"}, nil)
	assert.Error(t, err)

	_, err = NewSolution("crm-suite", Presentation{}, nil)
	assert.Error(t, err)

	solution, err := NewSolution("crm-suite", Presentation{Title: "T"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "crm-suite", solution.Slug())
	assert.NotNil(t, solution.Multimedia())
}

func TestSolution_SetIDOnce(t *testing.T) {
	solution, err := NewSolution("crm-suite", Presentation{Title: "T"}, nil)
	require.NoError(t, err)

	require.NoError(t, solution.SetID(7))
	assert.Equal(t, uint(7), solution.ID())

	assert.Error(t, solution.SetID(8))
	assert.Error(t, solution.SetID(0))
}

func TestSolution_SetDimensionHighlight(t *testing.T) {
	solution, err := NewSolution("crm-suite", Presentation{Title: "T"}, nil)
	require.NoError(t, err)

	require.NoError(t, solution.SetDimensionHighlight(TraitBenefit, "fast", "Fast onboarding"))
	assert.Equal(t, "fast", solution.Presentation().BenefitsPragma)
	assert.Equal(t, "Fast onboarding", solution.Presentation().BenefitsTitle)

	// a later call for the same dimension overwrites the pair
	require.NoError(t, solution.SetDimensionHighlight(TraitBenefit, "cheap", "Low cost"))
	assert.Equal(t, "cheap", solution.Presentation().BenefitsPragma)

	require.NoError(t, solution.SetDimensionHighlight(TraitProblem, "manual", "Manual work"))
	assert.Equal(t, "manual", solution.Presentation().ProblemsPragma)
	assert.Equal(t, "cheap", solution.Presentation().BenefitsPragma)

	assert.Error(t, solution.SetDimensionHighlight(TraitKind("color"), "x", "y"))
}

func TestTraitKind_Valid(t *testing.T) {
	assert.True(t, TraitBenefit.Valid())
	assert.True(t, TraitFeature.Valid())
	assert.True(t, TraitProblem.Valid())
	assert.False(t, TraitKind("").Valid())
	assert.False(t, TraitKind("color").Valid())
}

func TestNewTrait_Validation(t *testing.T) {
	_, err := NewTrait(TraitKind("color"), "p", "T", "", "")
	assert.Error(t, err)

	_, err = NewTrait(TraitBenefit, "p", "", "", "")
	assert.Error(t, err)

	trait, err := NewTrait(TraitFeature, "dashboards", "Dashboards", "desc", "icon")
	require.NoError(t, err)
	assert.Equal(t, TraitFeature, trait.Kind())
	assert.Equal(t, "dashboards", trait.Pragma())
}

func TestNewDomain_Validation(t *testing.T) {
	_, err := NewDomain("", "", "", "slug")
	assert.Error(t, err)

	_, err = NewDomain("Healthcare", "", "", "")
	assert.Error(t, err)

	domain, err := NewDomain("Healthcare", "web", "hc", "healthcare")
	require.NoError(t, err)
	assert.Equal(t, "healthcare", domain.Slug())
	require.NoError(t, domain.SetID(3))
	assert.Error(t, domain.SetID(4))
}

func TestPresentationUpdate_IsEmpty(t *testing.T) {
	assert.True(t, PresentationUpdate{}.IsEmpty())

	title := "T"
	assert.False(t, PresentationUpdate{Title: &title}.IsEmpty())
	assert.False(t, PresentationUpdate{BenefitsPragma: &title}.IsEmpty())

	assert.True(t, SectorLinkUpdate{}.IsEmpty())
	assert.False(t, SectorLinkUpdate{AltText: &title}.IsEmpty())
}
