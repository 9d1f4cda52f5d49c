package richtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized_RendersMarkdown(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized("**bold** text")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestToHTMLSanitized_StripsScript(t *testing.T) {
	svc := NewService()

	out, err := svc.ToHTMLSanitized("hello <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
}

func TestSanitizeText_RemovesAllMarkup(t *testing.T) {
	svc := NewService()

	assert.Equal(t, "plain title", svc.SanitizeText("<b>plain</b> title"))
}
