package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	service := NewService()

	t.Run("renders basic markdown", func(t *testing.T) {
		html, err := service.ToHTMLSanitized("some **bold** text")

		require.NoError(t, err)
		assert.Contains(t, html, "<strong>bold</strong>")
	})

	t.Run("strips script tags", func(t *testing.T) {
		html, err := service.ToHTMLSanitized("hello <script>alert('xss')</script> world")

		require.NoError(t, err)
		assert.NotContains(t, html, "<script>")
		assert.NotContains(t, html, "alert")
	})

	t.Run("strips event handlers", func(t *testing.T) {
		html, err := service.ToHTMLSanitized(`<img src="x" onerror="alert(1)">`)

		require.NoError(t, err)
		assert.NotContains(t, html, "onerror")
	})

	t.Run("keeps links but neutralizes javascript URLs", func(t *testing.T) {
		html, err := service.ToHTMLSanitized("[click](javascript:alert(1))")

		require.NoError(t, err)
		assert.NotContains(t, html, "javascript:")
	})
}
