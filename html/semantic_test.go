package html_test

import (
	"testing"

	"github.com/pagemeta/pagemeta"
	pmhtml "github.com/pagemeta/pagemeta/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ pagemeta.Technique = (*pmhtml.Semantic)(nil)

func TestSemantic_Extract(t *testing.T) {
	t.Parallel()

	t.Run("collects headings by level, then paragraphs and images", func(t *testing.T) {
		t.Parallel()

		markup := `<!DOCTYPE html>
<html>
<body>
<h2>Secondary Heading</h2>
<h1>Primary Heading</h1>
<p>First paragraph of content.</p>
<img src="/inline.png" alt="inline"/>
<p>Second paragraph.</p>
</body>
</html>`

		technique := pmhtml.NewSemantic()
		candidates, err := technique.Extract(markup)

		require.NoError(t, err)
		assert.Equal(t, []string{"Primary Heading", "Secondary Heading"}, candidates[pagemeta.Titles])
		assert.Equal(t, []string{"First paragraph of content.", "Second paragraph."}, candidates[pagemeta.Descriptions])
		assert.Equal(t, []string{"/inline.png"}, candidates[pagemeta.Images])
	})

	t.Run("collapses whitespace and skips script text", func(t *testing.T) {
		t.Parallel()

		markup := `<html><body>
<h1>
  Spaced
  Heading
</h1>
<p>Text <script>ignored()</script> around code.</p>
</body></html>`

		technique := pmhtml.NewSemantic()
		candidates, err := technique.Extract(markup)

		require.NoError(t, err)
		assert.Equal(t, []string{"Spaced Heading"}, candidates[pagemeta.Titles])
		assert.Equal(t, []string{"Text around code."}, candidates[pagemeta.Descriptions])
	})

	t.Run("returns no candidates for empty body", func(t *testing.T) {
		t.Parallel()

		technique := pmhtml.NewSemantic()
		candidates, err := technique.Extract("<html><body></body></html>")

		require.NoError(t, err)
		assert.Empty(t, candidates)
	})
}
