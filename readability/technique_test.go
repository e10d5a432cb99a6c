package readability_test

import (
	"testing"

	"github.com/pagemeta/pagemeta"
	"github.com/pagemeta/pagemeta/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Technique implements pagemeta.Technique at compile time.
var _ pagemeta.Technique = (*readability.Technique)(nil)

func TestTechnique_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts article title and metadata", func(t *testing.T) {
		t.Parallel()

		markup := `<!DOCTYPE html>
<html>
<head>
<title>Release Notes</title>
<meta property="og:image" content="http://example.org/lead.png">
<meta name="author" content="Jane Doe">
</head>
<body>
<article>
<h1>Release Notes</h1>
<p>The release introduces a number of improvements to the extraction
pipeline, including better handling of malformed documents and new
candidate categories for downstream consumers.</p>
</article>
</body>
</html>`

		technique := readability.New()
		candidates, err := technique.Extract(markup)

		require.NoError(t, err)
		titles := candidates[pagemeta.Titles]
		require.NotEmpty(t, titles)
		assert.Equal(t, "Release Notes", titles[0])
		assert.Equal(t, []string{"http://example.org/lead.png"}, candidates[pagemeta.Images])
	})

	t.Run("omits categories the article does not carry", func(t *testing.T) {
		t.Parallel()

		markup := `<html><head><title>Plain</title></head>
<body><p>A short page with nothing but a paragraph.</p></body></html>`

		technique := readability.New()
		candidates, err := technique.Extract(markup)

		require.NoError(t, err)
		assert.Empty(t, candidates[pagemeta.Sitenames])
	})
}
