package pagemeta_test

import (
	"testing"

	"github.com/pagemeta/pagemeta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_First(t *testing.T) {
	t.Parallel()

	t.Run("returns first candidate in list order", func(t *testing.T) {
		t.Parallel()

		result := pagemeta.NewResult("", pagemeta.Candidates{
			pagemeta.Titles: {"first", "second"},
		}, pagemeta.DefaultSingular())

		got, ok := result.First(pagemeta.Titles)

		require.True(t, ok)
		assert.Equal(t, "first", got)
	})

	t.Run("reports absence for empty category", func(t *testing.T) {
		t.Parallel()

		result := pagemeta.NewResult("", pagemeta.Candidates{}, pagemeta.DefaultSingular())

		got, ok := result.First(pagemeta.Titles)

		assert.False(t, ok)
		assert.Empty(t, got)
	})
}

func TestResult_SingularAccessors(t *testing.T) {
	t.Parallel()

	t.Run("named accessors read the default singular categories", func(t *testing.T) {
		t.Parallel()

		result := pagemeta.NewResult("", pagemeta.Candidates{
			pagemeta.Titles:       {"Something"},
			pagemeta.Descriptions: {"Something amazing."},
		}, pagemeta.DefaultSingular())

		title, ok := result.Title()
		require.True(t, ok)
		assert.Equal(t, "Something", title)

		description, ok := result.Description()
		require.True(t, ok)
		assert.Equal(t, "Something amazing.", description)

		_, ok = result.Image()
		assert.False(t, ok)

		_, ok = result.URL()
		assert.False(t, ok)
	})

	t.Run("custom singular accessor reads its configured category", func(t *testing.T) {
		t.Parallel()

		singular := pagemeta.DefaultSingular()
		singular["date"] = pagemeta.Dates

		result := pagemeta.NewResult("", pagemeta.Candidates{
			pagemeta.Dates: {"2024-01-02"},
		}, singular)

		got, ok := result.Singular("date")

		require.True(t, ok)
		assert.Equal(t, "2024-01-02", got)
	})

	t.Run("unconfigured accessor name reports absence", func(t *testing.T) {
		t.Parallel()

		result := pagemeta.NewResult("", pagemeta.Candidates{
			pagemeta.Category("tags"): {"go", "extraction"},
		}, pagemeta.DefaultSingular())

		_, ok := result.Singular("tag")

		assert.False(t, ok)
	})
}

func TestResult_All(t *testing.T) {
	t.Parallel()

	t.Run("returns full list for categories outside the built-in schema", func(t *testing.T) {
		t.Parallel()

		result := pagemeta.NewResult("", pagemeta.Candidates{
			pagemeta.Category("tags"): {"go", "extraction"},
		}, pagemeta.DefaultSingular())

		assert.Equal(t, []string{"go", "extraction"}, result.All(pagemeta.Category("tags")))
	})

	t.Run("returns empty list for missing category", func(t *testing.T) {
		t.Parallel()

		result := pagemeta.NewResult("", pagemeta.Candidates{}, nil)

		assert.Empty(t, result.All(pagemeta.Images))
	})

	t.Run("mutating the returned slice does not change the result", func(t *testing.T) {
		t.Parallel()

		result := pagemeta.NewResult("", pagemeta.Candidates{
			pagemeta.Titles: {"original"},
		}, nil)

		values := result.All(pagemeta.Titles)
		values[0] = "mutated"

		got, ok := result.First(pagemeta.Titles)
		require.True(t, ok)
		assert.Equal(t, "original", got)
	})
}

func TestNewResult_CopiesInputs(t *testing.T) {
	t.Parallel()

	candidates := pagemeta.Candidates{
		pagemeta.Titles: {"original"},
	}
	result := pagemeta.NewResult("http://example.org/", candidates, pagemeta.DefaultSingular())

	candidates[pagemeta.Titles][0] = "mutated"
	candidates.Add(pagemeta.Images, "/late.png")

	got, ok := result.First(pagemeta.Titles)
	require.True(t, ok)
	assert.Equal(t, "original", got)
	assert.Empty(t, result.All(pagemeta.Images))
	assert.Equal(t, "http://example.org/", result.SourceURL())
}

func TestResult_Categories(t *testing.T) {
	t.Parallel()

	t.Run("returns sorted non-empty categories", func(t *testing.T) {
		t.Parallel()

		result := pagemeta.NewResult("", pagemeta.Candidates{
			pagemeta.URLs:   {"http://example.org/"},
			pagemeta.Titles: {"Something"},
			pagemeta.Images: nil,
		}, nil)

		assert.Equal(t, []pagemeta.Category{pagemeta.Titles, pagemeta.URLs}, result.Categories())
	})
}

func TestCandidates_Add(t *testing.T) {
	t.Parallel()

	candidates := make(pagemeta.Candidates)
	candidates.Add(pagemeta.Titles, "one")
	candidates.Add(pagemeta.Titles, "two", "two")

	assert.Equal(t, []string{"one", "two", "two"}, candidates[pagemeta.Titles])
}
