package bloom_test

import (
	"testing"

	"github.com/fwojciec/docsite/bloom"
	"github.com/stretchr/testify/assert"
)

func TestTrigramFilter_MayContain(t *testing.T) {
	t.Parallel()

	t.Run("substrings of the text pass", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewTrigramFilter("Install the dependencies before running setup.")

		assert.True(t, f.MayContain("install"))
		assert.True(t, f.MayContain("dependencies"))
		assert.True(t, f.MayContain("running setup"))
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewTrigramFilter("Install the dependencies.")

		assert.True(t, f.MayContain("INSTALL"))
	})

	t.Run("absent terms are rejected", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewTrigramFilter("a short body about navigation trees")

		assert.False(t, f.MayContain("kubernetes"))
	})

	t.Run("queries shorter than a trigram always pass", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewTrigramFilter("text")

		assert.True(t, f.MayContain("zz"))
		assert.True(t, f.MayContain(""))
	})

	t.Run("handles empty text", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewTrigramFilter("")

		assert.False(t, f.MayContain("anything"))
		assert.True(t, f.MayContain("an"))
	})
}
