package docsite_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/docsite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guidesTree() []*docsite.NavNode {
	return []*docsite.NavNode{
		{
			Label: "Guides",
			Children: []*docsite.NavNode{
				{Label: "Setup", Route: "guides/setup"},
				{
					Label: "Advanced",
					Children: []*docsite.NavNode{
						{Label: "Tuning", Route: "guides/advanced/tuning"},
					},
				},
			},
		},
		{
			Label: "Reference",
			Children: []*docsite.NavNode{
				{Label: "API", Route: "reference/api"},
			},
		},
	}
}

func TestNavTree_Load(t *testing.T) {
	t.Parallel()

	t.Run("all folders start collapsed", func(t *testing.T) {
		t.Parallel()

		tree := docsite.NewNavTree()
		tree.Load(guidesTree())

		for _, root := range tree.Roots() {
			assert.False(t, root.Expanded)
		}
	})

	t.Run("ancestors of the active route start expanded", func(t *testing.T) {
		t.Parallel()

		tree := docsite.NewNavTree()
		tree.SetActiveRoute("guides/advanced/tuning")
		tree.Load(guidesTree())

		roots := tree.Roots()
		assert.True(t, roots[0].Expanded)              // Guides
		assert.True(t, roots[0].Children[1].Expanded)  // Advanced
		assert.False(t, roots[1].Expanded)             // Reference
	})
}

func TestNavTree_SetActiveRoute(t *testing.T) {
	t.Parallel()

	t.Run("expands the ancestor chain", func(t *testing.T) {
		t.Parallel()

		tree := docsite.NewNavTree()
		tree.Load(guidesTree())

		tree.SetActiveRoute("guides/setup")

		roots := tree.Roots()
		assert.True(t, roots[0].Expanded)
		assert.False(t, roots[0].Children[1].Expanded)
		assert.False(t, roots[1].Expanded)
	})

	t.Run("leaves unrelated folders as the user set them", func(t *testing.T) {
		t.Parallel()

		tree := docsite.NewNavTree()
		tree.Load(guidesTree())
		tree.Toggle(tree.Roots()[1]) // user opens Reference

		tree.SetActiveRoute("guides/setup")

		assert.True(t, tree.Roots()[1].Expanded)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		tree := docsite.NewNavTree()
		tree.Load(guidesTree())

		tree.SetActiveRoute("guides/advanced/tuning")
		tree.SetActiveRoute("guides/advanced/tuning")

		roots := tree.Roots()
		assert.True(t, roots[0].Expanded)
		assert.True(t, roots[0].Children[1].Expanded)
	})

	t.Run("first leaf wins for duplicate routes", func(t *testing.T) {
		t.Parallel()

		tree := docsite.NewNavTree()
		tree.Load([]*docsite.NavNode{
			{Label: "A", Children: []*docsite.NavNode{{Label: "One", Route: "dup"}}},
			{Label: "B", Children: []*docsite.NavNode{{Label: "Two", Route: "dup"}}},
		})

		tree.SetActiveRoute("dup")

		assert.True(t, tree.Roots()[0].Expanded)
		assert.False(t, tree.Roots()[1].Expanded)
	})
}

func TestNavTree_Toggle(t *testing.T) {
	t.Parallel()

	t.Run("flips exactly one folder", func(t *testing.T) {
		t.Parallel()

		tree := docsite.NewNavTree()
		tree.Load(guidesTree())
		guides := tree.Roots()[0]

		tree.Toggle(guides)

		assert.True(t, guides.Expanded)
		assert.False(t, guides.Children[1].Expanded)
		assert.False(t, tree.Roots()[1].Expanded)

		tree.Toggle(guides)
		assert.False(t, guides.Expanded)
	})

	t.Run("is a no-op on leaves", func(t *testing.T) {
		t.Parallel()

		tree := docsite.NewNavTree()
		tree.Load(guidesTree())
		leaf := tree.Roots()[0].Children[0]

		tree.Toggle(leaf)

		assert.False(t, leaf.Expanded)
	})

	t.Run("folders toggle independently", func(t *testing.T) {
		t.Parallel()

		tree := docsite.NewNavTree()
		tree.Load(guidesTree())

		tree.Toggle(tree.Roots()[0])
		tree.Toggle(tree.Roots()[1])

		assert.True(t, tree.Roots()[0].Expanded)
		assert.True(t, tree.Roots()[1].Expanded)
	})
}

func TestNavTree_HasActiveChild(t *testing.T) {
	t.Parallel()

	t.Run("true for every real ancestor of the active leaf", func(t *testing.T) {
		t.Parallel()

		tree := docsite.NewNavTree()
		tree.Load(guidesTree())
		tree.SetActiveRoute("guides/advanced/tuning")

		guides := tree.Roots()[0]
		assert.True(t, tree.HasActiveChild(guides))
		assert.True(t, tree.HasActiveChild(guides.Children[1]))
		assert.False(t, tree.HasActiveChild(tree.Roots()[1]))
	})

	t.Run("does not mutate expansion state", func(t *testing.T) {
		t.Parallel()

		tree := docsite.NewNavTree()
		tree.Load(guidesTree())
		tree.SetActiveRoute("guides/setup")
		advanced := tree.Roots()[0].Children[1]

		tree.HasActiveChild(advanced)

		assert.False(t, advanced.Expanded)
	})

	t.Run("false when nothing is active", func(t *testing.T) {
		t.Parallel()

		tree := docsite.NewNavTree()
		tree.Load(guidesTree())

		assert.False(t, tree.HasActiveChild(tree.Roots()[0]))
	})
}

func TestNavTree_Leaves(t *testing.T) {
	t.Parallel()

	tree := docsite.NewNavTree()
	tree.Load(guidesTree())

	leaves := tree.Leaves()

	require.Len(t, leaves, 3)
	assert.Equal(t, "guides/setup", leaves[0].Route)
	assert.Equal(t, "guides/advanced/tuning", leaves[1].Route)
	assert.Equal(t, "reference/api", leaves[2].Route)
}

func TestNavTree_Breadcrumb(t *testing.T) {
	t.Parallel()

	tree := docsite.NewNavTree()
	tree.Load(guidesTree())

	assert.Equal(t, []string{"Guides", "Advanced"}, tree.Breadcrumb("guides/advanced/tuning"))
	assert.Equal(t, []string{"Guides"}, tree.Breadcrumb("guides/setup"))
	assert.Nil(t, tree.Breadcrumb("missing"))
}

func TestNavTree_Subscribe(t *testing.T) {
	t.Parallel()

	tree := docsite.NewNavTree()
	tree.Load(guidesTree())

	var calls int
	unsubscribe := tree.Subscribe(func() { calls++ })

	tree.SetActiveRoute("guides/setup")
	tree.Toggle(tree.Roots()[1])
	assert.Equal(t, 2, calls)

	unsubscribe()
	tree.SetActiveRoute("reference/api")
	assert.Equal(t, 2, calls)
}

func TestDecodeNav(t *testing.T) {
	t.Parallel()

	t.Run("decodes a navigation tree", func(t *testing.T) {
		t.Parallel()

		nodes, err := docsite.DecodeNav(strings.NewReader(
			`[{"label":"Guides","children":[{"label":"Setup","route":"guides/setup"}]}]`,
		))

		require.NoError(t, err)
		require.Len(t, nodes, 1)
		assert.Equal(t, "Guides", nodes[0].Label)
		require.Len(t, nodes[0].Children, 1)
		assert.Equal(t, "guides/setup", nodes[0].Children[0].Route)
	})

	t.Run("malformed input returns EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := docsite.DecodeNav(strings.NewReader(`{"not":"a tree"`))

		assert.Equal(t, docsite.EINVALID, docsite.ErrorCode(err))
	})
}
