package siteindex_test

import (
	"testing"

	"github.com/fwojciec/siteindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNavNodes(t *testing.T) {
	t.Parallel()

	t.Run("extracts records from surrounding markup", func(t *testing.T) {
		t.Parallel()

		document := `<html><head><script src="dtree.js"></script></head>
<body>
<div class="dtree">
<script type="text/javascript">
d = new dTree('d');
d.add(0, -1, "Home", "");
d.add(1, 0, "Guides", "guides/intro.htm");
</script>
</div>
</body></html>`

		nodes := siteindex.ParseNavNodes(document)

		require.Len(t, nodes, 2)
		assert.Equal(t, siteindex.NavNode{ID: 0, ParentID: -1, Name: "Home", URL: ""}, nodes[0])
		assert.Equal(t, siteindex.NavNode{ID: 1, ParentID: 0, Name: "Guides", URL: "guides/intro.htm"}, nodes[1])
	})

	t.Run("tolerates irregular whitespace inside the call", func(t *testing.T) {
		t.Parallel()

		nodes := siteindex.ParseNavNodes(`d.add( 7 ,  -1 , "Root" , "root.htm" );`)

		require.Len(t, nodes, 1)
		assert.Equal(t, "Root", nodes[7].Name)
		assert.Equal(t, "root.htm", nodes[7].URL)
	})

	t.Run("ignores text that fails the pattern", func(t *testing.T) {
		t.Parallel()

		document := `d.add(1, 0, "ok", "a.htm");
d.add(not, a, record);
d.openAll();
some prose mentioning d.add without arguments`

		nodes := siteindex.ParseNavNodes(document)

		assert.Len(t, nodes, 1)
	})

	t.Run("duplicate ids are last-write-wins", func(t *testing.T) {
		t.Parallel()

		document := `d.add(1, -1, "First", "a.htm"); d.add(1, -1, "Second", "b.htm");`

		nodes := siteindex.ParseNavNodes(document)

		require.Len(t, nodes, 1)
		assert.Equal(t, "Second", nodes[1].Name)
	})
}

func TestBuildBreadcrumbs(t *testing.T) {
	t.Parallel()

	t.Run("resolves root-to-leaf paths", func(t *testing.T) {
		t.Parallel()

		document := `d.add(1, -1, "A", "");
d.add(2, 1, "B", "b.htm");
d.add(3, 2, "C", "c.htm");`

		crumbs := siteindex.BuildBreadcrumbs(document)

		require.Len(t, crumbs, 2)
		assert.Equal(t, "A → B", crumbs["b.htm"])
		assert.Equal(t, "A → B → C", crumbs["c.htm"])
	})

	t.Run("nodes with empty URLs contribute no mapping", func(t *testing.T) {
		t.Parallel()

		crumbs := siteindex.BuildBreadcrumbs(`d.add(1, -1, "A", "");`)

		assert.Empty(t, crumbs)
	})

	t.Run("unsaved placeholder pages contribute no mapping", func(t *testing.T) {
		t.Parallel()

		document := `d.add(1, -1, "A", "");
d.add(4, 1, "D", "$$unsavedpage1");`

		crumbs := siteindex.BuildBreadcrumbs(document)

		assert.Empty(t, crumbs)
	})

	t.Run("dangling parent id terminates the walk", func(t *testing.T) {
		t.Parallel()

		// Parent 99 was never registered; the node is its own root.
		crumbs := siteindex.BuildBreadcrumbs(`d.add(5, 99, "Orphan", "orphan.htm");`)

		require.Len(t, crumbs, 1)
		assert.Equal(t, "Orphan", crumbs["orphan.htm"])
	})

	t.Run("cyclic parent chain yields a partial path", func(t *testing.T) {
		t.Parallel()

		document := `d.add(1, 2, "A", "a.htm");
d.add(2, 1, "B", "");`

		crumbs := siteindex.BuildBreadcrumbs(document)

		require.Len(t, crumbs, 1)
		assert.Equal(t, "B → A", crumbs["a.htm"])
	})

	t.Run("empty document yields an empty mapping", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, siteindex.BuildBreadcrumbs(""))
	})
}
