package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/core/domain"
)

func TestConfiguration_SetPathIsEager(t *testing.T) {
	c := domain.NewConfiguration("site").
		SetPath("asset", "resources/assets").
		SetPath("js", "{asset}/js").
		SetPath("early", "{late}/x").
		SetPath("late", "public")

	js, ok := c.Path("js")
	require.True(t, ok)
	assert.Equal(t, "resources/assets/js", js)

	early, _ := c.Path("early")
	assert.Equal(t, "{late}/x", early)

	c.SetPath("asset", "elsewhere")
	js, _ = c.Path("js")
	assert.Equal(t, "resources/assets/js", js)

	_, ok = c.Path("missing")
	assert.False(t, ok)

	assert.Equal(t, []domain.NamedPath{
		{Name: "asset", Value: "elsewhere"},
		{Name: "js", Value: "resources/assets/js"},
		{Name: "early", Value: "{late}/x"},
		{Name: "late", Value: "public"},
	}, c.Paths())
}

func TestConfiguration_AddGroup(t *testing.T) {
	c := domain.NewConfiguration("site").
		SetPath("lib", "resources/assets/lib").
		SetPath("build", "public/build")

	c.AddGroup("lib", domain.Paths("jquery/jquery.js", "d3/d3.js"), domain.GroupOptions{
		Directory:  "{lib}",
		OutputFile: "{build}/lib.js",
	})

	g, ok := c.Group("lib")
	require.True(t, ok)
	assert.Equal(t, "lib", g.Name)

	sd, err := g.SourceDestMap()
	require.NoError(t, err)
	assert.Equal(t, "public/build/lib.js", sd.Dest)
	assert.Equal(t, []string{
		"resources/assets/lib/jquery/jquery.js",
		"resources/assets/lib/d3/d3.js",
	}, sd.Src)
}

func TestConfiguration_AddGroupEmptyOutputTemplate(t *testing.T) {
	c := domain.NewConfiguration("site").SetPath("out", "")
	c.AddGroup("src", domain.Paths("a.js"), domain.GroupOptions{OutputFile: "{out}"})

	g, err := c.MustGroup("src")
	require.NoError(t, err)
	assert.False(t, g.HasOutputFile())

	_, err = g.SourceDestMap()
	require.ErrorIs(t, err, domain.ErrMissingOutputFile)
}

func TestConfiguration_AddGroupAccumulates(t *testing.T) {
	c := domain.NewConfiguration("site")
	c.AddGroup("src", domain.Paths("a.js"), domain.GroupOptions{})
	c.AddGroup("src", domain.Paths("b.js"), domain.GroupOptions{})

	g, _ := c.Group("src")
	assert.Equal(t, []string{"a.js", "b.js"}, g.List())
	assert.Equal(t, []string{"src"}, c.Groups())
}

func TestConfiguration_AddGroupWithoutFiles(t *testing.T) {
	c := domain.NewConfiguration("site")
	c.AddGroup("src", nil, domain.GroupOptions{OutputFile: "x.js"})

	_, ok := c.Group("src")
	assert.False(t, ok)

	_, err := c.MustGroup("src")
	require.ErrorIs(t, err, domain.ErrGroupNotFound)
}

func TestConfiguration_HasGroup(t *testing.T) {
	c := domain.NewConfiguration("site")
	c.AddGroup("css", domain.Paths("base.css"), domain.GroupOptions{})

	assert.True(t, c.HasGroup("css"))
	assert.False(t, c.HasGroup("jsx"))
}

func TestConfiguration_OutputFiles(t *testing.T) {
	c := domain.NewConfiguration("site")
	c.AddGroup("lib", domain.Paths("a.js"), domain.GroupOptions{OutputFile: "build/lib.js"})
	c.AddGroup("jsx", domain.Paths("app.jsx"), domain.GroupOptions{})
	c.AddGroup("src", domain.Paths("b.js"), domain.GroupOptions{OutputFile: "build/src.js"})

	out := c.OutputFiles()
	assert.Equal(t, []string{"build/lib.js", "build/src.js"}, out.List())

	out.SetDirectory("elsewhere", false)
	g, _ := c.Group("lib")
	f, _ := g.OutputFile()
	assert.Equal(t, "build/lib.js", f.Path())
}

func TestConfiguration_Tasks(t *testing.T) {
	c := domain.NewConfiguration("site").
		AddTask("build").
		AddTask("build").
		AddTask("concat:lib", "build")

	assert.Equal(t, []string{"build", "concat:lib"}, c.Tasks())
}

func TestConfiguration_UsePaths(t *testing.T) {
	base := domain.NewConfiguration("base").
		SetPath("asset", "resources/assets").
		SetPath("build", "public/build")

	all := domain.NewConfiguration("all").UsePaths(base)
	assert.Equal(t, base.Paths(), all.Paths())

	some := domain.NewConfiguration("some").UsePaths(base, "build", "missing")
	assert.Equal(t, []domain.NamedPath{{Name: "build", Value: "public/build"}}, some.Paths())
}
