package gruntfile_test

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stitch/internal/adapters/gruntfile"
	"go.trai.ch/stitch/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func siteConfiguration() *domain.Configuration {
	cfg := domain.NewConfiguration("site")
	cfg.SetPath("asset", "resources/assets").
		SetPath("js", "{asset}/js").
		SetPath("scss", "{asset}/scss").
		SetPath("build", "public/build").
		SetPath("view", "resources/views")

	cfg.AddGroup("lib", domain.Paths("jquery/jquery.js", "d3/d3.js"), domain.GroupOptions{
		Directory:  "{js}/lib",
		OutputFile: "{build}/lib.js",
	})
	cfg.AddGroup("src", domain.Paths("main.js"), domain.GroupOptions{
		Directory:  "{js}/src",
		OutputFile: "{build}/src.js",
	})
	cfg.AddGroup("css", domain.Paths("app.css"), domain.GroupOptions{
		Directory:  "{build}",
		OutputFile: "{build}/app.css",
	})
	cfg.AddGroup("jsx", domain.Paths("App.jsx"), domain.GroupOptions{Directory: "{js}/components"})
	cfg.AddTask("concat:lib", "clean")
	return cfg
}

func TestEmitter_Emit(t *testing.T) {
	doc, err := gruntfile.NewEmitter().Emit(siteConfiguration())
	require.NoError(t, err)

	assert.Equal(t, "site", doc.Configuration)

	concat, ok := doc.Config["concat"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"separator": ";\n"}, concat["options"])
	assert.Equal(t, domain.SourceDest{
		Dest: "public/build/lib.js",
		Src:  []string{"resources/assets/js/lib/jquery/jquery.js", "resources/assets/js/lib/d3/d3.js"},
	}, concat["lib"])
	assert.Equal(t, domain.SourceDest{
		Dest: "public/build/src.js",
		Src:  []string{"resources/assets/js/src/main.js"},
	}, concat["src"])

	assert.Equal(t, []string{
		"concat:lib", "clean", "concat:src", "compass", "autoprefixer", "react:src",
	}, doc.Tasks["default"])
	assert.Equal(t, []string{"uglify:lib", "uglify:src", "cssmin"}, doc.Tasks["production"])

	for _, section := range []string{"compass", "watch", "autoprefixer", "react", "uglify", "cssmin"} {
		assert.Contains(t, doc.Config, section)
	}
}

func TestEmitter_Emit_Projections(t *testing.T) {
	doc, err := gruntfile.NewEmitter().Emit(siteConfiguration())
	require.NoError(t, err)

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded struct {
		Config struct {
			Compass struct {
				Dist struct {
					Options map[string]string `json:"options"`
				} `json:"dist"`
			} `json:"compass"`
			Watch map[string]struct {
				Files   []string `json:"files"`
				Tasks   []string `json:"tasks"`
				Options struct {
					Livereload bool `json:"livereload"`
				} `json:"options"`
			} `json:"watch"`
			React struct {
				Src struct {
					Files map[string]string `json:"files"`
				} `json:"src"`
			} `json:"react"`
			Uglify map[string]struct {
				Files map[string]string `json:"files"`
			} `json:"uglify"`
			Cssmin struct {
				Src struct {
					Files map[string][]string `json:"files"`
				} `json:"src"`
			} `json:"cssmin"`
			Autoprefixer struct {
				CSS struct {
					Files map[string][]string `json:"files"`
				} `json:"css"`
			} `json:"autoprefixer"`
		} `json:"config"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, map[string]string{
		"sassDir": "resources/assets/scss",
		"cssDir":  "public/build",
	}, decoded.Config.Compass.Dist.Options)

	assert.Equal(t, []string{"resources/assets/scss/**/*.scss"}, decoded.Config.Watch["scss"].Files)
	assert.Equal(t, []string{"compass"}, decoded.Config.Watch["scss"].Tasks)
	assert.Equal(t, []string{"resources/views/**/*.php"}, decoded.Config.Watch["view"].Files)
	assert.Empty(t, decoded.Config.Watch["view"].Tasks)
	assert.Equal(t, []string{"concat:src"}, decoded.Config.Watch["scripts"].Tasks)
	assert.Equal(t, []string{"resources/assets/js/components/App.jsx"}, decoded.Config.Watch["react"].Files)
	for name, target := range decoded.Config.Watch {
		assert.True(t, target.Options.Livereload, name)
	}

	assert.Equal(t, map[string]string{
		"resources/assets/js/components/App.js": "resources/assets/js/components/App.jsx",
	}, decoded.Config.React.Src.Files)

	assert.Equal(t, map[string]string{"public/build/lib.min.js": "public/build/lib.js"}, decoded.Config.Uglify["lib"].Files)
	assert.Equal(t, map[string]string{"public/build/src.min.js": "public/build/src.js"}, decoded.Config.Uglify["src"].Files)

	assert.Equal(t, map[string][]string{
		"public/build/app.min.css": {"public/build/app.css"},
	}, decoded.Config.Cssmin.Src.Files)
	assert.Equal(t, map[string][]string{
		"public/build/app.css": {"public/build/app.css"},
	}, decoded.Config.Autoprefixer.CSS.Files)
}

func TestEmitter_Emit_Minimal(t *testing.T) {
	cfg := domain.NewConfiguration("bare")
	cfg.AddGroup("lib", domain.Paths("a.js"), domain.GroupOptions{})
	cfg.AddTask("lint")

	doc, err := gruntfile.NewEmitter().Emit(cfg)
	require.NoError(t, err)

	assert.Empty(t, doc.Config)
	assert.Equal(t, []string{"lint"}, doc.Tasks["default"])
	assert.Empty(t, doc.Tasks["production"])
}

func TestEmitter_Encode(t *testing.T) {
	e := gruntfile.NewEmitter()
	doc, err := e.Emit(siteConfiguration())
	require.NoError(t, err)

	t.Run("json", func(t *testing.T) {
		data, err := e.Encode(doc, domain.FormatJSON)
		require.NoError(t, err)
		assert.True(t, json.Valid(data))
		assert.Contains(t, string(data), `"configuration": "site"`)
		assert.Equal(t, byte('\n'), data[len(data)-1])
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := e.Encode(doc, domain.FormatYAML)
		require.NoError(t, err)

		var decoded domain.Document
		require.NoError(t, yaml.Unmarshal(data, &decoded))
		assert.Equal(t, "site", decoded.Configuration)
		assert.Equal(t, doc.Tasks, decoded.Tasks)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := e.Encode(doc, domain.Format("xml"))
		require.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})
}

func TestEmitter_Encode_Golden(t *testing.T) {
	e := gruntfile.NewEmitter()
	doc, err := e.Emit(siteConfiguration())
	require.NoError(t, err)

	data, err := e.Encode(doc, domain.FormatJSON)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "site.json", data)
}
