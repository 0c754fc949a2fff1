package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/dailyreport/pkg/config"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.False(t, cfg.MarkdownEnabled())
	assert.False(t, cfg.SlidesEnabled())
	assert.False(t, cfg.BackupsEnabled())
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestConfig_Accessors_Nil(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{}
	assert.False(t, cfg.MarkdownEnabled())
	assert.False(t, cfg.SlidesEnabled())
	assert.False(t, cfg.BackupsEnabled())
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	t.Run("all fields", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML([]byte(`
markdown: true
markdown_output: out/report.md
html_output: out/report.html
slides: true
slides_output: out/report.pptx
backups: false
color: never
log_level: debug
`))
		require.NoError(t, err)

		assert.True(t, cfg.MarkdownEnabled())
		assert.Equal(t, "out/report.md", cfg.MarkdownOutput)
		assert.Equal(t, "out/report.html", cfg.HTMLOutput)
		assert.True(t, cfg.SlidesEnabled())
		assert.Equal(t, "out/report.pptx", cfg.SlidesOutput)
		require.NotNil(t, cfg.Backups)
		assert.False(t, *cfg.Backups)
		assert.Equal(t, config.ColorNever, cfg.Color)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("unset booleans stay nil", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML([]byte("color: always\n"))
		require.NoError(t, err)
		assert.Nil(t, cfg.Slides)
		assert.Nil(t, cfg.Markdown)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.FromYAML([]byte("\n"))
		require.NoError(t, err)
		assert.Equal(t, &config.Config{}, cfg)
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()

		_, err := config.FromYAML([]byte("flavor: gfm\n"))
		require.Error(t, err)
	})
}

func TestConfig_ToYAML(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Slides:       config.Bool(true),
		SlidesOutput: "deck.pptx",
		Input:        "report.json",
	}

	out, err := cfg.ToYAML()
	require.NoError(t, err)
	assert.Equal(t, "slides: true\nslides_output: deck.pptx\n", string(out))

	var nilCfg *config.Config
	out, err = nilCfg.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestConfig_ToYAMLWithHeader(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Color: config.ColorNever}

	out, err := cfg.ToYAMLWithHeader("# generated")
	require.NoError(t, err)
	assert.Equal(t, "# generated\n\ncolor: never\n", string(out))
}

func TestConfigClone(t *testing.T) {
	t.Parallel()

	t.Run("nil config returns nil", func(t *testing.T) {
		t.Parallel()

		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies booleans", func(t *testing.T) {
		t.Parallel()

		original := config.NewConfig()
		original.Input = "report.yaml"

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.Equal(t, original, clone)

		*clone.Slides = true
		assert.False(t, original.SlidesEnabled())
	})
}

func TestColorMode_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.ColorAuto.IsValid())
	assert.True(t, config.ColorAlways.IsValid())
	assert.True(t, config.ColorNever.IsValid())
	assert.False(t, config.ColorMode("sometimes").IsValid())
	assert.False(t, config.ColorMode("").IsValid())
}

func TestIsValidLogLevel(t *testing.T) {
	t.Parallel()

	assert.True(t, config.IsValidLogLevel("DEBUG"))
	assert.True(t, config.IsValidLogLevel("warning"))
	assert.False(t, config.IsValidLogLevel("trace"))
}

func TestGenerateTemplate(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML(config.GenerateTemplate())
	require.NoError(t, err)

	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Nil(t, cfg.Slides)
}

func TestFromYAML_CommentsOnly(t *testing.T) {
	t.Parallel()

	cfg, err := config.FromYAML([]byte("# nothing here\n# slides: true\n"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Slides)
}
