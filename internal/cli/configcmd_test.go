package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/dailyreport/pkg/config"
)

func TestConfig_ShowsMergedConfig(t *testing.T) {
	dir := workspace(t)
	project := filepath.Join(dir, ".dailyreport.yml")
	require.NoError(t, os.WriteFile(project, []byte("slides: true\nslides_output: deck.pptx\n"), 0o644))
	t.Setenv("DAILYREPORT_BACKUPS", "true")

	stdout, _, err := execute(t, "config")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stdout, "# Effective dailyreport configuration\n"))
	assert.Contains(t, stdout, ".dailyreport.yml")

	cfg, err := config.FromYAML([]byte(stdout))
	require.NoError(t, err)
	assert.True(t, cfg.SlidesEnabled())
	assert.True(t, cfg.BackupsEnabled())
	assert.Equal(t, "deck.pptx", cfg.SlidesOutput)
	assert.Equal(t, config.ColorNever, cfg.Color, "--color on the command line wins")
}

func TestConfig_Env(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "config", "--env")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "DAILYREPORT_BACKUPS"))
	assert.Contains(t, stdout, "DAILYREPORT_SLIDES_OUTPUT")
}
