package config

// TemplateHeader opens every generated config file.
const TemplateHeader = `# dailyreport configuration
# Project files (.dailyreport.yml) override the user config in
# $XDG_CONFIG_HOME/dailyreport/config.yaml. DAILYREPORT_* environment
# variables and command-line flags override both.`

const templateBody = `
# Always print the Markdown report, even when other outputs are enabled.
# markdown: false

# Write Markdown to a file instead of stdout.
# markdown_output: daily-report.md

# Also export the Markdown report as an HTML fragment.
# html_output: daily-report.html

# Build a .pptx slide deck.
# slides: false

# Slide deck path (requires slides: true). Defaults to
# daily-report-<date>.pptx in the working directory.
# slides_output: daily-report.pptx

# Keep the previous version of each output file as <file>.bak.
# backups: false

# Terminal colors: auto, always or never.
color: auto

# Log level: debug, info, warn or error.
log_level: info
`

// GenerateTemplate returns a commented configuration file.
func GenerateTemplate() []byte {
	return []byte(TemplateHeader + "\n" + templateBody)
}
