// Package config loads the codepdf configuration: embedded defaults,
// an optional config.toml, and CODEPDF_* environment overrides, merged
// in that order. The result is an explicit Config value handed to each
// component; there is no ambient global configuration.
package config

// Config is the complete configuration for one document build.
type Config struct {
	CodeFolder   string `koanf:"code_folder" toml:"code_folder"`
	OutputFolder string `koanf:"output_folder" toml:"output_folder"`
	IgnoreFile   string `koanf:"ignore_file" toml:"ignore_file"`

	Defaults   Defaults   `koanf:"defaults" toml:"defaults"`
	Layout     Layout     `koanf:"layout" toml:"layout"`
	Fonts      Fonts      `koanf:"fonts" toml:"fonts"`
	Pagination Pagination `koanf:"pagination" toml:"pagination"`
	AI         AI         `koanf:"ai" toml:"ai"`
}

// Defaults are the per-run values the CLI flags override.
type Defaults struct {
	Title        string `koanf:"title" toml:"title"`
	Filename     string `koanf:"filename" toml:"filename"`
	Pages        int    `koanf:"pages" toml:"pages"`
	UpdateIgnore bool   `koanf:"update_ignore" toml:"update_ignore"`
}

// Layout controls page geometry and line wrapping.
type Layout struct {
	PageSize           string  `koanf:"page_size" toml:"page_size"`
	MaxChars           int     `koanf:"max_chars" toml:"max_chars"`
	ContinuationIndent int     `koanf:"continuation_indent" toml:"continuation_indent"`
	Margins            Margins `koanf:"margins" toml:"margins"`
}

// Margins are page margins in points.
type Margins struct {
	Left   float64 `koanf:"left" toml:"left"`
	Right  float64 `koanf:"right" toml:"right"`
	Top    float64 `koanf:"top" toml:"top"`
	Bottom float64 `koanf:"bottom" toml:"bottom"`
}

// Font describes one font role in the document.
type Font struct {
	Family    string  `koanf:"family" toml:"family"`
	Size      float64 `koanf:"size" toml:"size"`
	Alignment string  `koanf:"alignment" toml:"alignment"`
}

// Fonts holds the three font roles.
type Fonts struct {
	Title    Font `koanf:"title" toml:"title"`
	FilePath Font `koanf:"file_path" toml:"file_path"`
	Code     Font `koanf:"code" toml:"code"`
}

// Pagination holds the estimator heuristics.
type Pagination struct {
	SkipThresholdPages int `koanf:"skip_threshold_pages" toml:"skip_threshold_pages"`
}

// AI configures the optional summarization call.
type AI struct {
	EnableAISummary bool    `koanf:"enable_ai_summary" toml:"enable_ai_summary"`
	Model           string  `koanf:"model" toml:"model"`
	MaxTokens       int     `koanf:"max_tokens" toml:"max_tokens"`
	Temperature     float64 `koanf:"temperature" toml:"temperature"`
	AnthropicAPIKey string  `koanf:"anthropic_api_key" toml:"anthropic_api_key"`
}

// CodeLeading is the line height of the code font, matching the
// renderer's 1.2 leading factor. The pagination estimator and the PDF
// engine must agree on this number.
func (c *Config) CodeLeading() float64 {
	return c.Fonts.Code.Size * 1.2
}

// LinesPerPage derives how many code lines fit one page from the page
// geometry: usable height over code line height.
func (c *Config) LinesPerPage() int {
	_, height := pageDimensions(c.Layout.PageSize)
	usable := height - c.Layout.Margins.Top - c.Layout.Margins.Bottom
	n := int(usable / c.CodeLeading())
	if n < 1 {
		return 1
	}
	return n
}

// pageDimensions returns width and height in points for a page size
// name. Unknown names fall back to A4.
func pageDimensions(name string) (float64, float64) {
	switch name {
	case "letter", "Letter":
		return 612, 792
	default: // A4
		return 595.28, 841.89
	}
}
