package configloader

import "github.com/yaklabco/gomdkit/pkg/config"

// merge returns base with every field set in override applied on top.
//   - Strings and numbers: override wins when non-zero.
//   - Pointer booleans: override wins when non-nil.
//   - Slices: override replaces base when non-nil.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Extensions != nil {
		result.Extensions = append([]string(nil), override.Extensions...)
	}

	if override.HTML.SoftBreak != "" {
		result.HTML.SoftBreak = override.HTML.SoftBreak
	}
	if override.HTML.Unsafe != nil {
		result.HTML.Unsafe = override.HTML.Unsafe
	}
	if override.HTML.XHTML != nil {
		result.HTML.XHTML = override.HTML.XHTML
	}
	if override.HTML.DetectLanguage != nil {
		result.HTML.DetectLanguage = override.HTML.DetectLanguage
	}

	if override.Text.Indent != 0 {
		result.Text.Indent = override.Text.Indent
	}
	if override.Text.WrapWidth != 0 {
		result.Text.WrapWidth = override.Text.WrapWidth
	}
	if override.HeadingID.Style != "" {
		result.HeadingID.Style = override.HeadingID.Style
	}
	if override.Ignore != nil {
		result.Ignore = append([]string(nil), override.Ignore...)
	}

	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.OutDir != "" {
		result.OutDir = override.OutDir
	}
	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Report != "" {
		result.Report = override.Report
	}

	return result
}

// MergeAll merges configurations in order; later ones take precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}
	result := configs[0]
	for _, cfg := range configs[1:] {
		result = merge(result, cfg)
	}
	return result
}
