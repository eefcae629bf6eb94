package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdkit/pkg/config"
	"github.com/yaklabco/gomdkit/pkg/markdown"
)

// EnvPrefix prefixes every gomdkit environment variable.
const EnvPrefix = "GOMDKIT_"

type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps variable names, without the prefix, to config fields.
//
//nolint:gochecknoglobals // read-only lookup table
var envMappings = map[string]envMapping{
	"FORMAT":               {"format", envTypeString, "Output format: html or text"},
	"EXTENSIONS":           {"extensions", envTypeSlice, "Comma-separated extension names"},
	"HTML_UNSAFE":          {"html.unsafe", envTypeBool, "Keep raw HTML: true or false"},
	"HTML_XHTML":           {"html.xhtml", envTypeBool, "Self-close void elements: true or false"},
	"HTML_DETECT_LANGUAGE": {"html.detect_language", envTypeBool, "Guess code languages: true or false"},
	"HTML_SOFT_BREAK":      {"html.soft_break", envTypeString, "String written for soft line breaks"},
	"TEXT_INDENT":          {"text.indent", envTypeInt, "Text indentation unit in columns"},
	"TEXT_WRAP_WIDTH":      {"text.wrap_width", envTypeInt, "Text wrap width (0 = off)"},
	"HEADING_ID_STYLE":     {"heading_id.style", envTypeString, "Heading id style: github or slug"},
	"IGNORE":               {"ignore", envTypeSlice, "Comma-separated ignore patterns"},
	"JOBS":                 {"jobs", envTypeInt, "Number of parallel workers (0 = auto)"},
	"OUT_DIR":              {"out_dir", envTypeString, "Directory for rendered files"},
}

// LoadFromEnv applies GOMDKIT_* overrides to cfg.
func LoadFromEnv(cfg *config.Config) error {
	return loadFromEnv(cfg, os.Getenv)
}

func loadFromEnv(cfg *config.Config, getenv func(string) string) error {
	if cfg == nil {
		return nil
	}

	for suffix, mapping := range envMappings {
		envVar := EnvPrefix + suffix
		value := getenv(envVar)
		if value == "" {
			continue
		}
		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}
	return nil
}

func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value))
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

func parseSliceValue(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "format":
		cfg.Format = markdown.Format(value)
	case "html.soft_break":
		cfg.HTML.SoftBreak = value
	case "heading_id.style":
		cfg.HeadingID.Style = value
	case "out_dir":
		cfg.OutDir = value
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "html.unsafe":
		cfg.HTML.Unsafe = &value
	case "html.xhtml":
		cfg.HTML.XHTML = &value
	case "html.detect_language":
		cfg.HTML.DetectLanguage = &value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "text.indent":
		cfg.Text.Indent = value
	case "text.wrap_width":
		cfg.Text.WrapWidth = value
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "extensions":
		cfg.Extensions = value
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// EnvVar describes one supported environment variable.
type EnvVar struct {
	Name        string
	Field       string
	Description string
}

// ListEnvVars returns the supported environment variables, sorted by name.
func ListEnvVars() []EnvVar {
	vars := make([]EnvVar, 0, len(envMappings))
	for suffix, mapping := range envMappings {
		vars = append(vars, EnvVar{
			Name:        EnvPrefix + suffix,
			Field:       mapping.field,
			Description: mapping.description,
		})
	}
	sort.Slice(vars, func(i, j int) bool { return vars[i].Name < vars[j].Name })
	return vars
}
