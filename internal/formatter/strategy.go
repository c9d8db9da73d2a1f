package formatter

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/thomas-vilte/commit-template/internal/models"
)

const (
	PresetDefault      = "default"
	PresetConventional = "conventional"
)

// Preset returns the strategy registered under name. The default preset has
// no strategy, so Format falls back to Default.
func Preset(name string) (models.MessageFormatFunc, error) {
	switch name {
	case "", PresetDefault:
		return nil, nil
	case PresetConventional:
		return Conventional, nil
	default:
		return nil, fmt.Errorf("unknown message preset %q", name)
	}
}

var templateFuncs = template.FuncMap{
	"trim":  strings.TrimSpace,
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
}

// Template compiles a text/template into a message strategy. The template
// sees every answer by its question name plus .Branch, .BranchRef and
// .IssuePrefix; the `get` function reads an answer that may be absent.
func Template(name, text string) (models.MessageFormatFunc, error) {
	base := template.New(name).Funcs(templateFuncs).Funcs(template.FuncMap{
		"get": func(string) string { return "" },
	})
	if _, err := base.Parse(text); err != nil {
		return nil, fmt.Errorf("error parsing template %s: %w", name, err)
	}

	return func(answers models.Answers, cfg *models.EffectiveConfig, branch string) (string, error) {
		tmpl, err := base.Clone()
		if err != nil {
			return "", err
		}
		tmpl.Funcs(template.FuncMap{"get": answers.String})

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, templateData(answers, cfg, branch)); err != nil {
			return "", fmt.Errorf("error executing template %s: %w", name, err)
		}
		return buf.String(), nil
	}, nil
}

func templateData(answers models.Answers, cfg *models.EffectiveConfig, branch string) map[string]any {
	data := make(map[string]any, len(answers)+3)
	for k, v := range answers {
		data[k] = v
	}
	data["Branch"] = branch
	data["BranchRef"] = ""
	data["IssuePrefix"] = ""
	if ref, ok := FormatBranch(branch, cfg); ok {
		data["BranchRef"] = ref
	}
	if cfg != nil {
		data["IssuePrefix"] = cfg.IssuePrefix
	}
	return data
}

// BranchPattern compiles a regular expression into a branch strategy. The
// first capture group is returned when present, the whole match otherwise.
func BranchPattern(pattern string) (models.BranchFormatFunc, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid branch_format %q: %w", pattern, err)
	}

	return func(branch string) (string, bool) {
		m := re.FindStringSubmatch(branch)
		if m == nil {
			return "", false
		}
		if len(m) > 1 && m[1] != "" {
			return m[1], true
		}
		return m[0], true
	}, nil
}
