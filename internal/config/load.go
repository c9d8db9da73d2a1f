package config

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/thomas-vilte/commit-template/internal/errors"
	"github.com/thomas-vilte/commit-template/internal/logger"
	"github.com/thomas-vilte/commit-template/internal/models"
	"gopkg.in/yaml.v3"
)

// FileNames lists the config files looked up in the project root, in
// priority order.
var FileNames = []string{
	"commit.config.toml",
	"commit.config.yaml",
	"commit.config.yml",
	"commit.config.json",
}

var knownKeys = map[string]bool{
	"types":                true,
	"scopes":               true,
	"issue_prefix":         true,
	"additional_questions": true,
	"message_format":       true,
	"message_preset":       true,
	"branch_format":        true,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("toml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Find returns the first config file present in root.
func Find(root string) (string, bool) {
	for _, name := range FileNames {
		path := filepath.Join(root, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, true
		}
		if err != nil && !os.IsNotExist(err) {
			return path, true
		}
	}
	return "", false
}

// Resolve returns the effective configuration for the project in root. A
// missing file yields the defaults. A file that cannot be read, decoded,
// validated or compiled is reported as a warning and the defaults are used.
func Resolve(ctx context.Context, root string) *models.EffectiveConfig {
	path, ok := Find(root)
	if !ok {
		logger.Debug(ctx, "no config file found, using defaults", "path", root)
		return Defaults()
	}

	user, err := Load(path)
	if err != nil {
		logger.Warn(ctx, "config ignored, using defaults", "path", path, "error", err)
		return Defaults()
	}

	cfg, err := Merge(user)
	if err != nil {
		err = errors.ErrConfigInvalid.WithError(err).WithContext("path", path)
		logger.Warn(ctx, "config ignored, using defaults", "path", path, "error", err)
		return Defaults()
	}

	cfg.Source = path
	logger.Info(ctx, "config resolved", "path", path,
		"types", len(cfg.Types),
		"scopes", len(cfg.Scopes),
		"questions", len(cfg.AdditionalQuestions))

	return cfg
}

// Load decodes and validates the config file at path. The format follows
// the file extension.
func Load(path string) (*UserConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ErrConfigLoad.WithError(err).WithContext("path", path)
	}

	var user UserConfig
	raw := map[string]any{}

	if err := decode(path, data, &user, &raw); err != nil {
		return nil, errors.ErrConfigLoad.WithError(err).WithContext("path", path)
	}

	for k, v := range raw {
		if knownKeys[k] {
			continue
		}
		if user.Extra == nil {
			user.Extra = map[string]any{}
		}
		user.Extra[k] = v
	}

	if err := Validate(&user); err != nil {
		return nil, errors.ErrConfigInvalid.WithError(err).WithContext("path", path)
	}

	return &user, nil
}

func decode(path string, data []byte, user *UserConfig, raw *map[string]any) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), user); err != nil {
			return fmt.Errorf("error decoding TOML: %w", err)
		}
		if _, err := toml.Decode(string(data), raw); err != nil {
			return fmt.Errorf("error decoding TOML: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, user); err != nil {
			return fmt.Errorf("error decoding YAML: %w", err)
		}
		if err := yaml.Unmarshal(data, raw); err != nil {
			return fmt.Errorf("error decoding YAML: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, user); err != nil {
			return fmt.Errorf("error decoding JSON: %w", err)
		}
		if err := json.Unmarshal(data, raw); err != nil {
			return fmt.Errorf("error decoding JSON: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
	return nil
}

// Validate checks the declarative constraints of a UserConfig. Field names
// in the error use the file keys, e.g. additional_questions[0].name.
func Validate(user *UserConfig) error {
	err := validate.Struct(user)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !stdErrors.As(err, &validationErrs) {
		return err
	}

	problems := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		field := e.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		problems = append(problems, fmt.Sprintf("%s: %s", field, formatValidationError(e)))
	}
	return stdErrors.New(strings.Join(problems, "; "))
}

func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", e.Param())
	case "max":
		return "exceeds maximum length"
	case "gte":
		return "must not be negative"
	default:
		return "invalid value"
	}
}
