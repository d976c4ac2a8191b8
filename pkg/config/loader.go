package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/showcase/pkg/errors"
	"github.com/arthur-debert/showcase/pkg/logging"
	"github.com/arthur-debert/showcase/pkg/rules"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// configFileNames are the corpus-root config files probed in order;
// the first one found is loaded
var configFileNames = []string{
	"showcase.toml",
	".showcase.toml",
	"showcase.yaml",
	".showcase.yaml",
}

// envPrefix is the prefix for environment overrides. A double
// underscore separates nesting levels: SHOWCASE_DOC_URL__NAMESPACE
// maps to doc_url.namespace.
const envPrefix = "SHOWCASE_"

// Load builds the configuration for a generation run over the given
// corpus root
func Load(corpusRoot string) (*Config, error) {
	logger := logging.GetLogger("config.loader")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Corpus-root config file, first match wins
	for _, filename := range configFileNames {
		path := filepath.Join(corpusRoot, filename)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), parserFor(filename)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded corpus config")
		break
	}

	// 3. Environment overrides
	if err := k.Load(env.Provider(envPrefix, ".", envToKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	filters, err := loadFilters(k)
	if err != nil {
		return nil, err
	}
	cfg.Filters = filters

	logger.Debug().
		Str("project", cfg.Project).
		Int("filters", len(cfg.Filters)).
		Msg("Configuration loaded")

	return &cfg, nil
}

// loadFilters reads the manifestmeta filter rules: a filters list of
// ids, each id naming a names/attributes/tags key group. Declaration
// order in the filters list is the rule precedence order.
func loadFilters(k *koanf.Koanf) ([]rules.FilterRule, error) {
	ids := k.Strings("manifestmeta.filters")
	filters := make([]rules.FilterRule, 0, len(ids))

	for _, id := range ids {
		prefix := "manifestmeta." + id + "."
		filter := rules.FilterRule{
			Names:      k.Strings(prefix + "names"),
			Attributes: k.Strings(prefix + "attributes"),
			Tags:       k.Strings(prefix + "tags"),
		}
		if len(filter.Names) == 0 {
			return nil, errors.Newf(errors.ErrConfigValid,
				"manifestmeta filter %q has no name patterns", id)
		}
		filters = append(filters, filter)
	}

	return filters, nil
}

// parserFor picks the koanf parser matching the config file extension
func parserFor(filename string) koanf.Parser {
	if strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml") {
		return yaml.Parser()
	}
	return toml.Parser()
}

// envToKey maps an environment variable to a config key:
// SHOWCASE_OUTPUT_DIR -> output_dir, SHOWCASE_DOC_URL__NAMESPACE ->
// doc_url.namespace
func envToKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}
