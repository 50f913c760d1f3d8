package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"network-ping/internal/app"
	"network-ping/internal/interpret"
)

const envPrefix = "NETPING"

// Load reads the optional YAML file at path, applies NETPING_* environment
// overrides and fills variant-specific defaults.
func Load(path string, overrides Overrides) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("variant", string(app.VariantInteractive))
	overrides.apply(v)

	setVariantDefaults(v, app.Variant(v.GetString("variant")))

	v.SetDefault("discard_stale", false)
	v.SetDefault("ping.binary", "ping")
	v.SetDefault("journal.path", "")
	v.SetDefault("journal.retention", "168h")
	v.SetDefault("http.addr", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "network-ping.log")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return &cfg, nil
}

func setVariantDefaults(v *viper.Viper, variant app.Variant) {
	var p app.Profile
	strategy := interpret.StrategyVerbatim

	switch variant {
	case app.VariantFixed:
		p = app.FixedProfile()
		strategy = interpret.StrategyLatency
	default:
		p = app.InteractiveProfile()
	}

	v.SetDefault("target", p.Target)
	v.SetDefault("strategy", strategy)
	v.SetDefault("ping.interval", p.Interval)
	v.SetDefault("ping.deadline", p.Deadline)
	v.SetDefault("ping.count", p.Count)
}
