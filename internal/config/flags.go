package config

import (
	"flag"

	"github.com/spf13/viper"
)

// Overrides are values given on the command line; they win over file and env
type Overrides struct {
	Variant  string
	Target   string
	Strategy string
	Journal  string
	HTTPAddr string
}

func (o Overrides) apply(v *viper.Viper) {
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	set("variant", o.Variant)
	set("target", o.Target)
	set("strategy", o.Strategy)
	set("journal.path", o.Journal)
	set("http.addr", o.HTTPAddr)
}

// ParseFlags parses command-line flags and returns the config path and overrides
func ParseFlags() (string, Overrides) {
	var (
		path     = flag.String("config", "", "Path to YAML config file")
		variant  = flag.String("variant", "", "interactive or fixed")
		target   = flag.String("target", "", "Target for the fixed variant")
		strategy = flag.String("strategy", "", "Output strategy: verbatim or latency")
		journal  = flag.String("db", "", "Outcome journal database path")
		httpAddr = flag.String("http", "", "Status API listen address, e.g. :8080")
	)
	flag.Parse()

	return *path, Overrides{
		Variant:  *variant,
		Target:   *target,
		Strategy: *strategy,
		Journal:  *journal,
		HTTPAddr: *httpAddr,
	}
}
