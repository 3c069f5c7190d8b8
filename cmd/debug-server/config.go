// Copyright 2018 The Kura Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package debugserver

import (
	"flag"
	"fmt"
	"time"

	"github.com/MSM7x27A-Sources/android-hardware/pkg/debug"
	"github.com/MSM7x27A-Sources/android-hardware/pkg/trace"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Config is the resolved debug-server configuration. Keys match the flag
// names so a config file and the command line read the same way.
type Config struct {
	Port          int           `mapstructure:"port"`
	DBStore       string        `mapstructure:"db-store"`
	PropFile      string        `mapstructure:"prop-file"`
	Poll          time.Duration `mapstructure:"poll"`
	Label         string        `mapstructure:"label"`
	TraceCategory string        `mapstructure:"trace-category"`
	Debug         []string      `mapstructure:"debug"`
}

// configKeys are the flags that may also be given in a config file.
var configKeys = map[string]bool{
	"port":           true,
	"db-store":       true,
	"prop-file":      true,
	"poll":           true,
	"label":          true,
	"trace-category": true,
	"debug":          true,
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 10970)
	v.SetDefault("db-store", "sdm-props")
	v.SetDefault("prop-file", "")
	v.SetDefault("poll", time.Second)
	v.SetDefault("label", debug.DefaultLabel)
	v.SetDefault("trace-category", trace.DefaultCategory)
	v.SetDefault("debug", []string{})
}

// loadConfig resolves defaults, then the config file at path (if any), then
// the explicitly set flags in fs. The file format is inferred from its
// extension.
func loadConfig(afs afero.Fs, path string, fs *flag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetFs(afs)
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if fs != nil {
		fs.Visit(func(f *flag.Flag) {
			if configKeys[f.Name] {
				v.Set(f.Name, f.Value.String())
			}
		})
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Poll <= 0 {
		return Config{}, fmt.Errorf("poll interval must be positive, got %s", cfg.Poll)
	}
	return cfg, nil
}
