package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// parseTOML decodes a TOML configuration file. Keys that do not map onto
// [StructuredFileConfig] are rejected so typos do not pass silently.
func parseTOML(tomlFilePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(tomlFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a toml file: %w", err)
	}

	var fileCfg StructuredFileConfig
	md, err := toml.Decode(string(data), &fileCfg)
	if err != nil {
		return nil, fmt.Errorf("error decoding toml configs: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("error decoding toml configs: unknown keys %s", strings.Join(keys, ", "))
	}

	return fileCfg.toStructuredConfig(), nil
}
