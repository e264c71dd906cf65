package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// parseYAML decodes a YAML configuration file. Unknown keys are rejected.
// An empty file yields an empty config.
func parseYAML(yamlFilePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(yamlFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a yaml file: %w", err)
	}

	var fileCfg StructuredFileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&fileCfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error decoding yaml configs: %w", err)
	}

	return fileCfg.toStructuredConfig(), nil
}
