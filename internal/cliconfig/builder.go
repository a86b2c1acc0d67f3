// Package cliconfig implements the CLI-Config Builder: the head of
// the final chain, assembled from CLI-supplied inline options plus, if an
// explicit config file path was given, that file's elements prepended so it
// precedes the CLI-inline overrides in merge order.
package cliconfig

import (
	"fmt"

	"github.com/lintcascade/lintcascade/internal/configarray"
	"github.com/lintcascade/lintcascade/internal/configfactory"
)

// Build materializes cliData, and if configFile is non-empty, loads it
// through factory and prepends its elements ahead of the inline data.
func Build(factory configfactory.Factory, cliData configfactory.RawLayer, configFile string) (*configarray.ConfigArray, error) {
	inline, err := factory.Create(cliData, configfactory.CreateOptions{Name: "<cli options>"})
	if err != nil {
		return nil, fmt.Errorf("cliconfig: materializing CLI options: %w", err)
	}

	if configFile == "" {
		return inline, nil
	}

	explicit, err := factory.LoadFile(configFile, configfactory.CreateOptions{Name: configFile})
	if err != nil {
		return nil, fmt.Errorf("cliconfig: loading --config %s: %w", configFile, err)
	}

	return configarray.Concat(explicit, inline), nil
}
