package config

import (
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Action holds the inputs of the bump action
type Action struct {
	TagPrefix  string
	SubPackage string
}

// Flags returns CLI flags for action inputs
func (c *Action) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "tag-prefix",
			Usage:       "Prefix of the published tag",
			Destination: &c.TagPrefix,
			Sources:     cli.EnvVars("INPUT_TAG-PREFIX", "INPUT_TAG_PREFIX"),
		},
		&cli.StringFlag{
			Name:        "sub-package",
			Usage:       "Workspace-relative directory of a nested package kept at the same version",
			Destination: &c.SubPackage,
			Sources:     cli.EnvVars("INPUT_SUB-PACKAGE", "INPUT_SUB_PACKAGE"),
		},
	}
}

// Validate checks that the sub package stays inside the workspace
func (c *Action) Validate() error {
	if c.SubPackage == "" {
		return nil
	}

	cleaned := filepath.Clean(c.SubPackage)
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return goerr.New("sub package must be a path inside the workspace", goerr.V("sub_package", c.SubPackage))
	}
	return nil
}
