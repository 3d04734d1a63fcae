// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/lambdapush/lambdapush/internal/config"
	"github.com/lambdapush/lambdapush/internal/credstore"
)

// NewFlags builds the application flag set. String flags resolve from the
// command line, then the environment, then the user's YAML config file when
// one exists.
func NewFlags() []cli.Flag {
	cfgFile, _ := config.File()

	profileFlag := &cli.StringFlag{
		Name:    "profile",
		Aliases: []string{"p"},
		Usage:   "credentials profile to deploy with",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("LAMBDAPUSH_PROFILE"),
		),
		Value: credstore.DefaultProfile,
	}

	bucketFlag := &cli.StringFlag{
		Name:  "s3-bucket",
		Usage: "stage the archive in this S3 bucket instead of uploading it inline",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("LAMBDAPUSH_S3_BUCKET"),
		),
	}

	if cfgFile != "" {
		profileFlag = valueChainFlagFromConfigFile(cfgFile, profileFlag)
		bucketFlag = valueChainFlagFromConfigFile(cfgFile, bucketFlag)
	}

	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "include",
			Aliases: []string{"i"},
			Usage:   "glob pattern to include files (can be used multiple times)",
		},
		&cli.BoolFlag{
			Name:        "dry",
			Aliases:     []string{"d"},
			Usage:       "create the ZIP file but don't deploy to Lambda",
			HideDefault: true,
		},
		&cli.BoolFlag{
			Name:        "setup",
			Usage:       "set up AWS credentials for deploying",
			HideDefault: true,
		},
		profileFlag,
		bucketFlag,
	}
}

// valueChainFlagFromConfigFile appends a config file source to the given
// flag's Sources chain.
func valueChainFlagFromConfigFile(path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)
	return flag
}
