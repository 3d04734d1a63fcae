// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lambdapush/lambdapush/internal/archive"
	"github.com/lambdapush/lambdapush/internal/aws"
	"github.com/lambdapush/lambdapush/internal/collect"
	"github.com/lambdapush/lambdapush/internal/config"
	"github.com/lambdapush/lambdapush/internal/credstore"
	"github.com/lambdapush/lambdapush/internal/log"
	"github.com/lambdapush/lambdapush/internal/prompt"
)

// InitApp builds the CLI application.
func InitApp() *cli.Command {
	return &cli.Command{
		Name:      "lambdapush",
		Usage:     "Quickly package and deploy source files to AWS Lambda functions",
		ArgsUsage: "[function-name]",
		Flags:     NewFlags(),
		Action:    rootAction,
	}
}

// rootAction dispatches between the setup flow and the package/deploy flow.
func rootAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("setup") {
		return runSetup(ctx, newSetupDeps())
	}

	functionName := strings.TrimSpace(cmd.Args().First())
	if functionName == "" {
		return cli.Exit("function-name is required unless --setup is specified", 3)
	}

	patterns := trimAll(cmd.StringSlice("include"))
	if len(patterns) == 0 {
		// Fall back to the config file, then the built-in default.
		patterns, _ = config.GetStringSlice("include", []string{collect.DefaultPattern})
	}
	log.Debugf("args resolved: function=%s, patterns=%v, dry=%t", functionName, patterns, cmd.Bool("dry"))

	return runPush(ctx, newPushDeps(), pushParams{
		FunctionName: functionName,
		Patterns:     patterns,
		Profile:      strings.TrimSpace(cmd.String("profile")),
		DryRun:       cmd.Bool("dry"),
		S3Bucket:     cmd.String("s3-bucket"),
	})
}

// newSetupDeps wires the setup flow to the real prompt, validator and store.
func newSetupDeps() setupDeps {
	p := prompt.New()
	v := &aws.Validator{}
	return setupDeps{
		prompt:   p,
		validate: v.Validate,
		persist:  credstore.NewStore().Persist,
		out:      os.Stdout,
	}
}

// newPushDeps wires the package/deploy flow to the real collaborators.
func newPushDeps() pushDeps {
	p := prompt.New()
	v := &aws.Validator{}
	return pushDeps{
		collect: func(pattern string) ([]string, error) {
			return collect.Files(pattern, collect.Options{SkipSelf: true})
		},
		build:    archive.Build,
		list:     archive.List,
		validate: v.Validate,
		deploy:   aws.Deploy,
		confirm:  p.Confirm,
		out:      os.Stdout,
	}
}

// trimAll strips surrounding whitespace and drops empty entries.
func trimAll(values []string) []string {
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
