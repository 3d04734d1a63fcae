// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v3"

	"github.com/lambdapush/lambdapush/internal/archive"
	"github.com/lambdapush/lambdapush/internal/aws"
	"github.com/lambdapush/lambdapush/internal/log"
)

// archiveName is the entry name used for the staged deployment archive.
const archiveName = "code.zip"

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#623CE4"))

// pushDeps carries the collaborators of the package/deploy flow so tests can
// substitute fakes for the filesystem, the prompt and the provider API.
type pushDeps struct {
	collect  func(pattern string) ([]string, error)
	build    func(outputPath string, files []string, baseDir string) (string, error)
	list     func(path string) ([]archive.Entry, error)
	validate func(ctx context.Context, in aws.ValidateInput) *aws.Session
	deploy   func(ctx context.Context, sess *aws.Session, functionName, zipPath string, opts aws.DeployOptions) *aws.UpdateResult
	confirm  func(label string) bool
	out      io.Writer
}

type pushParams struct {
	FunctionName string
	Patterns     []string
	Profile      string
	DryRun       bool
	S3Bucket     string
}

// runPush collects the matching files, packages them, and either stops after
// writing the archive (dry run) or deploys it to the named function.
func runPush(ctx context.Context, d pushDeps, p pushParams) error {
	mode := "Deploying"
	if p.DryRun {
		mode = "Packaging"
	}
	fmt.Fprintf(d.out, "\n%s code for Lambda function: %s\n", mode, p.FunctionName)

	fmt.Fprintf(d.out, "\nUsing file patterns: %v\n", p.Patterns)

	var allFiles []string
	for _, pattern := range p.Patterns {
		matched, err := d.collect(pattern)
		if err != nil {
			return cli.Exit(fmt.Sprintf("pattern %q: %v", pattern, err), 1)
		}
		fmt.Fprintf(d.out, "Pattern '%s' matched %d files\n", pattern, len(matched))
		allFiles = append(allFiles, matched...)
	}

	if len(allFiles) == 0 {
		return cli.Exit("No files matched the specified patterns. Aborting.", 1)
	}

	fmt.Fprintf(d.out, "Total files to package: %d\n", len(allFiles))

	cwd, err := os.Getwd()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if p.DryRun {
		zipPath, err := d.build(p.FunctionName+".zip", allFiles, cwd)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		fmt.Fprintf(d.out, "\nDry run completed. ZIP file created at: %s\n", zipPath)
		fmt.Fprintln(d.out, "No deployment was made to AWS Lambda.")
		return nil
	}

	fmt.Fprintf(d.out, "\nValidating AWS credentials (%s) ...\n", p.Profile)
	sess := d.validate(ctx, aws.ValidateInput{Profile: p.Profile})
	if sess == nil {
		return cli.Exit("Failed to validate AWS credentials. Deployment aborted.", 1)
	}

	tempDir, err := os.MkdirTemp("", "lambdapush-")
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer func() {
		if err := os.RemoveAll(tempDir); err != nil {
			log.Warnf("temp dir cleanup: %v", err)
		}
	}()

	zipPath, err := d.build(filepath.Join(tempDir, archiveName), allFiles, cwd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	printContents(d, zipPath)

	if !d.confirm(fmt.Sprintf("\nSure to deploy %s? (y/n): ", p.FunctionName)) {
		return nil
	}

	fmt.Fprintf(d.out, "Updating Lambda function: %s\n", p.FunctionName)
	result := d.deploy(ctx, sess, p.FunctionName, zipPath, aws.DeployOptions{
		S3Bucket: p.S3Bucket,
		Out:      d.out,
	})
	if result != nil {
		fmt.Fprintf(d.out, "Lambda function %s updated successfully!\n", p.FunctionName)
	}
	return nil
}

// printContents lists the archive entries with right-padded names so the
// sizes line up, then the deflated total.
func printContents(d pushDeps, zipPath string) {
	entries, err := d.list(zipPath)
	if err != nil || len(entries) == 0 {
		fmt.Fprintln(d.out, "\nZIP file is empty or could not be read.")
		return
	}

	width := 0
	for _, e := range entries {
		if len(e.Name) > width {
			width = len(e.Name)
		}
	}
	width += 2

	fmt.Fprintf(d.out, "\n%s\n", headerStyle.Render(fmt.Sprintf("Contents of the ZIP file (%d files):", len(entries))))
	var total int64
	for _, e := range entries {
		fmt.Fprintf(d.out, "  - %s ( %s )\n", pad(e.Name, width), archive.HumanSize(e.Size))
		total += e.Size
	}
	fmt.Fprintf(d.out, "\n  Total size: %s\n", archive.HumanSize(total))
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
