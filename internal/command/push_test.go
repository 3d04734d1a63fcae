// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/lambdapush/lambdapush/internal/archive"
	"github.com/lambdapush/lambdapush/internal/aws"
)

// pushHarness records which collaborators ran so the flow's ordering and
// short-circuits can be asserted without touching the filesystem or AWS.
type pushHarness struct {
	deps pushDeps
	out  *bytes.Buffer

	files      map[string][]string
	collectErr error
	buildErr   error
	session    *aws.Session
	result     *aws.UpdateResult
	confirmAns bool

	builtPath    string
	builtFiles   []string
	validated    bool
	confirmed    bool
	deployed     bool
	deployedFn   string
	deployBucket string
}

func newPushHarness() *pushHarness {
	h := &pushHarness{
		out:        &bytes.Buffer{},
		files:      map[string][]string{},
		session:    &aws.Session{AccessKey: "AKIAEXAMPLE", Region: "us-east-1"},
		result:     &aws.UpdateResult{FunctionArn: "arn:aws:lambda:us-east-1:123456789012:function:orders"},
		confirmAns: true,
	}
	h.deps = pushDeps{
		collect: func(pattern string) ([]string, error) {
			return h.files[pattern], h.collectErr
		},
		build: func(outputPath string, files []string, baseDir string) (string, error) {
			if h.buildErr != nil {
				return "", h.buildErr
			}
			h.builtPath = outputPath
			h.builtFiles = files
			return outputPath, nil
		},
		list: func(path string) ([]archive.Entry, error) {
			var entries []archive.Entry
			for _, f := range h.builtFiles {
				entries = append(entries, archive.Entry{Name: f, Size: 1024})
			}
			return entries, nil
		},
		validate: func(ctx context.Context, in aws.ValidateInput) *aws.Session {
			h.validated = true
			return h.session
		},
		deploy: func(ctx context.Context, sess *aws.Session, functionName, zipPath string, opts aws.DeployOptions) *aws.UpdateResult {
			h.deployed = true
			h.deployedFn = functionName
			h.deployBucket = opts.S3Bucket
			return h.result
		},
		confirm: func(label string) bool {
			h.confirmed = true
			return h.confirmAns
		},
		out: h.out,
	}
	return h
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var coder cli.ExitCoder
	require.ErrorAs(t, err, &coder)
	return coder.ExitCode()
}

func TestRunPushDeploys(t *testing.T) {
	h := newPushHarness()
	h.files["**/*.py"] = []string{"handler.py", "lib/util.py"}

	err := runPush(context.Background(), h.deps, pushParams{
		FunctionName: "orders",
		Patterns:     []string{"**/*.py"},
		Profile:      "default",
	})

	require.NoError(t, err)
	assert.True(t, h.validated)
	assert.True(t, h.confirmed)
	assert.True(t, h.deployed)
	assert.Equal(t, "orders", h.deployedFn)
	assert.Equal(t, []string{"handler.py", "lib/util.py"}, h.builtFiles)
	assert.Contains(t, h.out.String(), "Deploying code for Lambda function: orders")
	assert.Contains(t, h.out.String(), "Pattern '**/*.py' matched 2 files")
	assert.Contains(t, h.out.String(), "Total files to package: 2")
	assert.Contains(t, h.out.String(), "Lambda function orders updated successfully!")
}

func TestRunPushNoMatchesAborts(t *testing.T) {
	h := newPushHarness()
	h.files["*.py"] = nil

	err := runPush(context.Background(), h.deps, pushParams{
		FunctionName: "orders",
		Patterns:     []string{"*.py"},
	})

	require.Error(t, err)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, err.Error(), "No files matched the specified patterns. Aborting.")
	assert.Empty(t, h.builtPath)
	assert.False(t, h.validated)
	assert.False(t, h.deployed)
}

func TestRunPushDryRunSkipsDeploy(t *testing.T) {
	h := newPushHarness()
	h.files["*.py"] = []string{"handler.py"}

	err := runPush(context.Background(), h.deps, pushParams{
		FunctionName: "orders",
		Patterns:     []string{"*.py"},
		DryRun:       true,
	})

	require.NoError(t, err)
	assert.Equal(t, "orders.zip", h.builtPath)
	assert.False(t, h.validated)
	assert.False(t, h.confirmed)
	assert.False(t, h.deployed)
	assert.Contains(t, h.out.String(), "Packaging code for Lambda function: orders")
	assert.Contains(t, h.out.String(), "Dry run completed. ZIP file created at: orders.zip")
	assert.Contains(t, h.out.String(), "No deployment was made to AWS Lambda.")
}

func TestRunPushDeclinedConfirmSkipsDeploy(t *testing.T) {
	h := newPushHarness()
	h.files["*.py"] = []string{"handler.py"}
	h.confirmAns = false

	err := runPush(context.Background(), h.deps, pushParams{
		FunctionName: "orders",
		Patterns:     []string{"*.py"},
	})

	require.NoError(t, err)
	assert.True(t, h.confirmed)
	assert.False(t, h.deployed)
	assert.NotContains(t, h.out.String(), "updated successfully")
}

func TestRunPushValidationFailureAborts(t *testing.T) {
	h := newPushHarness()
	h.files["*.py"] = []string{"handler.py"}
	h.session = nil

	err := runPush(context.Background(), h.deps, pushParams{
		FunctionName: "orders",
		Patterns:     []string{"*.py"},
		Profile:      "staging",
	})

	require.Error(t, err)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, err.Error(), "Failed to validate AWS credentials. Deployment aborted.")
	assert.Contains(t, h.out.String(), "Validating AWS credentials (staging) ...")
	assert.Empty(t, h.builtPath)
	assert.False(t, h.deployed)
}

func TestRunPushDeployFailureNoSuccessMessage(t *testing.T) {
	h := newPushHarness()
	h.files["*.py"] = []string{"handler.py"}
	h.result = nil

	err := runPush(context.Background(), h.deps, pushParams{
		FunctionName: "orders",
		Patterns:     []string{"*.py"},
	})

	require.NoError(t, err)
	assert.True(t, h.deployed)
	assert.NotContains(t, h.out.String(), "updated successfully")
}

func TestRunPushPassesS3Bucket(t *testing.T) {
	h := newPushHarness()
	h.files["*.py"] = []string{"handler.py"}

	err := runPush(context.Background(), h.deps, pushParams{
		FunctionName: "orders",
		Patterns:     []string{"*.py"},
		S3Bucket:     "deploy-artifacts",
	})

	require.NoError(t, err)
	assert.Equal(t, "deploy-artifacts", h.deployBucket)
}

func TestRunPushCollectError(t *testing.T) {
	h := newPushHarness()
	h.collectErr = errors.New("syntax error in pattern")

	err := runPush(context.Background(), h.deps, pushParams{
		FunctionName: "orders",
		Patterns:     []string{"["},
	})

	require.Error(t, err)
	assert.Equal(t, 1, exitCode(t, err))
	assert.False(t, h.validated)
}
