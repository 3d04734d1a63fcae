// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeArchive(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "code.zip")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDeployInline(t *testing.T) {
	api := &fakeAPI{updateResult: UpdateResult{
		FunctionArn: "arn:aws:lambda:us-east-1:123456789012:function:orders",
		CodeSha256:  "abc123",
	}}
	sess := &Session{API: api}
	zipPath := writeArchive(t, "fake zip bytes")
	out := &bytes.Buffer{}

	result := Deploy(context.Background(), sess, "orders", zipPath, DeployOptions{Out: out})
	require.NotNil(t, result)
	assert.Equal(t, "abc123", result.CodeSha256)

	assert.Equal(t, 1, api.inlineCalls)
	assert.Equal(t, "orders", api.lastFunction)
	assert.Equal(t, []byte("fake zip bytes"), api.lastArchive)
	assert.Zero(t, api.s3Calls)
	assert.Zero(t, api.stageCalls)
}

func TestDeployViaS3(t *testing.T) {
	api := &fakeAPI{updateResult: UpdateResult{Version: "$LATEST"}}
	sess := &Session{API: api}
	zipPath := writeArchive(t, "staged zip bytes")

	result := Deploy(context.Background(), sess, "orders", zipPath, DeployOptions{
		S3Bucket: "deploy-artifacts",
		Out:      &bytes.Buffer{},
	})
	require.NotNil(t, result)

	assert.Equal(t, 1, api.stageCalls)
	assert.Equal(t, "deploy-artifacts", api.lastBucket)
	assert.Equal(t, "lambdapush/orders.zip", api.lastKey)
	assert.Equal(t, 1, api.s3Calls)
	assert.Zero(t, api.inlineCalls)
}

func TestDeployStageFailureSkipsUpdate(t *testing.T) {
	api := &fakeAPI{stageErr: errors.New("access denied")}
	sess := &Session{API: api}
	zipPath := writeArchive(t, "zip")
	out := &bytes.Buffer{}

	result := Deploy(context.Background(), sess, "orders", zipPath, DeployOptions{
		S3Bucket: "deploy-artifacts",
		Out:      out,
	})
	assert.Nil(t, result)
	assert.Zero(t, api.s3Calls)
	assert.Contains(t, out.String(), "Error staging archive")
}

func TestDeployUpdateFailure(t *testing.T) {
	api := &fakeAPI{updateErr: errors.New("function not found")}
	sess := &Session{API: api}
	zipPath := writeArchive(t, "zip")
	out := &bytes.Buffer{}

	result := Deploy(context.Background(), sess, "orders", zipPath, DeployOptions{Out: out})
	assert.Nil(t, result)
	assert.Contains(t, out.String(), "Error updating Lambda function")
}

func TestDeployMissingArchive(t *testing.T) {
	api := &fakeAPI{}
	sess := &Session{API: api}
	out := &bytes.Buffer{}

	result := Deploy(context.Background(), sess, "orders",
		filepath.Join(t.TempDir(), "absent.zip"), DeployOptions{Out: out})
	assert.Nil(t, result)
	assert.Zero(t, api.inlineCalls)
	assert.Contains(t, out.String(), "Error updating Lambda function")
}
