// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/lambdapush/lambdapush/internal/log"
)

// DeployOptions tune how the archive reaches the function.
type DeployOptions struct {
	// S3Bucket, when set, stages the archive as an S3 object and updates the
	// function from there instead of sending the bytes inline. Required for
	// archives past the provider's inline size limit.
	S3Bucket string

	// Out receives progress output. Defaults to stdout.
	Out io.Writer
}

// Deploy reads the archive at zipPath and replaces functionName's code with
// it, without publishing a new version. Failures are reported and swallowed;
// the caller only sees a nil result, never an error.
func Deploy(ctx context.Context, sess *Session, functionName, zipPath string, opts DeployOptions) *UpdateResult {
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	archive, err := os.ReadFile(zipPath)
	if err != nil {
		fmt.Fprintf(out, "Error updating Lambda function: %v\n", err)
		return nil
	}
	fmt.Fprintf(out, "Uploading %s bytes of code...\n", humanize.Comma(int64(len(archive))))

	var result UpdateResult
	if opts.S3Bucket != "" {
		key := stageKey(functionName)
		log.Debugf("staging archive: bucket=%s, key=%s", opts.S3Bucket, key)
		if err := sess.API.StageArchive(ctx, opts.S3Bucket, key, archive); err != nil {
			fmt.Fprintf(out, "Error staging archive to s3://%s/%s: %v\n", opts.S3Bucket, key, err)
			return nil
		}
		result, err = sess.API.UpdateFunctionCodeFromS3(ctx, functionName, opts.S3Bucket, key)
	} else {
		result, err = sess.API.UpdateFunctionCode(ctx, functionName, archive)
	}

	if err != nil {
		fmt.Fprintf(out, "Error updating Lambda function: %v\n", err)
		return nil
	}

	log.Debugf("code updated: arn=%s, sha=%s", result.FunctionArn, result.CodeSha256)
	return &result
}

// stageKey is the object key used for S3-staged archives.
func stageKey(functionName string) string {
	return fmt.Sprintf("lambdapush/%s.zip", functionName)
}
