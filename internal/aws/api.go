// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"bytes"
	"context"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	lambdav2 "github.com/aws/aws-sdk-go-v2/service/lambda"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	stsv2 "github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/lambdapush/lambdapush/internal/log"
)

// Identity is the caller identity reported by the provider.
type Identity struct {
	Account string
	Arn     string
	UserID  string
}

// UpdateResult is the subset of the update-function-code response worth
// showing to the user.
type UpdateResult struct {
	FunctionArn string
	CodeSha256  string
	Version     string
}

// API is the narrow surface lambdapush needs from the provider: confirm who
// the credentials belong to and replace a function's code. The SDK clients
// hide behind it so tests can substitute a fake.
type API interface {
	// Identity performs the side-effect-free "who am I" call.
	Identity(ctx context.Context) (Identity, error)

	// UpdateFunctionCode replaces the function's code with the raw archive
	// bytes without publishing a new version.
	UpdateFunctionCode(ctx context.Context, functionName string, archive []byte) (UpdateResult, error)

	// UpdateFunctionCodeFromS3 replaces the function's code from a staged
	// S3 object without publishing a new version.
	UpdateFunctionCodeFromS3(ctx context.Context, functionName, bucket, key string) (UpdateResult, error)

	// StageArchive uploads the archive bytes to the staging bucket.
	StageArchive(ctx context.Context, bucket, key string, archive []byte) error
}

// sdkAPI implements API on the real AWS SDK clients.
type sdkAPI struct {
	sts    *stsv2.Client
	lambda *lambdav2.Client
	s3     *s3v2.Client
}

// NewAPI constructs the SDK-backed API from a resolved config.
func NewAPI(cfg awsv2.Config) API {
	log.Debugf("api clients created: region=%s", cfg.Region)
	return &sdkAPI{
		sts:    stsv2.NewFromConfig(cfg),
		lambda: lambdav2.NewFromConfig(cfg),
		s3:     s3v2.NewFromConfig(cfg),
	}
}

func (a *sdkAPI) Identity(ctx context.Context) (Identity, error) {
	out, err := a.sts.GetCallerIdentity(ctx, &stsv2.GetCallerIdentityInput{})
	if err != nil {
		return Identity{}, err
	}
	return Identity{
		Account: awsv2.ToString(out.Account),
		Arn:     awsv2.ToString(out.Arn),
		UserID:  awsv2.ToString(out.UserId),
	}, nil
}

func (a *sdkAPI) UpdateFunctionCode(ctx context.Context, functionName string, archive []byte) (UpdateResult, error) {
	out, err := a.lambda.UpdateFunctionCode(ctx, &lambdav2.UpdateFunctionCodeInput{
		FunctionName: awsv2.String(functionName),
		ZipFile:      archive,
	})
	if err != nil {
		return UpdateResult{}, err
	}
	return updateResult(out), nil
}

func (a *sdkAPI) UpdateFunctionCodeFromS3(ctx context.Context, functionName, bucket, key string) (UpdateResult, error) {
	out, err := a.lambda.UpdateFunctionCode(ctx, &lambdav2.UpdateFunctionCodeInput{
		FunctionName: awsv2.String(functionName),
		S3Bucket:     awsv2.String(bucket),
		S3Key:        awsv2.String(key),
	})
	if err != nil {
		return UpdateResult{}, err
	}
	return updateResult(out), nil
}

func (a *sdkAPI) StageArchive(ctx context.Context, bucket, key string, archive []byte) error {
	_, err := a.s3.PutObject(ctx, &s3v2.PutObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
		Body:   bytes.NewReader(archive),
	})
	return err
}

func updateResult(out *lambdav2.UpdateFunctionCodeOutput) UpdateResult {
	return UpdateResult{
		FunctionArn: awsv2.ToString(out.FunctionArn),
		CodeSha256:  awsv2.ToString(out.CodeSha256),
		Version:     awsv2.ToString(out.Version),
	}
}
