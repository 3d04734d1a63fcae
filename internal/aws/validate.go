// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/smithy-go"

	"github.com/lambdapush/lambdapush/internal/credstore"
	"github.com/lambdapush/lambdapush/internal/log"
)

// Session is a validated, ready-to-use binding of resolved credentials and
// the provider API. It lives for a single run and is never persisted.
type Session struct {
	AccessKey string
	Region    string
	API       API
}

// ValidateInput selects the credential source. Explicit AccessKey/SecretKey
// bypass file and profile resolution; otherwise the SDK default chain runs,
// scoped to Profile when one is named.
type ValidateInput struct {
	AccessKey string
	SecretKey string
	Region    string
	Profile   string
}

// Validator resolves credentials and confirms them against the identity
// endpoint. The zero value is ready to use; NewAPI, Out and LoadOptions exist
// so tests can substitute a fake API, capture output, and point shared-file
// resolution at fixtures.
type Validator struct {
	NewAPI      func(cfg awsv2.Config) API
	Out         io.Writer
	LoadOptions []Option
}

// Validate returns a live Session, or nil after reporting why the credentials
// are unusable. Every failure is terminal for this attempt; no error escapes.
func (v *Validator) Validate(ctx context.Context, in ValidateInput) *Session {
	out := v.Out
	if out == nil {
		out = os.Stdout
	}

	opts := append([]Option{}, v.LoadOptions...)
	if in.AccessKey != "" || in.SecretKey != "" {
		opts = append(opts, WithStaticCredentials(in.AccessKey, in.SecretKey))
	} else if in.Profile != "" {
		opts = append(opts, WithProfile(in.Profile))
	}
	if in.Region != "" {
		opts = append(opts, WithRegion(in.Region))
	}

	cfg, err := LoadAWSConfig(ctx, opts...)
	if err != nil {
		var notExist config.SharedConfigProfileNotExistError
		if errors.As(err, &notExist) {
			if in.Profile == credstore.DefaultProfile {
				fmt.Fprintln(out, "\nRun --setup first to initialize credentials...")
			} else {
				fmt.Fprintf(out, "\nThe profile (%s) couldn't be found, make sure it exists in the config files\n", in.Profile)
			}
			return nil
		}
		fmt.Fprintf(out, "Credential error: %v\n", err)
		return nil
	}

	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		log.Debugf("credential retrieve err: err=%v", err)
		fmt.Fprintln(out, "No credentials found")
		return nil
	}
	if creds.AccessKeyID == "" {
		fmt.Fprintln(out, "Access key is not set")
		return nil
	}
	if creds.SecretAccessKey == "" {
		fmt.Fprintln(out, "Secret key is not set")
		return nil
	}
	if cfg.Region == "" {
		fmt.Fprintln(out, "Default region is not set")
		return nil
	}

	fmt.Fprintln(out, "\nCredentials found in the environment:")
	fmt.Fprintf(out, "Access Key ID: %s...\n", maskKey(creds.AccessKeyID))
	fmt.Fprintf(out, "Region: %s\n", cfg.Region)

	newAPI := v.NewAPI
	if newAPI == nil {
		newAPI = NewAPI
	}
	api := newAPI(cfg)

	id, err := api.Identity(ctx)
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			fmt.Fprintf(out, "\nCredentials found but failed validation with AWS: %s: %s\n",
				apiErr.ErrorCode(), apiErr.ErrorMessage())
		} else {
			fmt.Fprintf(out, "\nCredentials found but failed validation with AWS: %v\n", err)
		}
		return nil
	}

	fmt.Fprintln(out, "\nCredentials validated successfully with AWS:")
	fmt.Fprintf(out, "Account: %s\n", id.Account)
	fmt.Fprintf(out, "ARN: %s\n", id.Arn)
	fmt.Fprintf(out, "UserId: %s\n", id.UserID)

	return &Session{
		AccessKey: creds.AccessKeyID,
		Region:    cfg.Region,
		API:       api,
	}
}

// maskKey keeps only a short identifying prefix of an access key.
func maskKey(key string) string {
	if len(key) <= 5 {
		return key
	}
	return key[:5]
}
