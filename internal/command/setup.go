// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"

	"github.com/lambdapush/lambdapush/internal/aws"
	"github.com/lambdapush/lambdapush/internal/credstore"
)

// prompter is the slice of prompt.Prompter the setup flow needs.
type prompter interface {
	Required(label string) string
	Secret(label string) string
}

type setupDeps struct {
	prompt   prompter
	validate func(ctx context.Context, in aws.ValidateInput) *aws.Session
	persist  func(p credstore.Profile) error
	out      io.Writer
}

// runSetup collects credentials interactively, validates them against the
// identity endpoint, and only then writes them to the shared credential files.
func runSetup(ctx context.Context, d setupDeps) error {
	fmt.Fprintln(d.out, "Setting up AWS credentials...")

	accessKey := d.prompt.Required("\nEnter AWS Access Key ID: ")
	secretKey := d.prompt.Secret("\nEnter AWS Secret Access Key: ")
	region := d.prompt.Required("\nEnter AWS Region (e.g., us-east-1): ")

	if accessKey == "" || secretKey == "" || region == "" {
		fmt.Fprintln(d.out, "Error: All credential fields are required.")
		return nil
	}

	fmt.Fprintln(d.out, "\nValidating credentials...")
	sess := d.validate(ctx, aws.ValidateInput{
		AccessKey: accessKey,
		SecretKey: secretKey,
		Region:    region,
	})
	if sess == nil {
		fmt.Fprintln(d.out, "Failed to validate AWS credentials. Please check your input and try again.")
		return nil
	}

	fmt.Fprintln(d.out, "\nSaving Credentials...")
	if err := d.persist(credstore.Profile{
		AccessKey: accessKey,
		SecretKey: secretKey,
		Region:    region,
		Output:    "json",
	}); err != nil {
		fmt.Fprintf(d.out, "Failed to save credentials: %v\n", err)
		return nil
	}
	fmt.Fprintln(d.out, "AWS credentials validated and saved successfully.")
	return nil
}
