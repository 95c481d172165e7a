// Where: internal/codeartifact/sdk.go
// What: Native SDK token fetch.
// Why: Cover machines that carry credentials but not the aws binary.
package codeartifact

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/codeartifact"

	"github.com/catr-tool/catr/internal/config"
)

func sdkAuthorizationToken(ctx context.Context, cfg config.Config) (string, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithSharedConfigProfile(cfg.Profile),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return "", err
	}

	client := codeartifact.NewFromConfig(awsCfg)
	out, err := client.GetAuthorizationToken(ctx, &codeartifact.GetAuthorizationTokenInput{
		Domain:      aws.String(cfg.Domain),
		DomainOwner: aws.String(cfg.DomainOwner),
	})
	if err != nil {
		return "", err
	}
	return aws.ToString(out.AuthorizationToken), nil
}
