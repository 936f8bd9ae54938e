package parameters

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/labstack/gommon/log"
)

const DefaultPrefix = "/agrodog/prod/"

// Loader exports the parameters stored under a path of the SSM Parameter Store
// as environment variables, "/agrodog/prod/DATABASE_HOST" becomes DATABASE_HOST.
type Loader struct {
	client ssm.GetParametersByPathAPIClient
	prefix string
	setenv func(key, value string) error
}

// NewLoader builds a loader from the default AWS credentials chain.
// An empty region falls back to AWS_REGION.
func NewLoader(ctx context.Context, region, prefix string) (*Loader, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	return NewLoaderWithClient(ssm.NewFromConfig(cfg), prefix), nil
}

func NewLoaderWithClient(client ssm.GetParametersByPathAPIClient, prefix string) *Loader {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return &Loader{client: client, prefix: prefix, setenv: os.Setenv}
}

// Load exports every parameter and returns how many were set.
func (l *Loader) Load(ctx context.Context) (int, error) {
	paginator := ssm.NewGetParametersByPathPaginator(l.client, &ssm.GetParametersByPathInput{
		Path:           aws.String(l.prefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	count := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return count, fmt.Errorf("unable to load parameters under %s: %w", l.prefix, err)
		}

		for _, param := range page.Parameters {
			key := strings.TrimPrefix(aws.ToString(param.Name), l.prefix)
			if key == "" || strings.Contains(key, "/") {
				log.Warnf("skipping parameter %s, nested paths are not env vars", aws.ToString(param.Name))
				continue
			}

			if err := l.setenv(key, aws.ToString(param.Value)); err != nil {
				return count, fmt.Errorf("unable to set environment variable %s: %w", key, err)
			}
			count++
		}
	}

	log.Debugf("loaded %d environment variables from %s", count, l.prefix)
	return count, nil
}
