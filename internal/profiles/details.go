package profiles

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/config"
)

// Details describes the shared-config settings of a single profile.
type Details struct {
	Name        string
	Region      string
	SSOStartURL string
	RoleARN     string
}

// Describe resolves the settings of each named profile from the shared
// files. It only parses the files and never contacts AWS. Profiles the
// loader cannot resolve are returned with empty settings.
func Describe(ctx context.Context, src Sources, names []string) ([]Details, error) {
	details := make([]Details, 0, len(names))
	for _, name := range names {
		d, err := describeProfile(ctx, src, name)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}

	return details, nil
}

func describeProfile(ctx context.Context, src Sources, name string) (Details, error) {
	d := Details{Name: name}

	shared, err := config.LoadSharedConfigProfile(ctx, name, func(o *config.LoadSharedConfigOptions) {
		o.ConfigFiles = nonEmpty(src.ConfigPath)
		o.CredentialsFiles = nonEmpty(src.CredentialsPath)
	})
	if err != nil {
		if ctx.Err() != nil {
			return d, fmt.Errorf("describe profile %q: %w", name, ctx.Err())
		}
		// Sections the loader does not recognise, such as a bare [name]
		// in the config file, are listed without settings.
		return d, nil
	}

	d.Region = shared.Region
	d.RoleARN = shared.RoleARN
	d.SSOStartURL = shared.SSOStartURL
	if d.SSOStartURL == "" && shared.SSOSession != nil {
		d.SSOStartURL = shared.SSOSession.SSOStartURL
	}

	return d, nil
}

func nonEmpty(path string) []string {
	if strings.TrimSpace(path) == "" {
		return []string{}
	}
	return []string{path}
}
