package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/atodeyomu/pkg/cli/config"
	"github.com/secmon-lab/atodeyomu/pkg/domain/interfaces"
	"github.com/urfave/cli/v3"
)

func cmdTenants() *cli.Command {
	var (
		firestoreCfg config.Firestore
		cryptoCfg    config.Crypto
	)

	return &cli.Command{
		Name:  "tenants",
		Usage: "List workspaces that installed the app",
		Flags: joinFlags(
			firestoreCfg.Flags(),
			cryptoCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := openRepository(ctx, &firestoreCfg, &cryptoCfg)
			if err != nil {
				return err
			}
			defer repo.Close()

			return printTenants(ctx, os.Stdout, repo)
		},
	}
}

// printTenants writes one line per workspace. Access tokens are never printed.
func printTenants(ctx context.Context, w io.Writer, repo interfaces.Repository) error {
	tenants, err := repo.ListTenantConfigs(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list tenants")
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TEAM ID\tCREATED AT\tTRIGGERS")
	for _, cfg := range tenants {
		fmt.Fprintf(tw, "%s\t%s\t%s\n",
			cfg.TeamID,
			cfg.CreatedAt.UTC().Format(time.RFC3339),
			strings.Join(cfg.Triggers.Strings(), ","),
		)
	}
	return tw.Flush()
}
