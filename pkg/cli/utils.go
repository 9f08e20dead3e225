package cli

import (
	"context"

	"github.com/secmon-lab/atodeyomu/pkg/cli/config"
	"github.com/secmon-lab/atodeyomu/pkg/domain/interfaces"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// openRepository builds the token cipher and the tenant store it protects
func openRepository(ctx context.Context, firestoreCfg *config.Firestore, cryptoCfg *config.Crypto) (interfaces.Repository, error) {
	cipher, err := cryptoCfg.Configure()
	if err != nil {
		return nil, err
	}
	return firestoreCfg.Configure(ctx, cipher)
}
