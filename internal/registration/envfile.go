package registration

import (
	"fmt"
	"os"

	xerrors "FiberAgent-Registry/internal/errors"
)

const envFileMode = 0o644

// RenderEnv returns the environment template for prof. The output depends
// only on prof, so repeated renders are byte-identical.
func RenderEnv(prof Profile) string {
	return fmt.Sprintf(`
# FiberAgent ERC-8004 Registration
MONAD_RPC=%s
MONAD_PRIVATE_KEY=0x...  # Set this to your private key
MONAD_WALLET=%s

# After registration, add:
FIBERAGENT_TOKEN_ID=  # Token ID from registration tx

# Identity Registry
IDENTITY_REGISTRY=%s
REPUTATION_REGISTRY=%s

# Agent Card
FIBERAGENT_CARD_URI=%s
`, prof.RPCURL, prof.Wallet, prof.IdentityRegistry, prof.ReputationRegistry, prof.CardURI)
}

// WriteEnv writes the rendered template to path, truncating whatever was
// there before.
func WriteEnv(path string, prof Profile) error {
	if err := os.WriteFile(path, []byte(RenderEnv(prof)), envFileMode); err != nil {
		return xerrors.Wrap(xerrors.CodeStorageFailure, err, "write env template",
			xerrors.WithMetadata("path", path))
	}
	return nil
}
