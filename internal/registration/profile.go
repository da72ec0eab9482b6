package registration

import (
	"strings"

	xerrors "FiberAgent-Registry/internal/errors"

	"github.com/ethereum/go-ethereum/common"
)

// Profile groups the constants substituted into the guide and the template.
type Profile struct {
	Network            string
	RPCURL             string
	IdentityRegistry   string
	ReputationRegistry string
	Wallet             string
	CardURI            string
	WalletUIURL        string
	ExplorerAgentURL   string
	ABISourceHost      string
	GasLimit           uint64
	GasBalanceMON      int
}

var defaultProfile = Profile{
	Network:            "Monad Mainnet",
	RPCURL:             "https://mainnet-rpc.monad.com",
	IdentityRegistry:   "0x8004A169FB4a3325136EB29fA0ceB6D2e539a432",
	ReputationRegistry: "0x8004BAa17C55a88189AE136b182e5fdA19dE9b63",
	Wallet:             "0x790b405d466f7fddcee4be90d504eb56e3fedcae",
	CardURI:            "https://openshop-ten.vercel.app/FiberAgent-card.json",
	WalletUIURL:        "https://monadblock.io/tx/new",
	ExplorerAgentURL:   "https://8004scan.io/agent/xxx",
	ABISourceHost:      "8004scan.io",
	GasLimit:           300000,
	GasBalanceMON:      10,
}

// Default returns a copy of the compiled-in Monad mainnet profile.
func Default() Profile {
	return defaultProfile
}

// Validate checks that every address is a well-formed EVM address and that
// no text field is blank.
func (p Profile) Validate() error {
	addresses := []struct {
		field, value string
	}{
		{"identity_registry", p.IdentityRegistry},
		{"reputation_registry", p.ReputationRegistry},
		{"wallet", p.Wallet},
	}
	for _, a := range addresses {
		if !common.IsHexAddress(a.value) {
			return xerrors.New(xerrors.CodeInvalidArgument, "malformed address",
				xerrors.WithSeverity(xerrors.SeverityCritical),
				xerrors.WithMetadata("field", a.field),
				xerrors.WithMetadata("value", a.value))
		}
	}

	texts := []struct {
		field, value string
	}{
		{"network", p.Network},
		{"rpc_url", p.RPCURL},
		{"card_uri", p.CardURI},
		{"wallet_ui_url", p.WalletUIURL},
		{"explorer_agent_url", p.ExplorerAgentURL},
		{"abi_source_host", p.ABISourceHost},
	}
	for _, f := range texts {
		if strings.TrimSpace(f.value) == "" {
			return xerrors.New(xerrors.CodeInvalidArgument, "empty profile field",
				xerrors.WithSeverity(xerrors.SeverityCritical),
				xerrors.WithMetadata("field", f.field))
		}
	}
	if p.GasLimit == 0 {
		return xerrors.New(xerrors.CodeInvalidArgument, "gas limit must be positive",
			xerrors.WithSeverity(xerrors.SeverityCritical))
	}
	return nil
}
