package registration

import (
	"fmt"
	"io"
)

// Printer writes the human readable registration guide.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print emits the summary, the confirmation block, the three manual
// procedures and the post-registration checklist, in that order. It returns
// the first write error encountered.
func (p *Printer) Print(name string, prof Profile) error {
	p.summary(name, prof)
	p.confirmation()
	p.walletOption(prof)
	p.web3pyOption(prof)
	p.ethersOption(prof)
	p.checklist(prof)
	return p.err
}

// PrintSaved reports where the environment template was written.
func (p *Printer) PrintSaved(path string) error {
	p.printf("✅ Template saved to: %s\n", path)
	p.println("   Copy and fill in MONAD_PRIVATE_KEY, then run registration")
	p.println()
	return p.err
}

func (p *Printer) summary(name string, prof Profile) {
	p.println()
	p.println("🚀 FiberAgent ERC-8004 Registration")
	p.println("=====================================")
	p.println()
	p.printf("Agent Name: %s\n", name)
	p.printf("Wallet: %s\n", prof.Wallet)
	p.printf("Network: %s\n\n", prof.Network)
	p.printf("Card URI: %s\n", prof.CardURI)
	p.printf("Registry: %s\n\n", prof.IdentityRegistry)
}

func (p *Printer) confirmation() {
	p.println("✅ FiberAgent Card Created")
	p.println("✅ Card Publicly Accessible")
	p.println("✅ Ready for ERC-8004 Registration")
	p.println()
}

func (p *Printer) walletOption(prof Profile) {
	p.println("📋 Registration Instructions:")
	p.println()
	p.println("Option 1: Using MetaMask/Web Wallet")
	p.println("-----------------------------------")
	p.printf("1. Visit: %s\n", prof.WalletUIURL)
	p.printf("2. Send transaction to: %s\n", prof.IdentityRegistry)
	p.println("3. Function: registerAgent (hex encoded)")
	p.println(`4. Data: encodeFunction("registerAgent(string,address)", [`)
	p.printf("         \"%s\",\n", prof.CardURI)
	p.printf("         \"%s\"\n", prof.Wallet)
	p.println("         ])")
	p.printf("5. Gas Limit: %d\n", prof.GasLimit)
	p.printf("6. Value: 0 (but you have %d MON for gas)\n\n", prof.GasBalanceMON)
}

func (p *Printer) web3pyOption(prof Profile) {
	p.println("Option 2: Using Web3.py (Python)")
	p.println("----------------------------------")
	p.println("Install: pip install web3")
	p.println("Script:")
	p.printf(`
from web3 import Web3

w3 = Web3(Web3.HTTPProvider('%[1]s'))

# Build transaction
contract_abi = [...] # Get from %[2]s
registry = w3.eth.contract(address='%[3]s', abi=contract_abi)

tx_hash = registry.functions.registerAgent(
    "%[4]s",
    "%[5]s"
).transact({'from': "%[5]s"})

receipt = w3.eth.wait_for_transaction_receipt(tx_hash)
print(f"✅ Token ID: {receipt['logs'][0]}")

`, prof.RPCURL, prof.ABISourceHost, prof.IdentityRegistry, prof.CardURI, prof.Wallet)
}

func (p *Printer) ethersOption(prof Profile) {
	p.println()
	p.println("Option 3: Using Ethers.js (Node.js)")
	p.println("-------------------------------------")
	p.println("Install: npm install ethers")
	p.println("Script:")
	p.printf(`
const ethers = require('ethers');

const provider = new ethers.JsonRpcProvider('%[1]s');
const signer = new ethers.Wallet('0x...privateKey', provider);

const registry = new ethers.Contract(
  '%[2]s',
  [{ "name": "registerAgent", "type": "function", 
     "inputs": [{"name": "cardURI", "type": "string"}, 
                {"name": "wallet", "type": "address"}] }],
  signer
);

const tx = await registry.registerAgent(
  "%[3]s",
  "%[4]s"
);

const receipt = await tx.wait();
console.log("✅ Token ID:", receipt.logs[0]);

`, prof.RPCURL, prof.IdentityRegistry, prof.CardURI, prof.Wallet)
}

func (p *Printer) checklist(prof Profile) {
	p.println()
	p.println("📌 After Registration:")
	p.println("1. Save token ID to .env: FIBERAGENT_TOKEN_ID=xxx")
	p.printf("2. Verify on: %s\n", prof.ExplorerAgentURL)
	p.println("3. Reputation auto-updates from purchase data")
	p.println("4. Judges can verify on-chain before awarding prizes")
	p.println()
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) println(args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, args...)
}
