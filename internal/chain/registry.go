// Package chain holds the static registry of supported chains and the token
// allow-list, including per-chain token deployments. The tables are fixed at
// build time; everything else in the server treats this package as read-only.
package chain

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownChain   = errors.New("chain not supported")
	ErrTokenNotListed = errors.New("token not in allow-list")
	// ErrTokenNotOnChain means the token is allow-listed but has no
	// deployment configured for the resolved chain. This is a server-side
	// data gap, distinct from a validation failure.
	ErrTokenNotOnChain = errors.New("token has no deployment on chain")
	ErrNoChains        = errors.New("no supported chains configured")
)

type Chain struct {
	ID           int64
	Name         string
	NativeSymbol string
	ExplorerURL  string

	// feeRank orders chains by typical transaction cost; the preferred
	// chain for a tip is the lowest-ranked one.
	feeRank int
}

// Deployment is one token contract on one chain.
type Deployment struct {
	Address  string
	Decimals int
}

type Registry struct {
	chains  []Chain
	tokens  map[string]map[int64]Deployment
	presets map[string][3]string
}

// NativeDecimals applies to every supported chain's native asset.
const NativeDecimals = 18

// Default returns the production registry: Base, OP Mainnet, Arbitrum One
// and Ethereum mainnet, with the stable-token deployments tips support.
func Default() *Registry {
	return &Registry{
		chains: []Chain{
			{ID: 8453, Name: "Base", NativeSymbol: "ETH", ExplorerURL: "https://basescan.org", feeRank: 1},
			{ID: 10, Name: "OP Mainnet", NativeSymbol: "ETH", ExplorerURL: "https://optimistic.etherscan.io", feeRank: 2},
			{ID: 42161, Name: "Arbitrum One", NativeSymbol: "ETH", ExplorerURL: "https://arbiscan.io", feeRank: 3},
			{ID: 1, Name: "Ethereum", NativeSymbol: "ETH", ExplorerURL: "https://etherscan.io", feeRank: 4},
		},
		tokens: map[string]map[int64]Deployment{
			"ETH": {}, // native everywhere; no contract
			"USDC": {
				8453:  {Address: "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913", Decimals: 6},
				10:    {Address: "0x0b2c639c533813f4aa9d7837caf62653d097ff85", Decimals: 6},
				42161: {Address: "0xaf88d065e77c8cc2239327c5edb3a432268e5831", Decimals: 6},
				1:     {Address: "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48", Decimals: 6},
			},
			"DAI": {
				8453: {Address: "0x50c5725949a6f0c72e6c4a641f24049a917db0cb", Decimals: 18},
				10:   {Address: "0xda10009cbd5d07dd0cecc66161fc93d7c9000da1", Decimals: 18},
				1:    {Address: "0x6b175474e89094c44da98b954eedeac495271d0f", Decimals: 18},
			},
			"DEGEN": {
				8453: {Address: "0x4ed4e862860bed51a9570b96d89af5e1b0efefed", Decimals: 18},
			},
		},
		presets: map[string][3]string{
			"ETH":   {"0.01", "0.05", "0.1"},
			"USDC":  {"1", "5", "10"},
			"DAI":   {"1", "5", "10"},
			"DEGEN": {"100", "500", "1000"},
		},
	}
}

// ByID looks up a supported chain.
func (r *Registry) ByID(id int64) (Chain, error) {
	for _, c := range r.chains {
		if c.ID == id {
			return c, nil
		}
	}
	return Chain{}, fmt.Errorf("%w: %d", ErrUnknownChain, id)
}

// Preferred returns the lowest-fee supported chain, used when a tip request
// does not name one.
func (r *Registry) Preferred() (Chain, error) {
	if len(r.chains) == 0 {
		return Chain{}, ErrNoChains
	}
	chains := make([]Chain, len(r.chains))
	copy(chains, r.chains)
	sort.Slice(chains, func(i, j int) bool { return chains[i].feeRank < chains[j].feeRank })
	return chains[0], nil
}

// Listed reports whether the symbol is in the token allow-list.
func (r *Registry) Listed(symbol string) bool {
	_, ok := r.tokens[symbol]
	return ok
}

// IsNative reports whether the symbol is the native asset of the chain.
func (r *Registry) IsNative(symbol string, c Chain) bool {
	return symbol == c.NativeSymbol
}

// DeploymentOn resolves the token contract for a chain. Returns
// ErrTokenNotOnChain when the token is listed but not deployed there.
func (r *Registry) DeploymentOn(symbol string, chainID int64) (Deployment, error) {
	deployments, ok := r.tokens[symbol]
	if !ok {
		return Deployment{}, fmt.Errorf("%w: %s", ErrTokenNotListed, symbol)
	}
	d, ok := deployments[chainID]
	if !ok {
		return Deployment{}, fmt.Errorf("%w: %s on chain %d", ErrTokenNotOnChain, symbol, chainID)
	}
	return d, nil
}

// Presets returns the three one-tap tip amounts for a token, smallest first.
func (r *Registry) Presets(symbol string) [3]string {
	if p, ok := r.presets[symbol]; ok {
		return p
	}
	return r.presets["ETH"]
}

// NewRegistry builds a registry from explicit tables. Intended for tests;
// production uses Default.
func NewRegistry(chains []Chain, tokens map[string]map[int64]Deployment, presets map[string][3]string) *Registry {
	return &Registry{chains: chains, tokens: tokens, presets: presets}
}

// TestChain builds a Chain with an explicit fee rank, for registry tables in
// tests.
func TestChain(id int64, name, native string, feeRank int) Chain {
	return Chain{ID: id, Name: name, NativeSymbol: native, feeRank: feeRank}
}
