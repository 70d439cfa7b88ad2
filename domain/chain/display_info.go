// Package chain maps chain ids to the names shown in notifications.
package chain

import (
	"github.com/x-xyz/auctionhouse/domain"
)

var chainNames = map[domain.ChainId]string{
	domain.ChainId(1):   "ethereum",
	domain.ChainId(5):   "goerli",
	domain.ChainId(56):  "binance-smart-chain",
	domain.ChainId(97):  "binance-smart-chain-testnet",
	domain.ChainId(137): "polygon",
	domain.ChainId(250): "fantom",
}

// GetChainDisplayName returns domain.ErrNotFound for chains the
// deployment does not know about.
func GetChainDisplayName(chainId domain.ChainId) (string, error) {
	name, ok := chainNames[chainId]
	if !ok {
		return "", domain.ErrNotFound
	}
	return name, nil
}
