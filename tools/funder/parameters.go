package main

import (
	flag "github.com/spf13/pflag"

	"github.com/apscan/go-sdk/client"
)

const (
	// CfgFaucetURL is the config key of the faucet URL.
	CfgFaucetURL = "faucet-url"
	// CfgNodeURL is the config key of the fullnode API URL.
	CfgNodeURL = "node-url"
	// CfgAddresses is the config key of the addresses to fund.
	CfgAddresses = "addresses"
	// CfgAmount is the config key of the amount minted per account.
	CfgAmount = "amount"
	// CfgWorkers is the config key of the funding parallelism.
	CfgWorkers = "workers"
	// CfgAccounts is the config key of the number of fresh accounts to generate.
	CfgAccounts = "accounts"
)

func init() {
	flag.String(CfgFaucetURL, client.DevnetFaucetURL, "address of the faucet to request funds from")
	flag.String(CfgNodeURL, client.DevnetURL, "address of the fullnode API used to wait for transactions")
	flag.StringSlice(CfgAddresses, nil, "account addresses to fund")
	flag.Uint64(CfgAmount, 10000, "amount of coins to mint per account")
	flag.Int(CfgWorkers, 4, "number of funding requests that run in parallel")
	flag.Int(CfgAccounts, 0, "number of fresh accounts to generate and fund")
}
