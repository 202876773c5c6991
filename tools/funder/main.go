package main

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/panjf2000/ants/v2"
	"go.uber.org/atomic"

	"github.com/apscan/go-sdk/client"
	"github.com/apscan/go-sdk/client/wallet"
)

func main() {
	if err := loadConfig(); err != nil {
		fail(err)
	}

	addresses := config.GetStringSlice(CfgAddresses)
	for i := 0; i < config.GetInt(CfgAccounts); i++ {
		account, err := wallet.NewAccount()
		if err != nil {
			fail(err)
		}
		fmt.Printf("generated account %s (seed %s)\n", account.Address(), account.SeedBase58())
		addresses = append(addresses, account.Address().String())
	}
	if len(addresses) == 0 {
		fail(errors.New("nothing to fund: set --addresses or --accounts"))
	}

	restClient := client.NewRestClient(config.GetString(CfgNodeURL))
	faucet := client.NewFaucetClient(config.GetString(CfgFaucetURL), restClient)
	defer faucet.Close()

	amount := config.GetUint64(CfgAmount)

	pool, err := ants.NewPool(config.GetInt(CfgWorkers))
	if err != nil {
		fail(err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	failures := atomic.NewUint64(0)
	for _, address := range addresses {
		address := address
		wg.Add(1)
		if submitErr := pool.Submit(func() {
			defer wg.Done()
			if fundErr := faucet.FundAccount(address, amount); fundErr != nil {
				failures.Inc()
				fmt.Printf("funding %s failed: %s\n", address, fundErr)
				return
			}
			fmt.Printf("funded %s with %d coins\n", address, amount)
		}); submitErr != nil {
			wg.Done()
			failures.Inc()
			fmt.Printf("funding %s failed: %s\n", address, submitErr)
		}
	}
	wg.Wait()

	if failed := failures.Load(); failed > 0 {
		fail(fmt.Errorf("%d of %d funding requests failed", failed, len(addresses)))
	}
}

func fail(err error) {
	fmt.Println(err)
	os.Exit(1)
}
