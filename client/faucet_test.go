package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apscan/go-sdk/packages/jsonmodels"
)

// fakeNetwork serves both the faucet's mint endpoint and the node's
// transactions endpoint so that a FaucetClient can run against it end to end.
type fakeNetwork struct {
	mu sync.Mutex

	mintStatus  int
	mintHashes  []string
	mintRawBody string
	mintCalls   int
	mintAmount  string
	mintAddress string

	pendingPolls map[string]int
	failedStatus map[string]string
	txnRequests  []string

	server *httptest.Server
}

func newFakeNetwork(t *testing.T) *fakeNetwork {
	n := &fakeNetwork{
		mintStatus:   http.StatusOK,
		pendingPolls: make(map[string]int),
		failedStatus: make(map[string]string),
	}
	n.server = httptest.NewServer(http.HandlerFunc(n.handle))
	t.Cleanup(n.server.Close)
	return n
}

func (n *fakeNetwork) handle(w http.ResponseWriter, r *http.Request) {
	n.mu.Lock()
	defer n.mu.Unlock()

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/mint":
		n.mintCalls++
		n.mintAmount = r.URL.Query().Get("amount")
		n.mintAddress = r.URL.Query().Get("address")
		w.WriteHeader(n.mintStatus)
		if n.mintRawBody != "" {
			fmt.Fprint(w, n.mintRawBody)
			return
		}
		_ = json.NewEncoder(w).Encode(n.mintHashes)

	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/transactions/"):
		txnHash := strings.TrimPrefix(r.URL.Path, "/transactions/")
		n.txnRequests = append(n.txnRequests, txnHash)

		txn := jsonmodels.Transaction{Type: jsonmodels.TypeUserTransaction, Hash: txnHash, Success: true}
		if n.pendingPolls[txnHash] > 0 {
			n.pendingPolls[txnHash]--
			txn = jsonmodels.Transaction{Type: jsonmodels.TypePendingTransaction, Hash: txnHash}
		} else if vmStatus, failed := n.failedStatus[txnHash]; failed {
			txn.Success = false
			txn.VMStatus = vmStatus
		}
		_ = json.NewEncoder(w).Encode(txn)

	default:
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(jsonmodels.ErrorResponse{Message: "unknown route"})
	}
}

// waitedHashes returns the distinct transaction hashes that were polled, in
// order of their first poll.
func (n *fakeNetwork) waitedHashes() []string {
	n.mu.Lock()
	defer n.mu.Unlock()

	var hashes []string
	seen := make(map[string]bool)
	for _, txnHash := range n.txnRequests {
		if !seen[txnHash] {
			seen[txnHash] = true
			hashes = append(hashes, txnHash)
		}
	}
	return hashes
}

func newFaucetUnderTest(n *fakeNetwork) *FaucetClient {
	rest := NewRestClient(n.server.URL, WithPollInterval(time.Millisecond), WithPollTimeout(100*time.Millisecond))
	return NewFaucetClient(n.server.URL, rest)
}

func TestFundAccount(t *testing.T) {
	n := newFakeNetwork(t)
	n.mintHashes = []string{"0xdeadbeef"}

	faucet := newFaucetUnderTest(n)
	defer faucet.Close()

	require.NoError(t, faucet.FundAccount("0xabc", 1000))

	assert.Equal(t, 1, n.mintCalls)
	assert.Equal(t, "1000", n.mintAmount)
	assert.Equal(t, "0xabc", n.mintAddress)
	assert.Equal(t, []string{"0xdeadbeef"}, n.waitedHashes())
}

func TestFundAccountWaitsInOrder(t *testing.T) {
	n := newFakeNetwork(t)
	n.mintHashes = []string{"0x1", "0x2", "0x3"}
	n.pendingPolls["0x2"] = 2

	faucet := newFaucetUnderTest(n)
	defer faucet.Close()

	require.NoError(t, faucet.FundAccount("0xabc", 42))
	assert.Equal(t, []string{"0x1", "0x2", "0x3"}, n.waitedHashes())
}

func TestFundAccountMintFailure(t *testing.T) {
	n := newFakeNetwork(t)
	n.mintStatus = http.StatusInternalServerError
	n.mintRawBody = "insufficient funds"

	faucet := newFaucetUnderTest(n)
	defer faucet.Close()

	err := faucet.FundAccount("0xabc", 1000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient funds")
	assert.Empty(t, n.waitedHashes())
}

func TestFundAccountWaitFailureAbortsRemainingWaits(t *testing.T) {
	n := newFakeNetwork(t)
	n.mintHashes = []string{"0x1", "0x2", "0x3"}
	n.failedStatus["0x2"] = "Move abort: out of gas"

	faucet := newFaucetUnderTest(n)
	defer faucet.Close()

	err := faucet.FundAccount("0xabc", 1000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0x2")
	assert.Contains(t, err.Error(), "out of gas")
	assert.Equal(t, []string{"0x1", "0x2"}, n.waitedHashes())
}

func TestFundAccountMalformedMintResponse(t *testing.T) {
	n := newFakeNetwork(t)
	n.mintRawBody = `{"not": "an array of hashes"}`

	faucet := newFaucetUnderTest(n)
	defer faucet.Close()

	err := faucet.FundAccount("0xabc", 1000)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to parse faucet mint response")
	assert.Empty(t, n.waitedHashes())
}

func TestFundAccountEmptyHashList(t *testing.T) {
	n := newFakeNetwork(t)
	n.mintHashes = []string{}

	faucet := newFaucetUnderTest(n)
	defer faucet.Close()

	require.NoError(t, faucet.FundAccount("0xabc", 0))
	assert.Empty(t, n.waitedHashes())
}

func TestFaucetClientCloseIsIdempotent(t *testing.T) {
	n := newFakeNetwork(t)

	faucet := newFaucetUnderTest(n)
	faucet.Close()
	faucet.Close()

	assert.Equal(t, 0, n.mintCalls)
}
