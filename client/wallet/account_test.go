package wallet

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountFromSeedIsDeterministic(t *testing.T) {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}

	first, err := AccountFromSeed(seed)
	require.NoError(t, err)
	second, err := AccountFromSeed(seed)
	require.NoError(t, err)

	assert.Equal(t, first.Address(), second.Address())
	assert.Equal(t, first.AuthKey(), second.AuthKey())
}

func TestAccountFromSeedRejectsBadLength(t *testing.T) {
	_, err := AccountFromSeed([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestNewAccountsAreDistinct(t *testing.T) {
	first, err := NewAccount()
	require.NoError(t, err)
	second, err := NewAccount()
	require.NoError(t, err)

	assert.NotEqual(t, first.Address(), second.Address())
}

func TestBase58SeedRoundTrip(t *testing.T) {
	account, err := NewAccount()
	require.NoError(t, err)

	restored, err := AccountFromBase58Seed(account.SeedBase58())
	require.NoError(t, err)
	assert.Equal(t, account.Address(), restored.Address())
}

func TestSignVerify(t *testing.T) {
	account, err := NewAccount()
	require.NoError(t, err)

	signature := account.Sign([]byte("TESTDATA1"))

	assert.Equal(t, true, ed25519.Verify(account.PubKey(), []byte("TESTDATA1"), signature))
	assert.Equal(t, false, ed25519.Verify(account.PubKey(), []byte("TESTDATA2"), signature))
}

func TestAddressHexRoundTrip(t *testing.T) {
	account, err := NewAccount()
	require.NoError(t, err)

	parsed, err := AddressFromHex(account.Address().String())
	require.NoError(t, err)
	assert.Equal(t, account.Address(), parsed)
}

func TestAddressFromHexPadsShortAddresses(t *testing.T) {
	parsed, err := AddressFromHex("0x1")
	require.NoError(t, err)
	assert.Equal(t, "0x0000000000000000000000000000000000000000000000000000000000000001", parsed.String())
}

func TestAddressFromHexRejectsGarbage(t *testing.T) {
	_, err := AddressFromHex("0x")
	require.Error(t, err)

	_, err = AddressFromHex("not hex at all")
	require.Error(t, err)
}

func TestAuthKeyMatchesAddress(t *testing.T) {
	account, err := NewAccount()
	require.NoError(t, err)

	assert.Equal(t, "0x"+account.AuthKey(), account.Address().String())
}
