// Package wallet provides the account and address value types used by the SDK.
package wallet

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// AddressLength is the byte length of an AccountAddress.
const AddressLength = 32

// signature scheme identifier appended to the public key when deriving the
// authentication key (single ed25519 signer)
const singleSignerScheme = byte(0x00)

// AccountAddress is the on-chain identifier of an account.
type AccountAddress [AddressLength]byte

// AddressFromPublicKey derives the account address of a fresh account that
// authenticates with the given ed25519 public key.
func AddressFromPublicKey(publicKey ed25519.PublicKey) AccountAddress {
	hasher := sha3.New256()
	hasher.Write(publicKey)
	hasher.Write([]byte{singleSignerScheme})

	var address AccountAddress
	copy(address[:], hasher.Sum(nil))
	return address
}

// AddressFromHex parses an AccountAddress from its hex representation.
// A 0x prefix is optional and short representations are padded on the left.
func AddressFromHex(addressHex string) (AccountAddress, error) {
	var address AccountAddress

	trimmed := strings.TrimPrefix(addressHex, "0x")
	if len(trimmed) == 0 || len(trimmed) > 2*AddressLength {
		return address, errors.Errorf("invalid account address %q", addressHex)
	}
	if len(trimmed)%2 != 0 {
		trimmed = "0" + trimmed
	}

	addressBytes, err := hex.DecodeString(trimmed)
	if err != nil {
		return address, errors.Wrapf(err, "invalid account address %q", addressHex)
	}
	copy(address[AddressLength-len(addressBytes):], addressBytes)

	return address, nil
}

// Bytes returns the raw bytes of the address.
func (a AccountAddress) Bytes() []byte {
	return a[:]
}

// String returns the 0x prefixed hex representation of the address.
func (a AccountAddress) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Account represents a local account together with its signing key.
type Account struct {
	privateKey ed25519.PrivateKey
	address    AccountAddress
}

// NewAccount generates a new account with a random key pair.
func NewAccount() (*Account, error) {
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, errors.Wrap(err, "unable to generate key pair")
	}
	return accountFromPrivateKey(privateKey), nil
}

// AccountFromSeed restores the account derived from the given ed25519 seed.
func AccountFromSeed(seed []byte) (*Account, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, errors.Errorf("invalid seed length %d", len(seed))
	}
	return accountFromPrivateKey(ed25519.NewKeyFromSeed(seed)), nil
}

// AccountFromBase58Seed restores the account derived from the given base58 encoded seed.
func AccountFromBase58Seed(encodedSeed string) (*Account, error) {
	seed, err := base58.Decode(encodedSeed)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode seed")
	}
	return AccountFromSeed(seed)
}

func accountFromPrivateKey(privateKey ed25519.PrivateKey) *Account {
	return &Account{
		privateKey: privateKey,
		address:    AddressFromPublicKey(privateKey.Public().(ed25519.PublicKey)),
	}
}

// Address returns the account address.
func (a *Account) Address() AccountAddress {
	return a.address
}

// AuthKey returns the hex representation of the account's authentication key.
// For a fresh account it equals the hex of the address without the 0x prefix.
func (a *Account) AuthKey() string {
	return hex.EncodeToString(a.address[:])
}

// PubKey returns the account's ed25519 public key.
func (a *Account) PubKey() ed25519.PublicKey {
	return a.privateKey.Public().(ed25519.PublicKey)
}

// Sign signs the given data with the account's private key.
func (a *Account) Sign(data []byte) []byte {
	return ed25519.Sign(a.privateKey, data)
}

// SeedBase58 returns the base58 encoded seed of the account's private key.
// It is the backup representation of the account.
func (a *Account) SeedBase58() string {
	return base58.Encode(a.privateKey.Seed())
}
