package jwt

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// PrivKeyToAddr returns the address of a hex encoded secp256k1 private key.
func PrivKeyToAddr(privatekey string) (string, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privatekey, "0x"))
	if err != nil {
		return "", err
	}
	return crypto.PubkeyToAddress(key.PublicKey).Hex(), nil
}

// SignBytes signs the keccak256 digest of data.
func SignBytes(data []byte, privatekey string) ([]byte, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privatekey, "0x"))
	if err != nil {
		return nil, err
	}
	return crypto.Sign(crypto.Keccak256(data), key)
}

// VerifySignature checks that signature over data was produced by address.
func VerifySignature(data, signature []byte, address string) error {
	if len(signature) != crypto.SignatureLength {
		return fmt.Errorf("invalid signature length %d", len(signature))
	}

	pub, err := crypto.SigToPub(crypto.Keccak256(data), signature)
	if err != nil {
		return err
	}

	signer := crypto.PubkeyToAddress(*pub).Hex()
	if !strings.EqualFold(signer, address) {
		return fmt.Errorf("signature mismatch: signed by %s, expected %s", signer, address)
	}
	return nil
}
