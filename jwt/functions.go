package jwt

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const algorithm = "ES256K-KECCAK"

// Create creates a server signed JWT
func Create(claims Claims, privatekey string) (string, error) {
	header := Header{
		Type:      "JWT",
		Algorithm: algorithm,
	}
	headerStr, err := json.Marshal(header)
	if err != nil {
		return "", err
	}

	payloadStr, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}

	headerB64 := base64.RawURLEncoding.EncodeToString(headerStr)
	payloadB64 := base64.RawURLEncoding.EncodeToString(payloadStr)
	target := headerB64 + "." + payloadB64

	signatureBytes, err := SignBytes([]byte(target), privatekey)
	if err != nil {
		return "", err
	}
	signatureB64 := base64.RawURLEncoding.EncodeToString(signatureBytes)

	return target + "." + signatureB64, nil
}

// Issue creates a token for subject valid for ttl.
func Issue(subject, audience string, ttl time.Duration, privatekey string) (string, error) {
	issuer, err := PrivKeyToAddr(privatekey)
	if err != nil {
		return "", err
	}

	now := time.Now()
	return Create(Claims{
		Issuer:         issuer,
		Subject:        subject,
		Audience:       audience,
		IssuedAt:       strconv.FormatInt(now.Unix(), 10),
		ExpirationTime: strconv.FormatInt(now.Add(ttl).Unix(), 10),
	}, privatekey)
}

// Validate checks is jwt signature valid and not expired
func Validate(jwt string) (*Header, *Claims, error) {

	split := strings.Split(jwt, ".")
	if len(split) != 3 {
		return nil, nil, fmt.Errorf("invalid jwt format")
	}

	var header Header
	headerBytes, err := base64.RawURLEncoding.DecodeString(split[0])
	if err != nil {
		return nil, nil, err
	}
	err = json.Unmarshal(headerBytes, &header)
	if err != nil {
		return nil, nil, err
	}

	// check jwt type
	if header.Type != "JWT" || header.Algorithm != algorithm {
		return nil, nil, fmt.Errorf("unsupported JWT type")
	}

	payloadBytes, err := base64.RawURLEncoding.DecodeString(split[1])
	if err != nil {
		return nil, nil, err
	}

	var claims Claims
	err = json.Unmarshal(payloadBytes, &claims)
	if err != nil {
		return nil, nil, err
	}

	// check exp
	if claims.ExpirationTime != "" {
		exp, err := strconv.ParseInt(claims.ExpirationTime, 10, 64)
		if err != nil {
			return nil, nil, err
		}
		if exp < time.Now().Unix() {
			return nil, nil, fmt.Errorf("jwt is already expired")
		}
	}

	// check signature
	signatureBytes, err := base64.RawURLEncoding.DecodeString(split[2])
	if err != nil {
		return nil, nil, err
	}

	// the signer is always the issuer; kid may only repeat it
	if claims.Issuer == "" {
		return nil, nil, fmt.Errorf("missing issuer")
	}
	if header.KeyID != "" && !strings.EqualFold(header.KeyID, claims.Issuer) {
		return nil, nil, fmt.Errorf("key id %s does not match issuer %s", header.KeyID, claims.Issuer)
	}

	err = VerifySignature([]byte(split[0]+"."+split[1]), signatureBytes, claims.Issuer)
	if err != nil {
		return nil, nil, err
	}

	return &header, &claims, nil
}
