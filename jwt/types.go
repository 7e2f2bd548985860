package jwt

// Header is the JOSE header of a token.
type Header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
	KeyID     string `json:"kid,omitempty"`
}

// Claims is the payload of a token. Subject carries the actor id.
type Claims struct {
	Issuer         string `json:"iss,omitempty"` // signer address
	Subject        string `json:"sub,omitempty"` // actor id
	Audience       string `json:"aud,omitempty"` // fqdn
	ExpirationTime string `json:"exp,omitempty"` // unix seconds
	IssuedAt       string `json:"iat,omitempty"` // unix seconds
	JWTID          string `json:"jti,omitempty"`
}
