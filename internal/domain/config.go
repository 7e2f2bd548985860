package domain

type Config struct {
	FQDN       string `yaml:"fqdn"`
	PrivateKey string `yaml:"privatekey"`
	// Address derived from PrivateKey; tokens must be signed by it.
	Issuer string `yaml:"issuer"`
}
