package entity

// Credential is one accepted identifier/secret pair.
type Credential struct {
	Identifier string `mapstructure:"identifier"`
	Secret     string `mapstructure:"secret"`
}
