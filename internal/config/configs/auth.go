package configs

// Auth configures verification of session tokens issued by the hosted auth
// provider.
type Auth struct {
	// JWTSecret is the HS256 key the provider signs access tokens with.
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`
	// Issuer, when set, must match the iss claim.
	Issuer string `env:"ISSUER"`
	// CookieName is the session cookie read when no bearer token is sent.
	CookieName string `env:"COOKIE_NAME" envDefault:"sb-access-token"`
}
