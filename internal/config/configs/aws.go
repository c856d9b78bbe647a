package configs

import "time"

// AWS holds the shared AWS client settings. With no static keys the default
// credential chain is used.
type AWS struct {
	Region          string `env:"REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
}

// HasStaticCredentials reports whether both static keys are configured.
func (c AWS) HasStaticCredentials() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}

// SES configures campaign email delivery.
type SES struct {
	From string `env:"FROM" envDefault:"news@localreach.test"`
	// ConfigurationSet is attached to every message when set.
	ConfigurationSet string `env:"CONFIGURATION_SET"`
	// SendTimeout bounds the delivery of one campaign. It runs detached from
	// the request, so a client disconnect does not cut a send short.
	SendTimeout time.Duration `env:"SEND_TIMEOUT" envDefault:"10m"`
}

// S3 configures media uploads.
type S3 struct {
	Bucket     string        `env:"BUCKET" envDefault:"localreach-media"`
	PresignTTL time.Duration `env:"PRESIGN_TTL" envDefault:"15m"`
}
