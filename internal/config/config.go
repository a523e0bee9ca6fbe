package config

import (
	"crypto/rsa"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"

	"github.com/idrealestat/aqariai-crm/internal/utils"
)

const AppName = "crm-service"

type Config struct {
	AppPort string `envconfig:"app_port" default:"8080"`
	AppUrl  string `envconfig:"app_url" default:"http://localhost:3000"`

	// StorageDriver selects the repository backend: "postgres" or
	// "memory" (dev/demo only, state is lost on restart).
	StorageDriver string `envconfig:"storage_driver" default:"postgres"`
	DatabaseURL   string `envconfig:"database_url" default:""`

	// BankRatesURL points at the bankRates.json feed; empty means the
	// simulated rates are used from the start.
	BankRatesURL string `envconfig:"bank_rates_url" default:""`

	// JWTPublicKeyPEM verifies RS256 access tokens minted by the auth
	// gateway. AuthDisabled skips the middleware for local development.
	JWTPublicKeyPEM string `envconfig:"jwt_public_key" default:""`
	AuthDisabled    bool   `envconfig:"auth_disabled" default:"false"`

	SeedDemoData bool `envconfig:"seed_demo_data" default:"false"`

	rsaPublicKey *rsa.PublicKey
}

// LoadConfig reads .env when present, then the AQARIAI_* environment.
func LoadConfig() (*Config, error) {
	godotenv.Load()

	var c Config
	if err := envconfig.Process("aqariai", &c); err != nil {
		return nil, errors.WithStack(err)
	}

	if c.StorageDriver != "postgres" && c.StorageDriver != "memory" {
		return nil, errors.Errorf("invalid AQARIAI_STORAGE_DRIVER %q (want postgres or memory)", c.StorageDriver)
	}
	if c.StorageDriver == "postgres" && c.DatabaseURL == "" {
		return nil, errors.New("AQARIAI_DATABASE_URL is required with the postgres storage driver")
	}

	if !c.AuthDisabled {
		if c.JWTPublicKeyPEM == "" {
			return nil, errors.New("AQARIAI_JWT_PUBLIC_KEY is required unless AQARIAI_AUTH_DISABLED=true")
		}
		pub, err := jwt.ParseRSAPublicKeyFromPEM([]byte(c.JWTPublicKeyPEM))
		if err != nil {
			return nil, errors.Wrap(err, "parse AQARIAI_JWT_PUBLIC_KEY")
		}
		c.rsaPublicKey = pub
	} else {
		utils.Logger.Warn("Auth is disabled; API routes are unprotected")
	}

	utils.Logger.Infof("Loaded config (storage=%s, seed=%t)", c.StorageDriver, c.SeedDemoData)
	return &c, nil
}

func (c *Config) RSAPublicKey() *rsa.PublicKey {
	return c.rsaPublicKey
}
