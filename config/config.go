package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env string `toml:"env"`

	Database  DatabaseConfigs  `toml:"database"`
	ApiServer ServerConfigs    `toml:"api_server"`
	Auth      AuthConfigs      `toml:"auth"`
	Session   SessionConfigs   `toml:"session"`
	Social    SocialConfigs    `toml:"social"`
	Redis     RedisConfigs     `toml:"redis"`
	Email     EmailConfigs     `toml:"email"`
	Notif     NotificationCfgs `toml:"notification"`
}

type DatabaseConfigs struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Database string `toml:"database"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string `toml:"host"`
	Port string `toml:"port"`
	Cert string `toml:"cert"`
	Key  string `toml:"key"`

	// Endpoint is the public base URL of this API, used to build OAuth
	// redirect URIs.
	Endpoint string `toml:"endpoint"`

	// FrontendEndpoint is where browser flows land after success/error.
	FrontendEndpoint string `toml:"frontend_endpoint"`

	AllowedOrigins []string `toml:"allowed_origins"`

	DefaultLimit int `toml:"default_limit"`
	MaxLimit     int `toml:"max_limit"`
}

type AuthConfigs struct {
	TokenSecret  string       `toml:"token_secret"`
	AccessToken  TokenConfigs `toml:"access_token"`
	RefreshToken TokenConfigs `toml:"refresh_token"`

	Google OIDCConfigs `toml:"google"`
}

type TokenConfigs struct {
	Name       string        `toml:"name"`
	Expiration time.Duration `toml:"expiration"`
}

type OIDCConfigs struct {
	Name         string `toml:"name"`
	Issuer       string `toml:"issuer"`
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	IDField      string `toml:"id_field"`
}

type SessionConfigs struct {
	Secret string `toml:"secret"`
	Name   string `toml:"name"`
}

type SocialConfigs struct {
	// StateExpiration bounds the connect->callback window. Expired rows
	// are rejected at lookup and reclaimed by the cron sweep.
	StateExpiration time.Duration `toml:"state_expiration"`

	Twitter   OAuth2Configs `toml:"twitter"`
	LinkedIn  OAuth2Configs `toml:"linkedin"`
	Instagram OAuth2Configs `toml:"instagram"`
	GitHub    OAuth2Configs `toml:"github"`
}

type OAuth2Configs struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
}

type RedisConfigs struct {
	Addr string `toml:"addr"`
}

type EmailConfigs struct {
	Endpoint string `toml:"endpoint"`
	APIKey   string `toml:"api_key"`
	Sender   string `toml:"sender"`
}

type NotificationCfgs struct {
	// NewAccountWindow is how long system messages keep showing up in the
	// feed of a fresh account.
	NewAccountWindow time.Duration `toml:"new_account_window"`
}
