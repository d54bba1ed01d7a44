package config

import (
	"time"

	"github.com/BurntSushi/toml"
)

// Load reads a TOML config file. Values not present in the file keep the
// defaults below; the cmd layer applies environment overrides on top.
func Load(path string) (Configs, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Configs{}, err
	}

	return cfg, nil
}

func Default() Configs {
	return Configs{
		Env: "local",
		ApiServer: ServerConfigs{
			Host:         "localhost",
			Port:         "8080",
			DefaultLimit: 20,
			MaxLimit:     50,
		},
		Auth: AuthConfigs{
			AccessToken: TokenConfigs{
				Name:       "access_token",
				Expiration: 5 * time.Minute,
			},
			RefreshToken: TokenConfigs{
				Name:       "refresh_token",
				Expiration: 24 * time.Hour,
			},
		},
		Session: SessionConfigs{
			Name: "mylinked_session",
		},
		Social: SocialConfigs{
			StateExpiration: time.Hour,
		},
		Notif: NotificationCfgs{
			NewAccountWindow: 7 * 24 * time.Hour,
		},
	}
}
