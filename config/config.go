package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config ...
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Campaign CampaignConfig `mapstructure:"campaign"`
	ChatDB   ChatDBConfig   `mapstructure:"chat_db"`
}

// CampaignConfig for the campaign inputs and throttle
type CampaignConfig struct {
	ContactsPath  string `mapstructure:"contacts_path"`
	StatePath     string `mapstructure:"state_path"`
	ScriptPath    string `mapstructure:"script_path"`
	RatePerMinute int    `mapstructure:"rate_per_minute"`
}

// Load reads config.yml from the working directory, with environment
// variable override (e.g. CAMPAIGN_STATE_PATH).
func Load() Config {
	vip := viper.New()
	vip.SetConfigName("config")
	vip.SetConfigType("yml")
	vip.AddConfigPath(".")

	vip.AutomaticEnv()
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	err := vip.ReadInConfig()
	if err != nil {
		panic(err)
	}

	var conf Config
	err = vip.Unmarshal(&conf)
	if err != nil {
		panic(err)
	}
	return conf
}
