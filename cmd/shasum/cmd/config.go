package cmd

import (
	"github.com/spf13/viper"

	"github.com/IamAraragi/sha256-go/logging"
	"github.com/IamAraragi/sha256-go/version"
)

const (
	defaultLogDir      = "shasum-logs"
	defaultLogFilename = "shasum"
	defaultLogLevel    = "info"
)

var (
	flagLogDir      string
	flagLogLevel    string
	cfgFile         string
	usingConfigFile bool
	config          = new(Config)
)

type Config struct {
	LogDir   string `json:"log_dir"`
	LogLevel string `json:"log_level"`
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath("./")
		viper.SetConfigName(".shasum")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		usingConfigFile = true
	}

	// Load config to memory.
	config.LogDir = viper.GetString("log_dir")
	if config.LogDir == "" {
		config.LogDir = defaultLogDir
	}
	config.LogLevel = viper.GetString("log_level")
	if config.LogLevel == "" {
		config.LogLevel = defaultLogLevel
	}
}

// initLogger initializes logging module by config.
func initLogger() {
	logging.Init(config.LogDir, defaultLogFilename, config.LogLevel, 1, false)
}

// logBasicInfo logs the basic info on initializing.
func logBasicInfo() {
	logging.VPrint(logging.INFO, "shasum version "+version.GetVersion(),
		logging.LogFormat{"config_file": usingConfigFile})
}
