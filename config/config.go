package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	// KeyfileKey is the path to the json-formatted account key-file.
	KeyfileKey = "KEYFILE"
	// MobilecoindRPCAddrKey is the <host:port> of the mobilecoind gRPC interface.
	MobilecoindRPCAddrKey = "MOBILECOIND_RPC_ADDR"
	// DeqsRPCAddrKey is the <host:port> of the DEQS gRPC interface. Optional;
	// when empty all swap functionality is disabled.
	DeqsRPCAddrKey = "DEQS_RPC_ADDR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// PollIntervalKey is the interval in milliseconds between ledger-view polls.
	PollIntervalKey = "POLL_INTERVAL"
	// QuoteRefreshIntervalKey is the interval in milliseconds between quote book refreshes.
	QuoteRefreshIntervalKey = "QUOTE_REFRESH_INTERVAL"
	// CallTimeoutKey is the per-call timeout in milliseconds for peer RPCs.
	CallTimeoutKey = "CALL_TIMEOUT"
	// SubmitTimeoutKey is the duration in seconds after which a submitted
	// transaction not observed on the ledger is timed out and its outputs released.
	SubmitTimeoutKey = "SUBMIT_TIMEOUT"
	// StartTimeoutKey is the duration in seconds granted to the first sync poll.
	StartTimeoutKey = "START_TIMEOUT"
	// ErrorQueueSizeKey caps the number of retained user-facing error messages.
	ErrorQueueSizeKey = "ERROR_QUEUE_SIZE"
	// StatsIntervalKey defines the interval in seconds for printing basic session statistics.
	StatsIntervalKey = "STATS_INTERVAL"
)

var vip *viper.Viper

// InitConfig sets defaults and binds the BUDDY_* environment.
func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("BUDDY")
	vip.AutomaticEnv()

	vip.SetDefault(MobilecoindRPCAddrKey, "127.0.0.1:4444")
	vip.SetDefault(DeqsRPCAddrKey, "")
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(PollIntervalKey, 1000)
	vip.SetDefault(QuoteRefreshIntervalKey, 2000)
	vip.SetDefault(CallTimeoutKey, 3000)
	vip.SetDefault(SubmitTimeoutKey, 30)
	vip.SetDefault(StartTimeoutKey, 60)
	vip.SetDefault(ErrorQueueSizeKey, 10)
	vip.SetDefault(StatsIntervalKey, 600)

	return nil
}

// Validate checks that required values are set.
func Validate() error {
	if GetString(KeyfileKey) == "" {
		return fmt.Errorf("%s must be set", KeyfileKey)
	}
	if GetString(MobilecoindRPCAddrKey) == "" {
		return fmt.Errorf("%s must be set", MobilecoindRPCAddrKey)
	}
	return nil
}

// Set overrides a config value, typically from a CLI flag.
func Set(key string, value interface{}) {
	vip.Set(key, value)
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

// GetMillis returns the value of a milliseconds key as a duration.
func GetMillis(key string) time.Duration {
	return time.Duration(vip.GetInt(key)) * time.Millisecond
}

// GetSeconds returns the value of a seconds key as a duration.
func GetSeconds(key string) time.Duration {
	return time.Duration(vip.GetInt(key)) * time.Second
}
