package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mohitkumar/engage/agent"
	"github.com/mohitkumar/engage/analytics"
	"github.com/mohitkumar/engage/config"
	"github.com/mohitkumar/engage/facts"
	"github.com/mohitkumar/engage/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type cfg struct {
	config.Config
}
type cli struct {
	cfg cfg
}

func setupFlags(cmd *cobra.Command) error {
	cmd.Flags().String("config-file", "", "Path to config file.")
	cmd.Flags().String("redis-addr", "localhost:6379", "comma separated list of independent redis host:port")
	cmd.Flags().String("redis-password", "", "redis password")
	cmd.Flags().Int("redis-pool-size", 10, "connection pool size per redis node")
	cmd.Flags().Int("redis-partition-count", 271, "consistent hashing partitions over redis nodes")
	cmd.Flags().Int("redis-connect-retries", 5, "redis ping retries at startup")
	cmd.Flags().Duration("redis-connect-interval", 0, "wait between redis ping retries, defaults to 1s")
	cmd.Flags().String("namespace", "engage", "namespace used in storage")
	cmd.Flags().Int("http-port", 8080, "http port for rest endpoints")
	cmd.Flags().String("storage-impl", "redis", "implementation of underline storage (redis, memory)")
	cmd.Flags().String("log-level", "info", "log level")
	cmd.Flags().String("log-encoding", "json", "log encoding (json, console)")
	cmd.Flags().Duration("cache-ttl", 0, "lifetime of memoised visibility decisions, defaults to 10m")
	cmd.Flags().Duration("metrics-interval", 0, "interval for reporting cache gauges, defaults to 15s")
	cmd.Flags().String("analytics-collector", "noop", "decision audit collector (noop, log-file)")
	cmd.Flags().String("analytics-file", "decisions.log", "file used by the log-file collector")
	cmd.Flags().Int("analytics-queue-size", 1024, "buffered evaluations waiting to be recorded")
	return viper.BindPFlags(cmd.Flags())
}

func (c *cli) setupConfig(cmd *cobra.Command, args []string) error {
	var err error

	configFile, err := cmd.Flags().GetString("config-file")
	if err != nil {
		return err
	}
	viper.SetConfigFile(configFile)
	viper.SetEnvPrefix("engage")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("redis-connect-interval", "1s")
	viper.SetDefault("cache-ttl", "10m")
	viper.SetDefault("metrics-interval", "15s")

	if err = viper.ReadInConfig(); err != nil {
		// it's ok if config file doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configFile != "" {
			return err
		}
	}

	c.cfg.RedisConfig.Addrs = strings.Split(viper.GetString("redis-addr"), ",")
	c.cfg.RedisConfig.Namespace = viper.GetString("namespace")
	c.cfg.RedisConfig.Password = viper.GetString("redis-password")
	c.cfg.RedisConfig.PoolSize = viper.GetInt("redis-pool-size")
	c.cfg.RedisConfig.PartitionCount = viper.GetInt("redis-partition-count")
	c.cfg.RedisConfig.ConnectRetries = viper.GetInt("redis-connect-retries")
	c.cfg.RedisConfig.ConnectRetryInterval = viper.GetDuration("redis-connect-interval")
	c.cfg.HttpPort = viper.GetInt("http-port")
	c.cfg.StorageType = config.StorageType(viper.GetString("storage-impl"))
	c.cfg.LogLevel = viper.GetString("log-level")
	c.cfg.LogEncoding = logger.Encoding(viper.GetString("log-encoding"))
	c.cfg.CacheTTL = viper.GetDuration("cache-ttl")
	c.cfg.MetricsInterval = viper.GetDuration("metrics-interval")
	c.cfg.AnalyticsConfig.CollectorType = analytics.DataCollectorType(viper.GetString("analytics-collector"))
	c.cfg.AnalyticsConfig.FileName = viper.GetString("analytics-file")
	c.cfg.AnalyticsConfig.QueueSize = viper.GetInt("analytics-queue-size")

	// extractor paths only come from the config file, under "extractor"
	c.cfg.ExtractorPaths = facts.DefaultPaths()
	if err = viper.UnmarshalKey("extractor", &c.cfg.ExtractorPaths); err != nil {
		return err
	}
	return logger.Init(c.cfg.LogLevel, c.cfg.LogEncoding)
}

func (c *cli) run(cmd *cobra.Command, args []string) error {
	a, err := agent.New(c.cfg.Config)
	if err != nil {
		return err
	}
	errs := a.Start()
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigc:
		logger.Info("received signal", zap.String("signal", sig.String()))
		return a.Shutdown()
	case err := <-errs:
		return err
	}
}

func main() {
	cli := &cli{}

	cmd := &cobra.Command{
		Use:     "engage",
		Short:   "Serves engagement approval visibility decisions",
		PreRunE: cli.setupConfig,
		RunE:    cli.run,
	}

	if err := setupFlags(cmd); err != nil {
		log.Fatal(err)
	}

	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
