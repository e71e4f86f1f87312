package config

import (
	"os"

	"gopkg.in/ini.v1"
)

const (
	// DefaultTargetPath default path of the tuned configuration file
	DefaultTargetPath = "/etc/mysql/my.cnf"
	// DefaultSection section the tuned parameters are written under
	DefaultSection = "mysqld"
)

// Config configuration file structure of mycnftune
type Config struct {
	TargetPath   string `ini:"target_path"`
	Section      string `ini:"section"`
	Log          string `ini:"log"`
	LogLevel     int    `ini:"log_level"`
	Username     string `ini:"username"`
	Password     string `ini:"password"`
	Socket       string `ini:"socket"`
	Hostname     string `ini:"hostname"`
	ApplyRuntime bool   `ini:"apply_runtime"`
	Ratios       `ini:"ratios"`
	Notify       `ini:"notify"`
}

// Ratios editable ratios and constants the parameter
// calculator derives tuned values from
type Ratios struct {
	MemoryPercentForDB    uint64 `ini:"memory_percent_for_db"`
	MaxConnections        uint64 `ini:"max_connections"`
	MemPerConnectionMB    uint64 `ini:"mem_per_connection_mb"`
	InnodbBufPoolPercent  uint64 `ini:"innodb_buffer_pool_percent"`
	InnodbLogFileSizeMB   uint64 `ini:"innodb_log_file_size_mb"`
	InnodbLogBufSizeMB    uint64 `ini:"innodb_log_buffer_size_mb"`
	JoinBufPercent        uint64 `ini:"join_buffer_percent"`
	ReadBufPercent        uint64 `ini:"read_buffer_percent"`
	ReadRndBufPercent     uint64 `ini:"read_rnd_buffer_percent"`
	SortBufPercent        uint64 `ini:"sort_buffer_percent"`
	TmpTablePercent       uint64 `ini:"tmp_table_percent"`
	MaxHeapTablePercent   uint64 `ini:"max_heap_table_percent"`
	ConnectTimeout        uint64 `ini:"connect_timeout"`
	InteractiveTimeout    uint64 `ini:"interactive_timeout"`
	WaitTimeout           uint64 `ini:"wait_timeout"`
	TableOpenCache        uint64 `ini:"table_open_cache"`
	TableCachePercent     uint64 `ini:"table_cache_percent"`
	TableDefCachePercent  uint64 `ini:"table_definition_cache_percent"`
}

// Default returns a config populated with the stock ratios
func Default() *Config {
	return &Config{
		TargetPath: DefaultTargetPath,
		Section:    DefaultSection,
		Ratios: Ratios{
			MemoryPercentForDB:   75,
			MaxConnections:       100,
			MemPerConnectionMB:   8,
			InnodbBufPoolPercent: 75,
			InnodbLogFileSizeMB:  256,
			InnodbLogBufSizeMB:   64,
			JoinBufPercent:       20,
			ReadBufPercent:       20,
			ReadRndBufPercent:    10,
			SortBufPercent:       20,
			TmpTablePercent:      15,
			MaxHeapTablePercent:  15,
			ConnectTimeout:       10,
			InteractiveTimeout:   600,
			WaitTimeout:          600,
			TableOpenCache:       2000,
			TableCachePercent:    10,
			TableDefCachePercent: 5,
		},
	}
}

// Load loads configuration from path, a missing file
// yields the stock defaults
func Load(path string) (*Config, error) {
	c := Default()

	cfg, err := ini.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, err
	}

	err = cfg.MapTo(c)
	return c, err
}
