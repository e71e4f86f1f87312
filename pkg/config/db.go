package config

import "github.com/go-sql-driver/mysql"

const (
	// DBNetSocket socket net type
	DBNetSocket = "unix"
	// DBNetTCP tcp net type
	DBNetTCP = "tcp"
)

// HasDBCredentials reports whether a database connection is configured
func (cfg *Config) HasDBCredentials() bool {
	return len(cfg.Username) > 0 && (len(cfg.Socket) > 0 || len(cfg.Hostname) > 0)
}

// ToDBConfig returns config for database
func (cfg *Config) ToDBConfig() *mysql.Config {
	dbCfg := &mysql.Config{
		User:                 cfg.Username,
		Passwd:               cfg.Password,
		AllowNativePasswords: true,
	}
	if len(cfg.Socket) > 0 {
		dbCfg.Net = DBNetSocket
		dbCfg.Addr = cfg.Socket
	} else {
		dbCfg.Net = DBNetTCP
		dbCfg.Addr = cfg.Hostname
	}

	return dbCfg
}
