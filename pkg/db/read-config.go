package db

import (
	"fmt"
	"log/slog"
)

// DBConfigFromYamlObj builds the runtime DB config from the yaml
// representation used in the service config files. Credentials are expected
// to be already overridden from env variables at this point.
func DBConfigFromYamlObj(dbLabel string, yamlObj DBConfigYaml) DBConfig {
	if yamlObj.ConnectionStr == "" || yamlObj.Username == "" || yamlObj.Password == "" {
		slog.Error("missing DB credentials", slog.String("db", dbLabel))
		panic("missing DB credentials for " + dbLabel)
	}

	uri := fmt.Sprintf(`mongodb%s://%s:%s@%s`, yamlObj.ConnectionPrefix, yamlObj.Username, yamlObj.Password, yamlObj.ConnectionStr)

	timeout := yamlObj.Timeout
	if timeout < 1 {
		timeout = 30
	}
	idleConnTimeout := yamlObj.IdleConnTimeout
	if idleConnTimeout < 1 {
		idleConnTimeout = 45
	}
	maxPoolSize := yamlObj.MaxPoolSize
	if maxPoolSize < 1 {
		maxPoolSize = 8
	}

	return DBConfig{
		URI:              uri,
		DBNamePrefix:     yamlObj.DBNamePrefix,
		Timeout:          timeout,
		IdleConnTimeout:  idleConnTimeout,
		MaxPoolSize:      uint64(maxPoolSize),
		RunIndexCreation: yamlObj.RunIndexCreation,
	}
}
