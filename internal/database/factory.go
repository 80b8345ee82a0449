package database

import (
	"fmt"
	"strings"

	"github.com/Rana718/seedgen/internal/database/mongodb"
	"github.com/Rana718/seedgen/internal/database/mysql"
	"github.com/Rana718/seedgen/internal/database/postgres"
	"github.com/Rana718/seedgen/internal/database/sqlite"
)

var Providers = []string{"postgresql", "mysql", "sqlite", "mongodb"}

var providerAliases = map[string]string{
	"postgres": "postgresql",
	"sqlite3":  "sqlite",
	"mongo":    "mongodb",
}

// ProviderName resolves a provider or one of its aliases to the canonical name.
func ProviderName(provider string) (string, error) {
	name := strings.ToLower(provider)
	if alias, ok := providerAliases[name]; ok {
		name = alias
	}
	for _, p := range Providers {
		if p == name {
			return name, nil
		}
	}
	return "", fmt.Errorf("unsupported database provider: %s. Supported providers: %v", provider, Providers)
}

func NewLoader(provider string) (Loader, error) {
	name, err := ProviderName(provider)
	if err != nil {
		return nil, err
	}

	switch name {
	case "postgresql":
		return postgres.New(), nil
	case "mysql":
		return mysql.New(), nil
	case "sqlite":
		return sqlite.New(), nil
	default:
		return mongodb.New(), nil
	}
}
