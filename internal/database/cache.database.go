package database

import (
	"fmt"

	"maestro/config"

	"github.com/valkey-io/valkey-go"
)

type CacheClient valkey.Client

type Cache struct {
	User CacheClient
}

// USER_CACHE_INDEX (DB 0) holds user rows keyed by OIDC subject so the auth
// gate does not hit SQL on every request.
const USER_CACHE_INDEX = 0

func (s *DB) initializeCacheDB(config config.Config) error {
	log := s.log.Function("initializeCacheDB")
	log.Info("initializing cache database")

	address := config.CacheAddress
	port := config.CachePort
	if address == "" || port == 0 {
		return log.Errorf("failed to initialize cache database", "address or port is empty")
	}

	userClient, err := valkey.NewClient(
		valkey.ClientOption{
			InitAddress: []string{fmt.Sprintf("%s:%d", address, port)},
			SelectDB:    USER_CACHE_INDEX,
		},
	)
	if err != nil {
		return log.Err("failed to create user valkey client", err)
	}

	s.Cache = Cache{User: userClient}

	return nil
}
