package storage

import (
	"fmt"

	"github.com/avGenie/go-order-lifecycle/internal/app/config"
	"github.com/avGenie/go-order-lifecycle/internal/app/storage/api/model"
	"github.com/avGenie/go-order-lifecycle/internal/app/storage/sqlstore"
)

func InitStorage(config config.Config) (model.Storage, error) {
	if len(config.DBConnect) == 0 {
		return nil, fmt.Errorf("empty database config")
	}

	return sqlstore.New(config.DBConnect)
}
