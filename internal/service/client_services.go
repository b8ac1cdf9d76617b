package service

import (
	"github.com/MKhiriev/keylock/internal/adapter"
	"github.com/MKhiriev/keylock/internal/config"
	"github.com/MKhiriev/keylock/internal/logger"
	"github.com/MKhiriev/keylock/internal/store"
)

// ClientServices groups the services used by the TUI and the CLI.
type ClientServices struct {
	ShareService   ClientShareService
	RedeemService  ClientRedeemService
	HistoryService ClientHistoryService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, defaults config.ClientDefaults, logger *logger.Logger) *ClientServices {
	historySvc := NewClientHistoryService(storages.HistoryRepository, logger)

	return &ClientServices{
		ShareService:   NewClientShareService(serverAdapter, NewNormalizer(defaults), historySvc, logger),
		RedeemService:  NewClientRedeemService(serverAdapter, logger),
		HistoryService: historySvc,
	}
}
