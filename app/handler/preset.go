package handler

import (
	"fmt"

	"github.com/ydb-platform/ydb-connector-maxdb/app/config"
	"github.com/ydb-platform/ydb-connector-maxdb/app/datasource/maxdb"
	"github.com/ydb-platform/ydb-connector-maxdb/app/utils"
)

// Preset bundles the dialect and the driver family a handler works with.
type Preset struct {
	SQLFormatter      utils.SQLFormatter
	ConnectionManager utils.ConnectionManager
}

type PresetFactory struct {
	odbc Preset
}

func (pf *PresetFactory) Make(kind config.DriverKind) (*Preset, error) {
	switch kind {
	case config.DriverODBC:
		return &pf.odbc, nil
	case config.DriverHDB:
		return nil, fmt.Errorf(
			"pick preset for driver '%v': SAP HANA protocol cannot reach MaxDB: %w", kind, utils.ErrDriverNotSupported,
		)
	default:
		return nil, fmt.Errorf("pick preset for driver '%v': %w", kind, utils.ErrDriverNotSupported)
	}
}

func NewPresetFactory(qlf utils.QueryLoggerFactory) *PresetFactory {
	connManagerCfg := utils.ConnectionManagerBase{
		QueryLoggerFactory: qlf,
	}

	return &PresetFactory{
		odbc: Preset{
			SQLFormatter:      maxdb.NewSQLFormatter(),
			ConnectionManager: maxdb.NewODBCConnectionManager(connManagerCfg),
		},
	}
}
