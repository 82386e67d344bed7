package databaseaccess

import (
	"fmt"
	"path/filepath"

	bridgecommon "github.com/Ethernal-Tech/bridge-relay/common"
	"github.com/Ethernal-Tech/bridge-relay/relayer/core"
)

func NewDatabase(filePath string) (core.Database, error) {
	if err := bridgecommon.CreateDirectoryIfNotExists(filepath.Dir(filePath)); err != nil {
		return nil, fmt.Errorf("failed to create directory for relayer database: %w", err)
	}

	db := &BBoltDatabase{}
	if err := db.Init(filePath); err != nil {
		return nil, err
	}

	return db, nil
}
