package relayermanager

import (
	"context"
	"fmt"

	"github.com/Ethernal-Tech/bridge-relay/api"
	"github.com/Ethernal-Tech/bridge-relay/contractbinding"
	ethtxhelper "github.com/Ethernal-Tech/bridge-relay/eth/txhelper"
	"github.com/Ethernal-Tech/bridge-relay/relayer/account"
	"github.com/Ethernal-Tech/bridge-relay/relayer/core"
	databaseaccess "github.com/Ethernal-Tech/bridge-relay/relayer/database_access"
	"github.com/Ethernal-Tech/bridge-relay/relayer/logstream"
	"github.com/Ethernal-Tech/bridge-relay/relayer/relayer"
	"github.com/ethereum/go-ethereum/common"
	"github.com/hashicorp/go-hclog"
)

// RelayerManagerImpl wires the deposit relay together: wallet, rpc clients,
// shared account snapshots, confirmed log stream, database and the optional
// status api. The account state is shared, so additional relay directions
// against the same foreign account can be added here later.
type RelayerManagerImpl struct {
	config    *core.RelayerConfiguration
	relayers  []core.Relayer
	watcher   *account.Watcher
	db        core.Database
	api       *api.API
	logger    hclog.Logger
	cancelCtx context.CancelFunc
	errCh     chan error
}

var _ core.RelayerManager = (*RelayerManagerImpl)(nil)

func NewRelayerManager(
	config *core.RelayerConfiguration, logger hclog.Logger,
) (*RelayerManagerImpl, error) {
	db, err := databaseaccess.NewDatabase(config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open relayer database: %w", err)
	}

	wallet, err := ethtxhelper.NewTxWalletFromFile(config.Foreign.KeyFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load relayer wallet: %w", err)
	}

	homeTxHelper, err := ethtxhelper.NewEthTxHelper(ethtxhelper.WithNodeURL(config.Home.NodeURL))
	if err != nil {
		return nil, fmt.Errorf("failed to dial home chain: %w", err)
	}

	foreignTxHelper, err := ethtxhelper.NewEthTxHelper(ethtxhelper.WithNodeURL(config.Foreign.NodeURL))
	if err != nil {
		return nil, fmt.Errorf("failed to dial foreign chain: %w", err)
	}

	state := account.NewState()
	watcher := account.NewWatcher(
		state, foreignTxHelper, wallet.GetAddress(),
		config.Foreign.SyncInterval, config.Foreign.RequestTimeout, logger.Named("ACCOUNT"))

	startBlock := config.Home.StartBlock

	if block, exists, err := db.GetLastProcessedBlock(core.DirectionDeposit); err != nil {
		return nil, err
	} else if exists {
		startBlock = block
	}

	homeABI, err := contractbinding.HomeBridgeContractMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	stream := logstream.NewLogStream(homeTxHelper.GetClient(), logstream.Config{
		Address:               common.HexToAddress(config.Home.BridgeAddress),
		Topic:                 homeABI.Events[contractbinding.DepositEventName].ID,
		StartBlock:            startBlock,
		RequiredConfirmations: config.Home.RequiredConfirmations,
		MaxBlockRange:         config.Home.MaxBlockRange,
		RequestTimeout:        config.Home.RequestTimeout,
	}, logger.Named("LOGSTREAM"))

	depositRelay := relayer.NewDepositRelay(
		config, stream, state, wallet, foreignTxHelper, db, logger.Named("DEPOSIT"))

	var apiServer *api.API
	if config.API.Port != 0 {
		apiServer = api.NewAPI(config.API, db, logger.Named("API"))
	}

	return &RelayerManagerImpl{
		config:   config,
		relayers: []core.Relayer{depositRelay},
		watcher:  watcher,
		db:       db,
		api:      apiServer,
		logger:   logger,
		errCh:    make(chan error, 1),
	}, nil
}

func (rm *RelayerManagerImpl) Start() error {
	ctx, cancelCtx := context.WithCancel(context.Background())
	rm.cancelCtx = cancelCtx

	go rm.watcher.Start(ctx)

	if rm.api != nil {
		go rm.api.Start(ctx)
	}

	for _, r := range rm.relayers {
		r := r

		go func() {
			if err := r.Start(ctx); err != nil {
				select {
				case rm.errCh <- err:
				default:
				}
			}
		}()
	}

	return nil
}

func (rm *RelayerManagerImpl) Stop() error {
	rm.cancelCtx()

	if rm.api != nil {
		rm.api.Stop()
	}

	return rm.db.Close()
}

// ErrorCh delivers the first fatal relay error. The caller decides whether
// to exit or restart from the persisted checkpoint.
func (rm *RelayerManagerImpl) ErrorCh() <-chan error {
	return rm.errCh
}
