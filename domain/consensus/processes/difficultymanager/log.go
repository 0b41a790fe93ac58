package difficultymanager

import (
	"github.com/netcoin-project/netcoind/infrastructure/logger"
)

var log = logger.RegisterSubSystem("DIFF")
