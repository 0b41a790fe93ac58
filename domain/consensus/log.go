package consensus

import (
	"github.com/netcoin-project/netcoind/infrastructure/logger"
)

var log = logger.RegisterSubSystem("CNSS")
