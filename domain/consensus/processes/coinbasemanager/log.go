package coinbasemanager

import (
	"github.com/netcoin-project/netcoind/infrastructure/logger"
)

var log = logger.RegisterSubSystem("SUBS")
