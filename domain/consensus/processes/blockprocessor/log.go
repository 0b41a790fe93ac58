package blockprocessor

import (
	"github.com/netcoin-project/netcoind/infrastructure/logger"
)

var log = logger.RegisterSubSystem("BPRC")
