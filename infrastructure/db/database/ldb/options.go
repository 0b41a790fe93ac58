package ldb

import "github.com/syndtr/goleveldb/leveldb/opt"

// Options returns the leveldb options a netcoind database is opened with.
// Stored blocks are mostly read back by hash, so the block cache takes the
// whole cache budget and the write buffer stays at a quarter of it.
func Options(cacheSizeMiB int) *opt.Options {
	return &opt.Options{
		Compression:            opt.NoCompression,
		BlockCacheCapacity:     cacheSizeMiB * opt.MiB,
		WriteBuffer:            (cacheSizeMiB / 4) * opt.MiB,
		DisableSeeksCompaction: true,
	}
}
