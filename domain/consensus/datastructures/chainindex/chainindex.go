package chainindex

import (
	"sync"

	"github.com/netcoin-project/netcoind/domain/consensus/model"
	"github.com/netcoin-project/netcoind/domain/consensus/model/externalapi"
	"github.com/netcoin-project/netcoind/domain/consensus/ruleerrors"
	"github.com/netcoin-project/netcoind/domain/consensus/utils/difficulty"
	"github.com/pkg/errors"
)

// chainIndex holds every known block in an arena addressed by model.NodeID.
// Nodes are immutable once inserted, so readers may keep using a node after
// releasing the lock. Insert is the only writer.
type chainIndex struct {
	sync.RWMutex

	nodes     []*model.ChainNode
	byHash    map[externalapi.DomainHash]model.NodeID
	mainChain []model.NodeID
	tip       *model.ChainNode
}

// New instantiates a new, empty ChainIndex
func New() model.ChainIndex {
	return &chainIndex{
		byHash: make(map[externalapi.DomainHash]model.NodeID),
	}
}

// LookupByHash returns the node of the block with the given hash.
func (ci *chainIndex) LookupByHash(hash *externalapi.DomainHash) (*model.ChainNode, bool) {
	ci.RLock()
	defer ci.RUnlock()

	id, ok := ci.byHash[*hash]
	if !ok {
		return nil, false
	}
	return ci.nodes[id], true
}

// Contains returns whether the block with the given hash is indexed.
func (ci *chainIndex) Contains(hash *externalapi.DomainHash) bool {
	ci.RLock()
	defer ci.RUnlock()

	_, ok := ci.byHash[*hash]
	return ok
}

// Parent returns the parent of node, or nil for genesis.
func (ci *chainIndex) Parent(node *model.ChainNode) *model.ChainNode {
	if node == nil || node.IsGenesis() {
		return nil
	}

	ci.RLock()
	defer ci.RUnlock()

	return ci.nodes[node.ParentID()]
}

// Next returns the main chain successor of node. It returns nil if node is
// the tip or is not on the main chain.
func (ci *chainIndex) Next(node *model.ChainNode) *model.ChainNode {
	ci.RLock()
	defer ci.RUnlock()

	if !ci.isInMainChain(node) {
		return nil
	}
	nextHeight := int(node.Height()) + 1
	if nextHeight >= len(ci.mainChain) {
		return nil
	}
	return ci.nodes[ci.mainChain[nextHeight]]
}

// Ancestor returns the ancestor of node at the given height, or nil if
// height is above node's height.
func (ci *chainIndex) Ancestor(node *model.ChainNode, height uint32) *model.ChainNode {
	if node == nil || height > node.Height() {
		return nil
	}

	ci.RLock()
	defer ci.RUnlock()

	current := node
	for current.Height() > height {
		if ci.isInMainChain(current) {
			return ci.nodes[ci.mainChain[height]]
		}
		current = ci.nodes[current.ParentID()]
	}
	return current
}

// Tip returns the node with the most chain trust, or nil for an empty index.
func (ci *chainIndex) Tip() *model.ChainNode {
	ci.RLock()
	defer ci.RUnlock()

	return ci.tip
}

// Count returns the number of indexed blocks.
func (ci *chainIndex) Count() int {
	ci.RLock()
	defer ci.RUnlock()

	return len(ci.nodes)
}

// Insert adds the block with the given header. The first inserted block is
// the genesis; every later block must extend an indexed block.
func (ci *chainIndex) Insert(header *externalapi.DomainBlockHeader, stake *model.StakeData) (*model.ChainNode, error) {
	ci.Lock()
	defer ci.Unlock()

	hash := header.BlockHash()
	if _, exists := ci.byHash[hash]; exists {
		return nil, errors.Wrapf(ruleerrors.ErrDuplicateBlock, "block %s is already indexed", hash)
	}

	parentID := model.NoNode
	var height uint32
	chainTrust := difficulty.BlockTrust(header.Bits)
	if len(ci.nodes) > 0 {
		id, ok := ci.byHash[header.PrevBlock]
		if !ok {
			return nil, ruleerrors.NewErrMissingData("parent block", &header.PrevBlock)
		}
		parent := ci.nodes[id]
		parentID = id
		height = parent.Height() + 1
		chainTrust.Add(chainTrust, parent.ChainTrust())
	}

	id := model.NodeID(len(ci.nodes))
	node := model.NewChainNode(id, parentID, height, &hash, header, chainTrust, stake)
	ci.nodes = append(ci.nodes, node)
	ci.byHash[hash] = id

	if ci.tip == nil || chainTrust.Cmp(ci.tip.ChainTrust()) > 0 {
		ci.setTip(node)
	}
	log.Tracef("Indexed block %s at height %d with chain trust %s", hash, height, chainTrust)
	return node, nil
}

// setTip makes node the tip and rewrites the main chain from the fork point.
// Must be called with the write lock held.
func (ci *chainIndex) setTip(node *model.ChainNode) {
	oldTip := ci.tip
	ci.tip = node

	if oldTip != nil && node.ParentID() == oldTip.ID() {
		ci.mainChain = append(ci.mainChain, node.ID())
		return
	}

	var path []model.NodeID
	current := node
	for {
		if ci.isInMainChain(current) {
			break
		}
		path = append(path, current.ID())
		if current.IsGenesis() {
			current = nil
			break
		}
		current = ci.nodes[current.ParentID()]
	}

	forkLength := 0
	if current != nil {
		forkLength = int(current.Height()) + 1
	}
	if oldTip != nil {
		log.Infof("Reorganizing chain: tip moves from %s at height %d to %s at height %d, "+
			"disconnecting %d blocks", oldTip.Hash(), oldTip.Height(), node.Hash(), node.Height(),
			len(ci.mainChain)-forkLength)
	}
	ci.mainChain = ci.mainChain[:forkLength]
	for i := len(path) - 1; i >= 0; i-- {
		ci.mainChain = append(ci.mainChain, path[i])
	}
}

func (ci *chainIndex) isInMainChain(node *model.ChainNode) bool {
	height := int(node.Height())
	return height < len(ci.mainChain) && ci.mainChain[height] == node.ID()
}
