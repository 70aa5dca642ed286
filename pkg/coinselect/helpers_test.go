package coinselect

import (
	"github.com/rawblock/coinselect-engine/pkg/coinmodel"
	"github.com/rawblock/coinselect-engine/pkg/coinutxo"
)

func testInput(b byte, idx uint32) coinmodel.Input {
	var h coinmodel.Hash
	h[0] = b
	return coinmodel.NewInput(h, idx)
}

type utxoEntry struct {
	in  coinmodel.Input
	out coinmodel.Output[string]
}

func utxoOf(entries ...utxoEntry) *coinutxo.UTxO[string] {
	u := coinutxo.Empty[string]()
	for _, e := range entries {
		u.Insert(e.in, e.out)
	}
	return u
}
