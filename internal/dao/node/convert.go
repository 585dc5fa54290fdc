package node

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/bsqledger-backend/pkg/safe"
)

// BuildRawBlock maps a btcjson verbose block into a RawBlock the parser can
// consume. Coinbase inputs are dropped; OP_RETURN payloads are extracted
// from nulldata outputs.
func BuildRawBlock(src btcjson.GetBlockVerboseTxResult) (RawBlock, error) {
	if _, err := chainhash.NewHashFromStr(src.Hash); err != nil {
		return RawBlock{}, fmt.Errorf("block %d hash %q: %w", src.Height, src.Hash, err)
	}
	height, err := safe.Int32(src.Height)
	if err != nil {
		return RawBlock{}, fmt.Errorf("block height %d: %w", src.Height, err)
	}

	txs := make([]RawTx, 0, len(src.Tx))
	for _, tx := range src.Tx {
		rawTx, err := buildRawTx(tx)
		if err != nil {
			return RawBlock{}, fmt.Errorf("block %d tx %s: %w", src.Height, tx.Txid, err)
		}
		txs = append(txs, rawTx)
	}

	return RawBlock{
		Height:            height,
		Hash:              src.Hash,
		PreviousBlockHash: src.PreviousHash,
		Timestamp:         time.Unix(src.Time, 0).UTC(),
		Txs:               txs,
	}, nil
}

func buildRawTx(src btcjson.TxRawResult) (RawTx, error) {
	inputs := make([]RawTxInput, 0, len(src.Vin))
	for _, vin := range src.Vin {
		if vin.IsCoinBase() {
			continue
		}
		inputs = append(inputs, RawTxInput{
			ConnectedTxID:        vin.Txid,
			ConnectedOutputIndex: int(vin.Vout),
		})
	}

	outputs := make([]RawTxOutput, 0, len(src.Vout))
	for _, vout := range src.Vout {
		value, err := btcToSatoshis(vout.Value)
		if err != nil {
			return RawTx{}, fmt.Errorf("vout %d value: %w", vout.N, err)
		}
		var address string
		if len(vout.ScriptPubKey.Addresses) > 0 {
			address = vout.ScriptPubKey.Addresses[0]
		}
		opReturnData, err := opReturnPayload(vout.ScriptPubKey)
		if err != nil {
			return RawTx{}, fmt.Errorf("vout %d script: %w", vout.N, err)
		}
		outputs = append(outputs, RawTxOutput{
			Index:        int(vout.N),
			Value:        value,
			Address:      address,
			OpReturnData: opReturnData,
		})
	}

	return RawTx{
		ID:      src.Txid,
		Inputs:  inputs,
		Outputs: outputs,
	}, nil
}

func btcToSatoshis(value float64) (int64, error) {
	amt, err := btcutil.NewAmount(value)
	if err != nil {
		return 0, err
	}
	if amt < 0 {
		return 0, fmt.Errorf("negative amount: %d", amt)
	}
	return int64(amt), nil
}

// opReturnPayload extracts the data pushed after OP_RETURN from a nulldata
// script, nil for any other script type.
func opReturnPayload(script btcjson.ScriptPubKeyResult) ([]byte, error) {
	if script.Type != "nulldata" {
		return nil, nil
	}
	raw, err := hex.DecodeString(script.Hex)
	if err != nil {
		return nil, fmt.Errorf("decode script hex: %w", err)
	}
	const opReturn = 0x6a
	if len(raw) < 2 || raw[0] != opReturn {
		return nil, fmt.Errorf("nulldata script without OP_RETURN prefix")
	}

	// Single push: either a direct push opcode (1-75) or OP_PUSHDATA1.
	const opPushData1 = 0x4c
	switch {
	case raw[1] >= 1 && raw[1] <= 75:
		payload := raw[2:]
		if len(payload) != int(raw[1]) {
			return nil, fmt.Errorf("push length %d does not match payload %d", raw[1], len(payload))
		}
		return payload, nil
	case raw[1] == opPushData1:
		if len(raw) < 3 {
			return nil, fmt.Errorf("truncated OP_PUSHDATA1 script")
		}
		payload := raw[3:]
		if len(payload) != int(raw[2]) {
			return nil, fmt.Errorf("push length %d does not match payload %d", raw[2], len(payload))
		}
		return payload, nil
	default:
		return nil, fmt.Errorf("unsupported push opcode %#x", raw[1])
	}
}
