// Package transport exposes the explorer HTTP API over the ledger service.
package transport

import (
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"
	"github.com/goodnatureofminers/bsqledger-backend/internal/dao/state"
)

// ExplorerHandler serves read-only ledger queries as JSON.
type ExplorerHandler struct {
	logger *zap.Logger
	ledger *state.Service
}

// NewExplorerHandler returns an ExplorerHandler instance.
func NewExplorerHandler(ledger *state.Service, logger *zap.Logger) *ExplorerHandler {
	return &ExplorerHandler{
		logger: logger.Named("explorer-handler"),
		ledger: ledger,
	}
}

// Router builds the route table.
func (h *ExplorerHandler) Router() *httprouter.Router {
	router := httprouter.New()

	router.GET("/health", h.health)
	router.GET("/v1/chain", h.chain)
	router.GET("/v1/blocks/:height", h.blockAtHeight)
	router.GET("/v1/txs/:txid", h.tx)
	router.GET("/v1/txs/:txid/outputs/:index", h.txOutput)
	router.GET("/v1/bonding/totals", h.bondingTotals)
	router.GET("/v1/params/:name", h.paramValue)
	router.GET("/v1/cycles/current", h.currentCycle)

	return router
}

type (
	chainResponse struct {
		ChainHeight        int32  `json:"chain_height"`
		BlockHeight        int32  `json:"block_height"`
		GenesisTxID        string `json:"genesis_txid"`
		GenesisBlockHeight int32  `json:"genesis_block_height"`
		GenesisTotalSupply int64  `json:"genesis_total_supply"`
		TotalBurntFee      int64  `json:"total_burnt_fee"`
		TotalIssuedAmount  int64  `json:"total_issued_amount"`
	}

	blockResponse struct {
		Height            int32        `json:"height"`
		Hash              string       `json:"hash"`
		PreviousBlockHash string       `json:"previous_block_hash"`
		Timestamp         time.Time    `json:"timestamp"`
		Txs               []txResponse `json:"txs"`
	}

	txResponse struct {
		TxID              string             `json:"txid"`
		BlockHeight       int32              `json:"block_height"`
		TxType            string             `json:"tx_type"`
		BurntFee          int64              `json:"burnt_fee"`
		LockTime          int32              `json:"lock_time,omitempty"`
		UnlockBlockHeight int32              `json:"unlock_block_height,omitempty"`
		Outputs           []txOutputResponse `json:"outputs"`
	}

	txOutputResponse struct {
		TxID         string `json:"txid"`
		Index        int    `json:"index"`
		Value        int64  `json:"value"`
		Address      string `json:"address,omitempty"`
		OutputType   string `json:"output_type"`
		OpReturnData string `json:"op_return_data,omitempty"`
		Unspent      bool   `json:"unspent"`
		Spendable    bool   `json:"spendable"`
		IsBsq        bool   `json:"is_bsq"`
		Confiscated  bool   `json:"confiscated"`
	}

	bondingTotalsResponse struct {
		LockupAmount    int64 `json:"lockup_amount"`
		LockedAmount    int64 `json:"locked_amount"`
		UnlockingAmount int64 `json:"unlocking_amount"`
		UnlockedAmount  int64 `json:"unlocked_amount"`
	}

	paramResponse struct {
		Param       string `json:"param"`
		BlockHeight int32  `json:"block_height"`
		Value       int64  `json:"value"`
	}

	cycleResponse struct {
		HeightOfFirstBlock int32 `json:"height_of_first_block"`
		HeightOfLastBlock  int32 `json:"height_of_last_block"`
	}

	errorResponse struct {
		Error string `json:"error"`
	}
)

func (h *ExplorerHandler) health(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *ExplorerHandler) chain(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	h.writeJSON(w, http.StatusOK, chainResponse{
		ChainHeight:        h.ledger.ChainHeight(),
		BlockHeight:        h.ledger.BlockHeightOfLastBlock(),
		GenesisTxID:        h.ledger.GenesisTxID(),
		GenesisBlockHeight: h.ledger.GenesisBlockHeight(),
		GenesisTotalSupply: h.ledger.GenesisTotalSupply(),
		TotalBurntFee:      h.ledger.TotalBurntFee(),
		TotalIssuedAmount:  h.ledger.TotalIssuedAmount(),
	})
}

func (h *ExplorerHandler) blockAtHeight(w http.ResponseWriter, _ *http.Request, params httprouter.Params) {
	height, err := strconv.ParseInt(params.ByName("height"), 10, 32)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "height must be an integer"})
		return
	}

	block, ok := h.ledger.BlockAtHeight(int32(height))
	if !ok {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "block not found"})
		return
	}

	h.writeJSON(w, http.StatusOK, h.blockResponse(block))
}

func (h *ExplorerHandler) tx(w http.ResponseWriter, _ *http.Request, params httprouter.Params) {
	tx, ok := h.ledger.Tx(params.ByName("txid"))
	if !ok {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "tx not found"})
		return
	}

	h.writeJSON(w, http.StatusOK, h.txResponse(tx))
}

func (h *ExplorerHandler) txOutput(w http.ResponseWriter, _ *http.Request, params httprouter.Params) {
	index, err := strconv.Atoi(params.ByName("index"))
	if err != nil || index < 0 {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "index must be a non-negative integer"})
		return
	}

	txID := params.ByName("txid")
	tx, ok := h.ledger.Tx(txID)
	if !ok || index >= len(tx.Outputs) {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "tx output not found"})
		return
	}

	h.writeJSON(w, http.StatusOK, h.txOutputResponse(tx.Outputs[index]))
}

func (h *ExplorerHandler) bondingTotals(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	h.writeJSON(w, http.StatusOK, bondingTotalsResponse{
		LockupAmount:    h.ledger.TotalAmountOfLockupTxOutputs(),
		LockedAmount:    h.ledger.TotalLockupAmount(),
		UnlockingAmount: h.ledger.TotalAmountOfUnlockingTxOutputs(),
		UnlockedAmount:  h.ledger.TotalAmountOfUnlockedTxOutputs(),
	})
}

func (h *ExplorerHandler) paramValue(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	height := h.ledger.ChainHeight()
	if raw := r.URL.Query().Get("height"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "height must be an integer"})
			return
		}
		height = int32(parsed)
	}

	name := params.ByName("name")
	h.writeJSON(w, http.StatusOK, paramResponse{
		Param:       name,
		BlockHeight: height,
		Value:       h.ledger.ParamValue(model.Param(name), height),
	})
}

func (h *ExplorerHandler) currentCycle(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	cycle, ok := h.ledger.CurrentCycle()
	if !ok {
		h.writeJSON(w, http.StatusNotFound, errorResponse{Error: "no cycle recorded"})
		return
	}

	h.writeJSON(w, http.StatusOK, cycleResponse{
		HeightOfFirstBlock: cycle.HeightOfFirstBlock,
		HeightOfLastBlock:  cycle.HeightOfLastBlock,
	})
}

func (h *ExplorerHandler) blockResponse(block model.Block) blockResponse {
	txs := make([]txResponse, 0, len(block.Txs))
	for _, tx := range block.Txs {
		txs = append(txs, h.txResponse(tx))
	}
	return blockResponse{
		Height:            block.Height,
		Hash:              block.Hash,
		PreviousBlockHash: block.PreviousBlockHash,
		Timestamp:         block.Timestamp,
		Txs:               txs,
	}
}

func (h *ExplorerHandler) txResponse(tx model.Tx) txResponse {
	outputs := make([]txOutputResponse, 0, len(tx.Outputs))
	for _, out := range tx.Outputs {
		outputs = append(outputs, h.txOutputResponse(out))
	}
	return txResponse{
		TxID:              tx.ID,
		BlockHeight:       tx.BlockHeight,
		TxType:            tx.Type.String(),
		BurntFee:          tx.BurntFee,
		LockTime:          tx.LockTime,
		UnlockBlockHeight: tx.UnlockBlockHeight,
		Outputs:           outputs,
	}
}

func (h *ExplorerHandler) txOutputResponse(out model.TxOutput) txOutputResponse {
	key := out.Key()
	return txOutputResponse{
		TxID:         out.TxID,
		Index:        out.Index,
		Value:        out.Value,
		Address:      out.Address,
		OutputType:   out.Type.String(),
		OpReturnData: hex.EncodeToString(out.OpReturnData),
		Unspent:      h.ledger.IsUnspent(key),
		Spendable:    h.ledger.IsTxOutputSpendable(key),
		IsBsq:        h.ledger.IsBsqTxOutputType(out),
		Confiscated:  h.ledger.IsConfiscated(key),
	}
}

func (h *ExplorerHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
