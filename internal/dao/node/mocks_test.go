// Code generated by MockGen. DO NOT EDIT.
// Source: types.go

// Package node is a generated GoMock package.
package node

import (
	context "context"
	reflect "reflect"
	time "time"

	gomock "github.com/golang/mock/gomock"
	model "github.com/goodnatureofminers/bsqledger-backend/internal/dao/model"
	state "github.com/goodnatureofminers/bsqledger-backend/internal/dao/state"
)

// MockChainSource is a mock of ChainSource interface.
type MockChainSource struct {
	ctrl     *gomock.Controller
	recorder *MockChainSourceMockRecorder
}

// MockChainSourceMockRecorder is the mock recorder for MockChainSource.
type MockChainSourceMockRecorder struct {
	mock *MockChainSource
}

// NewMockChainSource creates a new mock instance.
func NewMockChainSource(ctrl *gomock.Controller) *MockChainSource {
	mock := &MockChainSource{ctrl: ctrl}
	mock.recorder = &MockChainSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockChainSource) EXPECT() *MockChainSourceMockRecorder {
	return m.recorder
}

// FetchBlock mocks base method.
func (m *MockChainSource) FetchBlock(ctx context.Context, height int32) (RawBlock, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FetchBlock", ctx, height)
	ret0, _ := ret[0].(RawBlock)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// FetchBlock indicates an expected call of FetchBlock.
func (mr *MockChainSourceMockRecorder) FetchBlock(ctx, height interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FetchBlock", reflect.TypeOf((*MockChainSource)(nil).FetchBlock), ctx, height)
}

// LatestHeight mocks base method.
func (m *MockChainSource) LatestHeight(ctx context.Context) (int32, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LatestHeight", ctx)
	ret0, _ := ret[0].(int32)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// LatestHeight indicates an expected call of LatestHeight.
func (mr *MockChainSourceMockRecorder) LatestHeight(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LatestHeight", reflect.TypeOf((*MockChainSource)(nil).LatestHeight), ctx)
}

// MockBlockParser is a mock of BlockParser interface.
type MockBlockParser struct {
	ctrl     *gomock.Controller
	recorder *MockBlockParserMockRecorder
}

// MockBlockParserMockRecorder is the mock recorder for MockBlockParser.
type MockBlockParserMockRecorder struct {
	mock *MockBlockParser
}

// NewMockBlockParser creates a new mock instance.
func NewMockBlockParser(ctrl *gomock.Controller) *MockBlockParser {
	mock := &MockBlockParser{ctrl: ctrl}
	mock.recorder = &MockBlockParserMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockBlockParser) EXPECT() *MockBlockParserMockRecorder {
	return m.recorder
}

// ParseBlock mocks base method.
func (m *MockBlockParser) ParseBlock(ctx context.Context, raw RawBlock) (model.Block, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ParseBlock", ctx, raw)
	ret0, _ := ret[0].(model.Block)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ParseBlock indicates an expected call of ParseBlock.
func (mr *MockBlockParserMockRecorder) ParseBlock(ctx, raw interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ParseBlock", reflect.TypeOf((*MockBlockParser)(nil).ParseBlock), ctx, raw)
}

// MockLedgerService is a mock of LedgerService interface.
type MockLedgerService struct {
	ctrl     *gomock.Controller
	recorder *MockLedgerServiceMockRecorder
}

// MockLedgerServiceMockRecorder is the mock recorder for MockLedgerService.
type MockLedgerServiceMockRecorder struct {
	mock *MockLedgerService
}

// NewMockLedgerService creates a new mock instance.
func NewMockLedgerService(ctrl *gomock.Controller) *MockLedgerService {
	mock := &MockLedgerService{ctrl: ctrl}
	mock.recorder = &MockLedgerServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockLedgerService) EXPECT() *MockLedgerServiceMockRecorder {
	return m.recorder
}

// ApplySnapshot mocks base method.
func (m *MockLedgerService) ApplySnapshot(snapshot *state.State) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ApplySnapshot", snapshot)
}

// ApplySnapshot indicates an expected call of ApplySnapshot.
func (mr *MockLedgerServiceMockRecorder) ApplySnapshot(snapshot interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ApplySnapshot", reflect.TypeOf((*MockLedgerService)(nil).ApplySnapshot), snapshot)
}

// BlockHeightOfLastBlock mocks base method.
func (m *MockLedgerService) BlockHeightOfLastBlock() int32 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "BlockHeightOfLastBlock")
	ret0, _ := ret[0].(int32)
	return ret0
}

// BlockHeightOfLastBlock indicates an expected call of BlockHeightOfLastBlock.
func (mr *MockLedgerServiceMockRecorder) BlockHeightOfLastBlock() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "BlockHeightOfLastBlock", reflect.TypeOf((*MockLedgerService)(nil).BlockHeightOfLastBlock))
}

// GenesisBlockHeight mocks base method.
func (m *MockLedgerService) GenesisBlockHeight() int32 {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GenesisBlockHeight")
	ret0, _ := ret[0].(int32)
	return ret0
}

// GenesisBlockHeight indicates an expected call of GenesisBlockHeight.
func (mr *MockLedgerServiceMockRecorder) GenesisBlockHeight() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GenesisBlockHeight", reflect.TypeOf((*MockLedgerService)(nil).GenesisBlockHeight))
}

// LastBlock mocks base method.
func (m *MockLedgerService) LastBlock() (model.Block, bool) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "LastBlock")
	ret0, _ := ret[0].(model.Block)
	ret1, _ := ret[1].(bool)
	return ret0, ret1
}

// LastBlock indicates an expected call of LastBlock.
func (mr *MockLedgerServiceMockRecorder) LastBlock() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "LastBlock", reflect.TypeOf((*MockLedgerService)(nil).LastBlock))
}

// OnNewBlockHeight mocks base method.
func (m *MockLedgerService) OnNewBlockHeight(height int32) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnNewBlockHeight", height)
}

// OnNewBlockHeight indicates an expected call of OnNewBlockHeight.
func (mr *MockLedgerServiceMockRecorder) OnNewBlockHeight(height interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnNewBlockHeight", reflect.TypeOf((*MockLedgerService)(nil).OnNewBlockHeight), height)
}

// OnNewBlockWithEmptyTxs mocks base method.
func (m *MockLedgerService) OnNewBlockWithEmptyTxs(block model.Block) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnNewBlockWithEmptyTxs", block)
}

// OnNewBlockWithEmptyTxs indicates an expected call of OnNewBlockWithEmptyTxs.
func (mr *MockLedgerServiceMockRecorder) OnNewBlockWithEmptyTxs(block interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnNewBlockWithEmptyTxs", reflect.TypeOf((*MockLedgerService)(nil).OnNewBlockWithEmptyTxs), block)
}

// OnParseBlockChainComplete mocks base method.
func (m *MockLedgerService) OnParseBlockChainComplete() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnParseBlockChainComplete")
}

// OnParseBlockChainComplete indicates an expected call of OnParseBlockChainComplete.
func (mr *MockLedgerServiceMockRecorder) OnParseBlockChainComplete() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnParseBlockChainComplete", reflect.TypeOf((*MockLedgerService)(nil).OnParseBlockChainComplete))
}

// OnParseBlockComplete mocks base method.
func (m *MockLedgerService) OnParseBlockComplete(block model.Block) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "OnParseBlockComplete", block)
}

// OnParseBlockComplete indicates an expected call of OnParseBlockComplete.
func (mr *MockLedgerServiceMockRecorder) OnParseBlockComplete(block interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "OnParseBlockComplete", reflect.TypeOf((*MockLedgerService)(nil).OnParseBlockComplete), block)
}

// MockSnapshotRestorer is a mock of SnapshotRestorer interface.
type MockSnapshotRestorer struct {
	ctrl     *gomock.Controller
	recorder *MockSnapshotRestorerMockRecorder
}

// MockSnapshotRestorerMockRecorder is the mock recorder for MockSnapshotRestorer.
type MockSnapshotRestorerMockRecorder struct {
	mock *MockSnapshotRestorer
}

// NewMockSnapshotRestorer creates a new mock instance.
func NewMockSnapshotRestorer(ctrl *gomock.Controller) *MockSnapshotRestorer {
	mock := &MockSnapshotRestorer{ctrl: ctrl}
	mock.recorder = &MockSnapshotRestorerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSnapshotRestorer) EXPECT() *MockSnapshotRestorerMockRecorder {
	return m.recorder
}

// RestoreLatest mocks base method.
func (m *MockSnapshotRestorer) RestoreLatest() (*state.State, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RestoreLatest")
	ret0, _ := ret[0].(*state.State)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RestoreLatest indicates an expected call of RestoreLatest.
func (mr *MockSnapshotRestorerMockRecorder) RestoreLatest() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RestoreLatest", reflect.TypeOf((*MockSnapshotRestorer)(nil).RestoreLatest))
}

// MockFollowerMetrics is a mock of FollowerMetrics interface.
type MockFollowerMetrics struct {
	ctrl     *gomock.Controller
	recorder *MockFollowerMetricsMockRecorder
}

// MockFollowerMetricsMockRecorder is the mock recorder for MockFollowerMetrics.
type MockFollowerMetricsMockRecorder struct {
	mock *MockFollowerMetrics
}

// NewMockFollowerMetrics creates a new mock instance.
func NewMockFollowerMetrics(ctrl *gomock.Controller) *MockFollowerMetrics {
	mock := &MockFollowerMetrics{ctrl: ctrl}
	mock.recorder = &MockFollowerMetricsMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockFollowerMetrics) EXPECT() *MockFollowerMetricsMockRecorder {
	return m.recorder
}

// ObserveFetchTip mocks base method.
func (m *MockFollowerMetrics) ObserveFetchTip(err error, started time.Time) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ObserveFetchTip", err, started)
}

// ObserveFetchTip indicates an expected call of ObserveFetchTip.
func (mr *MockFollowerMetricsMockRecorder) ObserveFetchTip(err, started interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ObserveFetchTip", reflect.TypeOf((*MockFollowerMetrics)(nil).ObserveFetchTip), err, started)
}

// ObserveProcessBlock mocks base method.
func (m *MockFollowerMetrics) ObserveProcessBlock(err error, height int32, started time.Time) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ObserveProcessBlock", err, height, started)
}

// ObserveProcessBlock indicates an expected call of ObserveProcessBlock.
func (mr *MockFollowerMetricsMockRecorder) ObserveProcessBlock(err, height, started interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ObserveProcessBlock", reflect.TypeOf((*MockFollowerMetrics)(nil).ObserveProcessBlock), err, height, started)
}

// ObserveReorg mocks base method.
func (m *MockFollowerMetrics) ObserveReorg(height int32) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "ObserveReorg", height)
}

// ObserveReorg indicates an expected call of ObserveReorg.
func (mr *MockFollowerMetricsMockRecorder) ObserveReorg(height interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ObserveReorg", reflect.TypeOf((*MockFollowerMetrics)(nil).ObserveReorg), height)
}
