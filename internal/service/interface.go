package service

import "github.com/SunceWallet/txrep/pkg/ledger"

type TxrepService interface {
	// Encode 将交易渲染为 txrep 文本，fee-bump 交易返回 ErrUnsupportedTransactionKind
	Encode(env ledger.Envelope) (string, error)
	// Decode 解析 txrep 文本，失败时不返回部分结果
	Decode(text string) (*ledger.Transaction, error)
}
