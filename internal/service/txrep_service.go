package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/SunceWallet/txrep/pkg/errno"
	"github.com/SunceWallet/txrep/pkg/ledger"
	"github.com/SunceWallet/txrep/pkg/logger"
	"github.com/SunceWallet/txrep/pkg/monitor"
	"github.com/SunceWallet/txrep/pkg/txrep"
)

func init() {
	// 编解码错误 -> 业务错误码
	errno.Register(txrep.ErrUnsupportedTransactionKind, errno.ErrUnsupportedKind)
	errno.Register(txrep.ErrUnknownOperationKind, errno.ErrUnknownOperation)
	errno.Register(txrep.ErrUnknownMemoType, errno.ErrUnknownMemoType)
	errno.Register(txrep.ErrMalformedLine, errno.ErrMalformedLine)
	errno.Register(txrep.ErrMissingField, errno.ErrMissingField)
	errno.Register(txrep.ErrUnknownField, errno.ErrUnknownField)
	errno.Register(txrep.ErrLengthMismatch, errno.ErrLengthMismatch)
	errno.Register(txrep.ErrInvalidNumeric, errno.ErrInvalidNumeric)
	errno.Register(txrep.ErrInvalidEncoding, errno.ErrInvalidEncoding)
	errno.Register(ledger.ErrInvalidEnvelope, errno.ErrInvalidEnvelope)
}

type txrepService struct {
	codec   *txrep.Codec
	metrics *monitor.CodecMetrics
}

// NewTxrepService wraps a codec with logging and metrics. metrics may be nil.
func NewTxrepService(codec *txrep.Codec, metrics *monitor.CodecMetrics) TxrepService {
	if codec == nil {
		codec = txrep.New()
	}
	return &txrepService{codec: codec, metrics: metrics}
}

func (s *txrepService) Encode(env ledger.Envelope) (string, error) {
	start := time.Now()
	text, err := s.codec.Encode(env)
	s.observe(monitor.DirectionEncode, start, err)
	if err != nil {
		return "", err
	}
	logger.Debug("txrep encoded", zap.Int("bytes", len(text)))
	return text, nil
}

func (s *txrepService) Decode(text string) (*ledger.Transaction, error) {
	start := time.Now()
	tx, err := s.codec.Decode(text)
	s.observe(monitor.DirectionDecode, start, err)
	if err != nil {
		return nil, err
	}
	logger.Debug("txrep decoded",
		zap.String("source", tx.SourceAccount),
		zap.Int("operations", len(tx.Operations)))
	return tx, nil
}

func (s *txrepService) observe(direction string, start time.Time, err error) {
	kind := ""
	if err != nil {
		kind = txrep.KindName(err)
		logger.Info("txrep "+direction+" rejected", zap.String("kind", kind), zap.Error(err))
	}
	s.metrics.Observe(direction, start, err != nil, kind)
}
