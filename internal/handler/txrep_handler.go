package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SunceWallet/txrep/internal/handler/request"
	"github.com/SunceWallet/txrep/internal/handler/response"
	"github.com/SunceWallet/txrep/internal/service"
	"github.com/SunceWallet/txrep/pkg/errno"
	"github.com/SunceWallet/txrep/pkg/ledger"
)

type TxrepHandler struct {
	svc          service.TxrepService
	maxBodyBytes int64
}

func NewTxrepHandler(svc service.TxrepService, maxBodyBytes int64) *TxrepHandler {
	return &TxrepHandler{svc: svc, maxBodyBytes: maxBodyBytes}
}

// Encode 接收 JSON 交易 ({"tx": {...}})，返回 {"txrep": "..."}
func (h *TxrepHandler) Encode(c *gin.Context) {
	body, err := h.readBody(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	env, err := ledger.ParseEnvelopeJSON(body)
	if err != nil {
		response.Error(c, errno.ErrInvalidEnvelope.WithMessage(err.Error()))
		return
	}
	// fee-bump 交易交给编码器拒绝，保持错误码一致
	if _, isFeeBump := env.(ledger.FeeBumpTransaction); !isFeeBump {
		if err := ledger.Validate(env); err != nil {
			response.Error(c, errno.ErrValidation.WithMessage(err.Error()))
			return
		}
	}

	text, err := h.svc.Encode(env)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"txrep": text})
}

// Decode 接收 {"txrep": "..."}，返回 JSON 交易
func (h *TxrepHandler) Decode(c *gin.Context) {
	if h.maxBodyBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}

	var req request.DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, errno.ErrBodyTooLarge)
			return
		}
		response.Error(c, errno.ErrBind.WithMessage(request.GetErrorMsg(err)))
		return
	}

	tx, err := h.svc.Decode(req.Txrep)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"tx": tx})
}

func (h *TxrepHandler) readBody(c *gin.Context) ([]byte, error) {
	reader := io.Reader(c.Request.Body)
	if h.maxBodyBytes > 0 {
		reader = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes)
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errno.ErrBodyTooLarge
		}
		return nil, errno.ErrBind.WithMessage(err.Error())
	}
	return body, nil
}
