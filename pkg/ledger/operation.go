package ledger

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/moznion/go-optional"
)

// OperationType is the camelCase name of an operation variant.
type OperationType string

const (
	OpCreateAccount            OperationType = "createAccount"
	OpPayment                  OperationType = "payment"
	OpPathPaymentStrictReceive OperationType = "pathPaymentStrictReceive"
	OpManageSellOffer          OperationType = "manageSellOffer"
	OpCreatePassiveSellOffer   OperationType = "createPassiveSellOffer"
	OpSetOptions               OperationType = "setOptions"
	OpChangeTrust              OperationType = "changeTrust"
	OpAllowTrust               OperationType = "allowTrust"
	OpAccountMerge             OperationType = "accountMerge"
	OpManageData               OperationType = "manageData"
	OpBumpSequence             OperationType = "bumpSequence"
	OpManageBuyOffer           OperationType = "manageBuyOffer"
	OpPathPaymentStrictSend    OperationType = "pathPaymentStrictSend"
)

// OperationTypes lists the supported variants in wire order.
var OperationTypes = []OperationType{
	OpCreateAccount,
	OpPayment,
	OpPathPaymentStrictReceive,
	OpManageSellOffer,
	OpCreatePassiveSellOffer,
	OpSetOptions,
	OpChangeTrust,
	OpAllowTrust,
	OpAccountMerge,
	OpManageData,
	OpBumpSequence,
	OpManageBuyOffer,
	OpPathPaymentStrictSend,
}

var ErrUnknownOperation = errors.New("unknown operation type")

// OperationBody is implemented by the operation variants of this package
// only.
type OperationBody interface {
	Type() OperationType
	isOperationBody()
}

// Operation is one instruction of a transaction.
type Operation struct {
	SourceAccount optional.Option[string]
	Body          OperationBody `validate:"-"`
}

// NewOperationBody returns the zero value of the variant named t.
func NewOperationBody(t OperationType) (OperationBody, bool) {
	switch t {
	case OpCreateAccount:
		return CreateAccount{}, true
	case OpPayment:
		return Payment{}, true
	case OpPathPaymentStrictReceive:
		return PathPaymentStrictReceive{}, true
	case OpManageSellOffer:
		return ManageSellOffer{}, true
	case OpCreatePassiveSellOffer:
		return CreatePassiveSellOffer{}, true
	case OpSetOptions:
		return SetOptions{}, true
	case OpChangeTrust:
		return ChangeTrust{}, true
	case OpAllowTrust:
		return AllowTrust{}, true
	case OpAccountMerge:
		return AccountMerge{}, true
	case OpManageData:
		return ManageData{}, true
	case OpBumpSequence:
		return BumpSequence{}, true
	case OpManageBuyOffer:
		return ManageBuyOffer{}, true
	case OpPathPaymentStrictSend:
		return PathPaymentStrictSend{}, true
	}
	return nil, false
}

type operationJSON struct {
	SourceAccount optional.Option[string] `json:"sourceAccount,omitempty"`
	Type          OperationType           `json:"type"`
	Body          json.RawMessage         `json:"body"`
}

func (o Operation) MarshalJSON() ([]byte, error) {
	if o.Body == nil {
		return nil, fmt.Errorf("%w: empty body", ErrUnknownOperation)
	}
	body, err := json.Marshal(o.Body)
	if err != nil {
		return nil, err
	}
	return json.Marshal(operationJSON{
		SourceAccount: o.SourceAccount,
		Type:          o.Body.Type(),
		Body:          body,
	})
}

func (o *Operation) UnmarshalJSON(data []byte) error {
	var raw operationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	decode, ok := bodyDecoders[raw.Type]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOperation, raw.Type)
	}
	if len(raw.Body) == 0 {
		raw.Body = json.RawMessage("{}")
	}
	body, err := decode(raw.Body)
	if err != nil {
		return fmt.Errorf("%s body: %w", raw.Type, err)
	}

	o.SourceAccount = raw.SourceAccount
	o.Body = body
	return nil
}

var bodyDecoders = map[OperationType]func(json.RawMessage) (OperationBody, error){
	OpCreateAccount:            unmarshalBody[CreateAccount],
	OpPayment:                  unmarshalBody[Payment],
	OpPathPaymentStrictReceive: unmarshalBody[PathPaymentStrictReceive],
	OpManageSellOffer:          unmarshalBody[ManageSellOffer],
	OpCreatePassiveSellOffer:   unmarshalBody[CreatePassiveSellOffer],
	OpSetOptions:               unmarshalBody[SetOptions],
	OpChangeTrust:              unmarshalBody[ChangeTrust],
	OpAllowTrust:               unmarshalBody[AllowTrust],
	OpAccountMerge:             unmarshalBody[AccountMerge],
	OpManageData:               unmarshalBody[ManageData],
	OpBumpSequence:             unmarshalBody[BumpSequence],
	OpManageBuyOffer:           unmarshalBody[ManageBuyOffer],
	OpPathPaymentStrictSend:    unmarshalBody[PathPaymentStrictSend],
}

func unmarshalBody[T OperationBody](raw json.RawMessage) (OperationBody, error) {
	var body T
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	return body, nil
}
