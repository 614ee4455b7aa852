package ledger

import "github.com/moznion/go-optional"

type CreateAccount struct {
	Destination     string `json:"destination" validate:"required,accountid"`
	StartingBalance string `json:"startingBalance" validate:"required,amount"`
}

type Payment struct {
	Destination string `json:"destination" validate:"required,accountid"`
	Asset       Asset  `json:"asset"`
	Amount      string `json:"amount" validate:"required,amount"`
}

type PathPaymentStrictReceive struct {
	SendAsset   Asset   `json:"sendAsset"`
	SendMax     string  `json:"sendMax" validate:"required,amount"`
	Destination string  `json:"destination" validate:"required,accountid"`
	DestAsset   Asset   `json:"destAsset"`
	DestAmount  string  `json:"destAmount" validate:"required,amount"`
	Path        []Asset `json:"path,omitempty" validate:"max=5,dive"`
}

type PathPaymentStrictSend struct {
	SendAsset   Asset   `json:"sendAsset"`
	SendAmount  string  `json:"sendAmount" validate:"required,amount"`
	Destination string  `json:"destination" validate:"required,accountid"`
	DestAsset   Asset   `json:"destAsset"`
	DestMin     string  `json:"destMin" validate:"required,amount"`
	Path        []Asset `json:"path,omitempty" validate:"max=5,dive"`
}

type ManageSellOffer struct {
	Selling Asset  `json:"selling"`
	Buying  Asset  `json:"buying"`
	Amount  string `json:"amount" validate:"required,amount"`
	Price   Price  `json:"price"`
	OfferID int64  `json:"offerId,string" validate:"gte=0"`
}

type CreatePassiveSellOffer struct {
	Selling Asset  `json:"selling"`
	Buying  Asset  `json:"buying"`
	Amount  string `json:"amount" validate:"required,amount"`
	Price   Price  `json:"price"`
}

type ManageBuyOffer struct {
	Selling   Asset  `json:"selling"`
	Buying    Asset  `json:"buying"`
	BuyAmount string `json:"buyAmount" validate:"required,amount"`
	Price     Price  `json:"price"`
	OfferID   int64  `json:"offerId,string" validate:"gte=0"`
}

// SetOptions changes account settings; every field is optional.
type SetOptions struct {
	InflationDest optional.Option[string] `json:"inflationDest,omitempty"`
	ClearFlags    optional.Option[uint32] `json:"clearFlags,omitempty"`
	SetFlags      optional.Option[uint32] `json:"setFlags,omitempty"`
	MasterWeight  optional.Option[uint32] `json:"masterWeight,omitempty"`
	LowThreshold  optional.Option[uint32] `json:"lowThreshold,omitempty"`
	MedThreshold  optional.Option[uint32] `json:"medThreshold,omitempty"`
	HighThreshold optional.Option[uint32] `json:"highThreshold,omitempty"`
	HomeDomain    optional.Option[string] `json:"homeDomain,omitempty"`
	Signer        optional.Option[Signer] `json:"signer,omitempty"`
}

// ChangeTrust creates, updates or removes a trust line. Pool share lines
// are not represented.
type ChangeTrust struct {
	Line  Asset                   `json:"line"`
	Limit optional.Option[string] `json:"limit,omitempty"`
}

// AllowTrust sets the authorization flags of a trust line held by Trustor.
type AllowTrust struct {
	Trustor   string `json:"trustor" validate:"required,accountid"`
	AssetCode string `json:"assetCode" validate:"required,max=12,alphanum"`
	Authorize uint32 `json:"authorize" validate:"lte=2"`
}

type AccountMerge struct {
	Destination string `json:"destination" validate:"required,accountid"`
}

type ManageData struct {
	Name  string                  `json:"name" validate:"required,maxbytes=64"`
	Value optional.Option[[]byte] `json:"value,omitempty"`
}

type BumpSequence struct {
	BumpTo int64 `json:"bumpTo,string" validate:"gte=0"`
}

func (CreateAccount) Type() OperationType            { return OpCreateAccount }
func (Payment) Type() OperationType                  { return OpPayment }
func (PathPaymentStrictReceive) Type() OperationType { return OpPathPaymentStrictReceive }
func (PathPaymentStrictSend) Type() OperationType    { return OpPathPaymentStrictSend }
func (ManageSellOffer) Type() OperationType          { return OpManageSellOffer }
func (CreatePassiveSellOffer) Type() OperationType   { return OpCreatePassiveSellOffer }
func (ManageBuyOffer) Type() OperationType           { return OpManageBuyOffer }
func (SetOptions) Type() OperationType               { return OpSetOptions }
func (ChangeTrust) Type() OperationType              { return OpChangeTrust }
func (AllowTrust) Type() OperationType               { return OpAllowTrust }
func (AccountMerge) Type() OperationType             { return OpAccountMerge }
func (ManageData) Type() OperationType               { return OpManageData }
func (BumpSequence) Type() OperationType             { return OpBumpSequence }

func (CreateAccount) isOperationBody()            {}
func (Payment) isOperationBody()                  {}
func (PathPaymentStrictReceive) isOperationBody() {}
func (PathPaymentStrictSend) isOperationBody()    {}
func (ManageSellOffer) isOperationBody()          {}
func (CreatePassiveSellOffer) isOperationBody()   {}
func (ManageBuyOffer) isOperationBody()           {}
func (SetOptions) isOperationBody()               {}
func (ChangeTrust) isOperationBody()              {}
func (AllowTrust) isOperationBody()               {}
func (AccountMerge) isOperationBody()             {}
func (ManageData) isOperationBody()               {}
func (BumpSequence) isOperationBody()             {}
