package txrep

import (
	"fmt"

	"github.com/moznion/go-optional"

	"github.com/SunceWallet/txrep/pkg/ledger"
)

const (
	maxMemoTextBytes   = ledger.MaxMemoTextBytes
	maxHomeDomainBytes = 32
	maxDataNameBytes   = 64
	maxDataValueBytes  = 64
	maxSignatureBytes  = 64
	hashBytes          = 32
	hintBytes          = 4
)

// fieldWalker is one direction of the codec. The grammar below drives a
// walker over a transaction: the encoder reads each pointed-to value and
// writes a line, the decoder looks the key up and stores the parsed value.
// Walkers are sticky: after the first failure every call is a no-op.
type fieldWalker interface {
	Account(key string, v *string)
	Text(key string, v *string, maxBytes int)
	AssetCode(key string, v *string)
	Uint32(key string, v *uint32)
	Uint64(key string, v *uint64)
	Int64(key string, v *int64)
	Timestamp(key string, v *uint64)
	Amount(key string, v *string)
	Asset(key string, v *ledger.Asset)
	Price(key string, v *ledger.Price)
	Opaque(key string, v *[]byte, minBytes, maxBytes int)
	SignerKey(key string, v *ledger.Signer)

	// Enum handles a type tag: prefix + UPPER_SNAKE(*v). A tag that is not
	// in canonical form fails with the unknown kind.
	Enum(key, prefix string, v *string, unknown error)
	// Present handles `key._present` and reports whether the value follows.
	Present(key string, present bool) bool
	// Len handles `key.len` and reports the element count.
	Len(key string, n int) int

	Fail(key string, kind error, detail string)
	Failed() bool
}

func walkTransaction(w fieldWalker, tx ledger.Transaction) ledger.Transaction {
	w.Account("tx.sourceAccount", &tx.SourceAccount)
	w.Uint32("tx.fee", &tx.Fee)
	w.Int64("tx.seqNum", &tx.SeqNum)
	walkOptional(w, "tx.timeBounds", &tx.TimeBounds, func(key string, tb *ledger.TimeBounds) {
		w.Timestamp(key+".minTime", &tb.MinTime)
		w.Timestamp(key+".maxTime", &tb.MaxTime)
	})
	tx.Memo = walkMemo(w, tx.Memo)
	tx.Operations = walkSlice(w, "tx.operations", tx.Operations, walkOperation)

	var ext int64
	w.Int64("tx.ext.v", &ext)
	if ext != 0 {
		w.Fail("tx.ext.v", ErrInvalidNumeric, fmt.Sprintf("extension version %d is not supported", ext))
	}

	tx.Signatures = walkSlice(w, "signatures", tx.Signatures, walkSignature)
	return tx
}

func walkMemo(w fieldWalker, memo ledger.Memo) ledger.Memo {
	const key = "tx.memo"
	name := string(memo.Kind())
	w.Enum(key+".type", "MEMO_", &name, ErrUnknownMemoType)
	if w.Failed() {
		return memo
	}

	switch ledger.MemoType(name) {
	case ledger.MemoNone:
		return ledger.NoMemo()
	case ledger.MemoText:
		w.Text(key+".text", &memo.Text, maxMemoTextBytes)
		return ledger.NewTextMemo(memo.Text)
	case ledger.MemoID:
		w.Uint64(key+".id", &memo.ID)
		return ledger.NewIDMemo(memo.ID)
	case ledger.MemoHash:
		w.Opaque(key+".hash", &memo.Hash, hashBytes, hashBytes)
		return ledger.NewHashMemo(memo.Hash)
	case ledger.MemoReturn:
		w.Opaque(key+".retHash", &memo.Hash, hashBytes, hashBytes)
		return ledger.NewReturnMemo(memo.Hash)
	}
	w.Fail(key+".type", ErrUnknownMemoType, name)
	return memo
}

func walkOperation(w fieldWalker, key string, op ledger.Operation) ledger.Operation {
	walkOptional(w, key+".sourceAccount", &op.SourceAccount, w.Account)

	typeKey := key + ".body.type"
	var name string
	if op.Body != nil {
		name = string(op.Body.Type())
	}
	w.Enum(typeKey, "", &name, ErrUnknownOperationKind)
	if w.Failed() {
		return op
	}

	body := op.Body
	if body == nil {
		fresh, ok := ledger.NewOperationBody(ledger.OperationType(name))
		if !ok {
			w.Fail(typeKey, ErrUnknownOperationKind, name)
			return op
		}
		body = fresh
	}
	op.Body = walkBody(w, key+".body", body)
	return op
}

// walkBody lists the fields of every operation variant. Fields live under
// body.<type>Op except for accountMerge, whose destination sits directly
// under body.
func walkBody(w fieldWalker, key string, body ledger.OperationBody) ledger.OperationBody {
	op := key + "." + string(body.Type()) + "Op"

	switch b := body.(type) {
	case ledger.CreateAccount:
		w.Account(op+".destination", &b.Destination)
		w.Amount(op+".startingBalance", &b.StartingBalance)
		return b

	case ledger.Payment:
		w.Account(op+".destination", &b.Destination)
		w.Asset(op+".asset", &b.Asset)
		w.Amount(op+".amount", &b.Amount)
		return b

	case ledger.PathPaymentStrictReceive:
		w.Asset(op+".sendAsset", &b.SendAsset)
		w.Amount(op+".sendMax", &b.SendMax)
		w.Account(op+".destination", &b.Destination)
		w.Asset(op+".destAsset", &b.DestAsset)
		w.Amount(op+".destAmount", &b.DestAmount)
		b.Path = walkSlice(w, op+".path", b.Path, walkPathAsset)
		return b

	case ledger.PathPaymentStrictSend:
		w.Asset(op+".sendAsset", &b.SendAsset)
		w.Amount(op+".sendAmount", &b.SendAmount)
		w.Account(op+".destination", &b.Destination)
		w.Asset(op+".destAsset", &b.DestAsset)
		w.Amount(op+".destMin", &b.DestMin)
		b.Path = walkSlice(w, op+".path", b.Path, walkPathAsset)
		return b

	case ledger.ManageSellOffer:
		w.Asset(op+".selling", &b.Selling)
		w.Asset(op+".buying", &b.Buying)
		w.Amount(op+".amount", &b.Amount)
		w.Price(op+".price", &b.Price)
		w.Int64(op+".offerID", &b.OfferID)
		return b

	case ledger.CreatePassiveSellOffer:
		w.Asset(op+".selling", &b.Selling)
		w.Asset(op+".buying", &b.Buying)
		w.Amount(op+".amount", &b.Amount)
		w.Price(op+".price", &b.Price)
		return b

	case ledger.SetOptions:
		walkOptional(w, op+".inflationDest", &b.InflationDest, w.Account)
		walkOptional(w, op+".clearFlags", &b.ClearFlags, w.Uint32)
		walkOptional(w, op+".setFlags", &b.SetFlags, w.Uint32)
		walkOptional(w, op+".masterWeight", &b.MasterWeight, w.Uint32)
		walkOptional(w, op+".lowThreshold", &b.LowThreshold, w.Uint32)
		walkOptional(w, op+".medThreshold", &b.MedThreshold, w.Uint32)
		walkOptional(w, op+".highThreshold", &b.HighThreshold, w.Uint32)
		walkOptional(w, op+".homeDomain", &b.HomeDomain, func(key string, v *string) {
			w.Text(key, v, maxHomeDomainBytes)
		})
		walkOptional(w, op+".signer", &b.Signer, func(key string, s *ledger.Signer) {
			w.SignerKey(key+".key", s)
			w.Uint32(key+".weight", &s.Weight)
		})
		return b

	case ledger.ChangeTrust:
		w.Asset(op+".line", &b.Line)
		walkOptional(w, op+".limit", &b.Limit, w.Amount)
		return b

	case ledger.AllowTrust:
		w.Account(op+".trustor", &b.Trustor)
		w.AssetCode(op+".asset", &b.AssetCode)
		w.Uint32(op+".authorize", &b.Authorize)
		return b

	case ledger.AccountMerge:
		w.Account(key+".destination", &b.Destination)
		return b

	case ledger.ManageData:
		w.Text(op+".dataName", &b.Name, maxDataNameBytes)
		walkOptional(w, op+".dataValue", &b.Value, func(key string, v *[]byte) {
			w.Opaque(key, v, 0, maxDataValueBytes)
		})
		return b

	case ledger.BumpSequence:
		w.Int64(op+".bumpTo", &b.BumpTo)
		return b

	case ledger.ManageBuyOffer:
		w.Asset(op+".selling", &b.Selling)
		w.Asset(op+".buying", &b.Buying)
		w.Amount(op+".buyAmount", &b.BuyAmount)
		w.Price(op+".price", &b.Price)
		w.Int64(op+".offerID", &b.OfferID)
		return b
	}

	w.Fail(key+".type", ErrUnknownOperationKind, fmt.Sprintf("%T", body))
	return body
}

func walkPathAsset(w fieldWalker, key string, asset ledger.Asset) ledger.Asset {
	w.Asset(key, &asset)
	return asset
}

func walkSignature(w fieldWalker, key string, sig ledger.DecoratedSignature) ledger.DecoratedSignature {
	w.Opaque(key+".hint", &sig.Hint, hintBytes, hintBytes)
	w.Opaque(key+".signature", &sig.Signature, 0, maxSignatureBytes)
	return sig
}

// walkOptional frames an optional value with its `_present` line.
func walkOptional[T any](w fieldWalker, key string, v *optional.Option[T], walk func(key string, v *T)) {
	if !w.Present(key, v.IsSome()) {
		*v = optional.None[T]()
		return
	}
	value := v.Unwrap()
	walk(key, &value)
	*v = optional.Some(value)
}

// walkSlice frames a sequence with its `.len` line. The result is always a
// fresh slice so that encoding never writes into the caller's value; an
// empty sequence comes back as nil.
func walkSlice[T any](w fieldWalker, key string, items []T, walk func(w fieldWalker, key string, item T) T) []T {
	n := w.Len(key, len(items))
	if n <= 0 || w.Failed() {
		return nil
	}

	out := make([]T, n)
	for i := 0; i < n && !w.Failed(); i++ {
		var item T
		if i < len(items) {
			item = items[i]
		}
		out[i] = walk(w, fmt.Sprintf("%s[%d]", key, i), item)
	}
	return out
}
