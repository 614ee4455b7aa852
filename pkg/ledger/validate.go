package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/SunceWallet/txrep/pkg/numeric"
	"github.com/SunceWallet/txrep/pkg/strkey"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func engine() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// the custom tags below cannot fail to register
		_ = validate.RegisterValidation("accountid", func(fl validator.FieldLevel) bool {
			return strkey.IsValid(strkey.VersionAccountID, fl.Field().String())
		})
		_ = validate.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
			_, err := numeric.ToStroops(fl.Field().String())
			return err == nil
		})
		_ = validate.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
			limit, err := strconv.Atoi(fl.Param())
			return err == nil && len(fl.Field().String()) <= limit
		})
	})
	return validate
}

// Validate checks the structural rules of the model: account checksums,
// amount precision, memo and signature sizes. It does not check whether the
// operations make sense together.
func Validate(env Envelope) error {
	switch e := env.(type) {
	case Transaction:
		return validateTransaction(&e)
	case *Transaction:
		return validateTransaction(e)
	case FeeBumpTransaction:
		return validateFeeBump(&e)
	case *FeeBumpTransaction:
		return validateFeeBump(e)
	}
	return fmt.Errorf("%w: %T", ErrInvalidEnvelope, env)
}

func validateFeeBump(fb *FeeBumpTransaction) error {
	if err := engine().Struct(fb); err != nil {
		return err
	}
	return nil
}

func validateTransaction(tx *Transaction) error {
	v := engine()
	var errs []error

	if err := v.Struct(tx); err != nil {
		errs = append(errs, err)
	}
	if tx.Memo.Kind() == MemoHash || tx.Memo.Kind() == MemoReturn {
		if len(tx.Memo.Hash) != 32 {
			errs = append(errs, fmt.Errorf("memo %s must be 32 bytes, got %d", tx.Memo.Kind(), len(tx.Memo.Hash)))
		}
	}
	tx.TimeBounds.IfSome(func(tb TimeBounds) {
		if tb.MaxTime != 0 && tb.MaxTime < tb.MinTime {
			errs = append(errs, fmt.Errorf("time bounds: maxTime %d before minTime %d", tb.MaxTime, tb.MinTime))
		}
	})

	for i, op := range tx.Operations {
		if op.Body == nil {
			errs = append(errs, fmt.Errorf("operations[%d]: %w: empty body", i, ErrUnknownOperation))
			continue
		}
		op.SourceAccount.IfSome(func(source string) {
			if !strkey.IsValid(strkey.VersionAccountID, source) {
				errs = append(errs, fmt.Errorf("operations[%d]: invalid source account %q", i, source))
			}
		})
		if err := v.Struct(op.Body); err != nil {
			errs = append(errs, fmt.Errorf("operations[%d] %s: %w", i, op.Body.Type(), err))
		}
		if err := validateOptionals(op.Body); err != nil {
			errs = append(errs, fmt.Errorf("operations[%d] %s: %w", i, op.Body.Type(), err))
		}
	}

	return errors.Join(errs...)
}

// validateOptionals covers fields the struct tags cannot reach.
func validateOptionals(body OperationBody) error {
	var errs []error
	switch b := body.(type) {
	case SetOptions:
		b.InflationDest.IfSome(func(dest string) {
			if !strkey.IsValid(strkey.VersionAccountID, dest) {
				errs = append(errs, fmt.Errorf("invalid inflation destination %q", dest))
			}
		})
		b.HomeDomain.IfSome(func(domain string) {
			if len(domain) > 32 {
				errs = append(errs, fmt.Errorf("home domain longer than 32 bytes"))
			}
		})
		b.Signer.IfSome(func(s Signer) {
			if _, err := s.Key(); err != nil {
				errs = append(errs, err)
			}
		})
	case ChangeTrust:
		b.Limit.IfSome(func(limit string) {
			if _, err := numeric.ToStroops(limit); err != nil {
				errs = append(errs, fmt.Errorf("limit: %w", err))
			}
		})
	case ManageData:
		b.Value.IfSome(func(value []byte) {
			if len(value) > 64 {
				errs = append(errs, fmt.Errorf("data value longer than 64 bytes"))
			}
		})
	}
	return errors.Join(errs...)
}
