// Package txrep converts ledger transactions to and from txrep, a
// line-oriented text form meant to be read and edited by people:
//
//	tx.sourceAccount: GCUNWINQBGP6ZLAFNAU74OYZCMPBY4NQO6RCOBL2LEUKIWV3VQO7YOBF
//	tx.fee: 100
//	tx.seqNum: 1
//	tx.timeBounds._present: false
//	tx.memo.type: MEMO_NONE
//	tx.operations.len: 1
//	tx.operations[0].sourceAccount._present: false
//	tx.operations[0].body.type: PAYMENT
//	tx.operations[0].body.paymentOp.destination: GBAF6NXN3DHSF357QBZLTBNWUTABKUODJXJYYE32ZDKA2QBM2H33IK6O
//	tx.operations[0].body.paymentOp.asset: XLM
//	tx.operations[0].body.paymentOp.amount: 123400000 (12.34e7)
//	tx.ext.v: 0
//	signatures.len: 0
//
// Optional values are framed by a `._present` line, sequences by a `.len`
// line. Amounts are written in stroops (1e-7 units), prices as a n/d pair,
// bytes as lowercase hex and strings as JSON string literals. Anything after
// the first token of a value is an annotation and is ignored on decode.
//
// Encoding and decoding run the same field grammar, so for every valid
// transaction Decode(Encode(tx)) equals tx.
package txrep
