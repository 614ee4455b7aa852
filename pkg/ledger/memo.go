package ledger

// MemoType selects the memo variant.
type MemoType string

const (
	MemoNone   MemoType = "none"
	MemoText   MemoType = "text"
	MemoID     MemoType = "id"
	MemoHash   MemoType = "hash"
	MemoReturn MemoType = "return"
)

// MemoTypes lists every memo variant.
var MemoTypes = []MemoType{MemoNone, MemoText, MemoID, MemoHash, MemoReturn}

const MaxMemoTextBytes = 28

// Memo is a tagged variant; only the field matching Type is meaningful.
// Hash carries the 32-byte value of both hash and return memos.
type Memo struct {
	Type MemoType `json:"type" validate:"omitempty,oneof=none text id hash return"`
	Text string   `json:"text,omitempty" validate:"maxbytes=28"`
	ID   uint64   `json:"id,omitempty,string"`
	Hash []byte   `json:"hash,omitempty" validate:"omitempty,len=32"`
}

// Kind reports the memo type, treating the zero Memo as MemoNone.
func (m Memo) Kind() MemoType {
	if m.Type == "" {
		return MemoNone
	}
	return m.Type
}

func NoMemo() Memo {
	return Memo{Type: MemoNone}
}

func NewTextMemo(text string) Memo {
	return Memo{Type: MemoText, Text: text}
}

func NewIDMemo(id uint64) Memo {
	return Memo{Type: MemoID, ID: id}
}

func NewHashMemo(hash []byte) Memo {
	return Memo{Type: MemoHash, Hash: hash}
}

func NewReturnMemo(hash []byte) Memo {
	return Memo{Type: MemoReturn, Hash: hash}
}
