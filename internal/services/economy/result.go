package economy

// Reason classifies a failed Result so adapters can map it without parsing
// the message.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonInvalidAmount
	ReasonInsufficientFunds
	ReasonSelfTransfer
	ReasonAccountNotFound
	ReasonCurrencyNotFound
	ReasonBalanceNotFound
	ReasonInternal
)

// User-facing failure messages.
const (
	MsgAmountNotPositive = "Amount must be greater than zero"
	MsgAmountNegative    = "Amount must not be negative"
	MsgInsufficientFunds = "Insufficient funds"
	MsgSelfTransfer      = "You cannot pay yourself"
	MsgAccountNotFound   = "User not found"
	MsgCurrencyNotFound  = "Currency not found"
	MsgBalanceNotFound   = "No balance found"
	MsgInternal          = "An error occurred. Please contact an administrator."
)

var reasonNames = map[Reason]string{
	ReasonNone:              "none",
	ReasonInvalidAmount:     "invalid_amount",
	ReasonInsufficientFunds: "insufficient_funds",
	ReasonSelfTransfer:      "self_transfer",
	ReasonAccountNotFound:   "account_not_found",
	ReasonCurrencyNotFound:  "currency_not_found",
	ReasonBalanceNotFound:   "balance_not_found",
	ReasonInternal:          "internal",
}

func (r Reason) String() string {
	name, ok := reasonNames[r]
	if !ok {
		return "unknown"
	}

	return name
}

// Result is the outcome of a balance-changing operation. Expected business
// failures are Results, never errors.
type Result struct {
	Reason  Reason
	Message string
}

func (r Result) OK() bool {
	return r.Reason == ReasonNone
}

func success() Result {
	return Result{Reason: ReasonNone}
}

func failure(reason Reason, msg string) Result {
	return Result{Reason: reason, Message: msg}
}
