package coinmodel

import "fmt"

// ErrInputSelectionFailure is raised when a policy cannot cover a goal from
// the remaining UTXO: the exact-match policy found no equal-value input, or
// largest-first/random exhausted the working UTXO before reaching the
// target sum.
type ErrInputSelectionFailure struct{}

func (e *ErrInputSelectionFailure) Error() string {
	return "coinmodel: input selection failure: no combination of remaining inputs covers the goal"
}

// ErrInsufficientFundsToCoverFee is raised by fee distribution when a
// receiver-regulated goal's value is smaller than its ceiling-rounded
// epsilon share, so subtracting the fee would drive it negative.
type ErrInsufficientFundsToCoverFee[A comparable] struct {
	Regulation ExpenseRegulation
	Output     Output[A]
}

func (e *ErrInsufficientFundsToCoverFee[A]) Error() string {
	return fmt.Sprintf("coinmodel: insufficient funds to cover fee on output %+v", e.Output)
}

// ErrNeedsExtraInputsToCover is raised when the selected inputs cover the
// goal values but not the fee added on top. Slack is the additional value
// the caller must supply (as reported via a SenderPaysFees goal paid to the
// treasury address) before re-invoking selection.
type ErrNeedsExtraInputsToCover[A comparable] struct {
	Regulation ExpenseRegulation
	Output     Output[A]
}

func (e *ErrNeedsExtraInputsToCover[A]) Error() string {
	return fmt.Sprintf("coinmodel: needs %d more in extra inputs to cover fee", e.Output.Val)
}
