package entity

type TxKind string

const (
	TxKindDeposit    TxKind = "DEPOSIT"
	TxKindWithdrawal TxKind = "WITHDRAWAL"
)

type SessionState string

const (
	SessionStateLoggedOut      SessionState = "LOGGED_OUT"
	SessionStateAuthenticating SessionState = "AUTHENTICATING"
	SessionStateMenuLoop       SessionState = "MENU_LOOP"
	SessionStateTerminated     SessionState = "TERMINATED"
)
