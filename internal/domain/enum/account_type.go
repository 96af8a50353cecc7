package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// AccountType classifies an account in the chart of accounts.
type AccountType int

const (
	AccountTypeAsset      AccountType = 0
	AccountTypeLiability  AccountType = 1
	AccountTypeEquity     AccountType = 2
	AccountTypeIncome     AccountType = 3
	AccountTypeExpense    AccountType = 4
	AccountTypeBank       AccountType = 5
	AccountTypeCash       AccountType = 6
	AccountTypeReceivable AccountType = 7
	AccountTypePayable    AccountType = 8
)

func (t AccountType) String() string {
	names := [...]string{"Asset", "Liability", "Equity", "Income", "Expense", "Bank", "Cash", "Receivable", "Payable"}
	if int(t) < 0 || int(t) >= len(names) {
		return "Unknown"
	}
	return names[t]
}

// Valid reports whether t is a defined account type.
func (t AccountType) Valid() bool {
	return t >= AccountTypeAsset && t <= AccountTypePayable
}

func (t AccountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *AccountType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = AccountType(i)
		return nil
	}
	switch str {
	case "Asset":
		*t = AccountTypeAsset
	case "Liability":
		*t = AccountTypeLiability
	case "Equity":
		*t = AccountTypeEquity
	case "Income":
		*t = AccountTypeIncome
	case "Expense":
		*t = AccountTypeExpense
	case "Bank":
		*t = AccountTypeBank
	case "Cash":
		*t = AccountTypeCash
	case "Receivable":
		*t = AccountTypeReceivable
	case "Payable":
		*t = AccountTypePayable
	default:
		*t = AccountType(-1)
	}
	return nil
}

func (t AccountType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *AccountType) Scan(value interface{}) error {
	if value == nil {
		*t = AccountTypeAsset
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = AccountType(v)
	case int:
		*t = AccountType(v)
	}
	return nil
}
