package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SplitAction classifies what a ledger split represents. Settlement matching
// only considers SplitActionPayment splits.
type SplitAction int

const (
	SplitActionNone    SplitAction = 0
	SplitActionInvoice SplitAction = 1
	SplitActionBill    SplitAction = 2
	SplitActionVoucher SplitAction = 3
	SplitActionPayment SplitAction = 4
	SplitActionBuy     SplitAction = 5
	SplitActionSell    SplitAction = 6
)

func (a SplitAction) String() string {
	names := [...]string{"None", "Invoice", "Bill", "Voucher", "Payment", "Buy", "Sell"}
	if int(a) < 0 || int(a) >= len(names) {
		return "None"
	}
	return names[a]
}

// splitActionNames maps each action to its display string per supported
// locale. A static table replaces any runtime lookup of locale-named
// resources; unknown locales fall back to English.
var splitActionNames = map[string][]string{
	"en": {"", "Invoice", "Bill", "Voucher", "Payment", "Buy", "Sell"},
	"de": {"", "Rechnung", "Lieferantenrechnung", "Auslagenerstattung", "Zahlung", "Kauf", "Verkauf"},
	"fr": {"", "Facture", "Facture fournisseur", "Bon de dépense", "Paiement", "Achat", "Vente"},
}

// DisplayName returns the localized display string for the action.
func (a SplitAction) DisplayName(locale string) string {
	names, ok := splitActionNames[locale]
	if !ok {
		names = splitActionNames["en"]
	}
	if int(a) < 0 || int(a) >= len(names) {
		return ""
	}
	return names[a]
}

func (a SplitAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *SplitAction) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*a = SplitAction(i)
		return nil
	}
	switch str {
	case "Invoice":
		*a = SplitActionInvoice
	case "Bill":
		*a = SplitActionBill
	case "Voucher":
		*a = SplitActionVoucher
	case "Payment":
		*a = SplitActionPayment
	case "Buy":
		*a = SplitActionBuy
	case "Sell":
		*a = SplitActionSell
	default:
		*a = SplitActionNone
	}
	return nil
}

func (a SplitAction) Value() (driver.Value, error) {
	return int64(a), nil
}

func (a *SplitAction) Scan(value interface{}) error {
	if value == nil {
		*a = SplitActionNone
		return nil
	}
	switch v := value.(type) {
	case int64:
		*a = SplitAction(v)
	case int:
		*a = SplitAction(v)
	}
	return nil
}
