package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TaxBasis represents how a tax table row applies its amount
type TaxBasis int

const (
	TaxBasisPercent TaxBasis = 0
	TaxBasisValue   TaxBasis = 1
)

func (b TaxBasis) String() string {
	names := [...]string{"Percent", "Value"}
	if int(b) < 0 || int(b) >= len(names) {
		return "Percent"
	}
	return names[b]
}

func (b TaxBasis) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *TaxBasis) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*b = TaxBasis(i)
		return nil
	}
	switch str {
	case "Percent":
		*b = TaxBasisPercent
	case "Value":
		*b = TaxBasisValue
	}
	return nil
}

func (b TaxBasis) Value() (driver.Value, error) {
	return int64(b), nil
}

func (b *TaxBasis) Scan(value interface{}) error {
	if value == nil {
		*b = TaxBasisPercent
		return nil
	}
	switch v := value.(type) {
	case int64:
		*b = TaxBasis(v)
	case int:
		*b = TaxBasis(v)
	}
	return nil
}
