package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OwnerType identifies who a generic invoice is issued against. A job owner
// additionally carries its own owner (customer or vendor), which gives the
// ultimate type used to route invoice specialization.
type OwnerType int

const (
	OwnerTypeCustomer OwnerType = 0
	OwnerTypeVendor   OwnerType = 1
	OwnerTypeEmployee OwnerType = 2
	OwnerTypeJob      OwnerType = 3
)

func (t OwnerType) String() string {
	names := [...]string{"Customer", "Vendor", "Employee", "Job"}
	if int(t) < 0 || int(t) >= len(names) {
		return "Unknown"
	}
	return names[t]
}

// Valid reports whether t is one of the four defined owner types.
func (t OwnerType) Valid() bool {
	return t >= OwnerTypeCustomer && t <= OwnerTypeJob
}

func (t OwnerType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *OwnerType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = OwnerType(i)
		return nil
	}
	switch str {
	case "Customer":
		*t = OwnerTypeCustomer
	case "Vendor":
		*t = OwnerTypeVendor
	case "Employee":
		*t = OwnerTypeEmployee
	case "Job":
		*t = OwnerTypeJob
	default:
		*t = OwnerType(-1)
	}
	return nil
}

func (t OwnerType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *OwnerType) Scan(value interface{}) error {
	if value == nil {
		*t = OwnerTypeCustomer
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = OwnerType(v)
	case int:
		*t = OwnerType(v)
	}
	return nil
}
