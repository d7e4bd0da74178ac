package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PackageStatus represents where a package is in its lifecycle
type PackageStatus int

const (
	PackageStatusPending  PackageStatus = 0
	PackageStatusPickedUp PackageStatus = 1
	PackageStatusReturned PackageStatus = 2
)

func (s PackageStatus) String() string {
	names := [...]string{"Pending", "PickedUp", "Returned"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Pending"
	}
	return names[s]
}

func (s PackageStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PackageStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PackageStatus(i)
		return nil
	}
	switch str {
	case "Pending":
		*s = PackageStatusPending
	case "PickedUp":
		*s = PackageStatusPickedUp
	case "Returned":
		*s = PackageStatusReturned
	}
	return nil
}

func (s PackageStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PackageStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PackageStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PackageStatus(v)
	case int:
		*s = PackageStatus(v)
	}
	return nil
}
