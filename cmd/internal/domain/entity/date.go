package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// DateLayout is the canonical storage and wire format.
	DateLayout = "2006-01-02"

	dottedLayout = "02.01.2006"
)

var ErrInvalidDate = errors.New("invalid date, use dd.mm.yyyy or yyyy-mm-dd")

// Date is a calendar day without time or zone. It is stored as ISO text so
// lexical order in the database matches chronological order.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate accepts "dd.mm.yyyy", "yyyy-mm-dd" or a full RFC3339 timestamp
// (only its date part is kept).
func ParseDate(raw string) (Date, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Date{}, ErrInvalidDate
	}

	layouts := []string{DateLayout, time.RFC3339}
	if strings.Contains(s, ".") {
		layouts = []string{dottedLayout}
	}

	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, ErrInvalidDate
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) Before(o Date) bool {
	return d.Time.Before(o.Time)
}

func (d Date) After(o Date) bool {
	return d.Time.After(o.Time)
}

func (Date) GormDataType() string {
	return "date"
}

func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("entity.Date: cannot scan %T", src)
	}
}

func (d *Date) scanString(s string) error {
	parsed, err := ParseDate(s)
	if err != nil {
		// Some drivers render DATE columns with a time suffix.
		if len(s) >= len(DateLayout) {
			parsed, err = ParseDate(s[:len(DateLayout)])
		}
		if err != nil {
			return fmt.Errorf("entity.Date: %q: %w", s, err)
		}
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := ParseDate(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
