package entity

import (
	"fmt"
	"strings"
)

// Violation names one broken field rule.
type Violation struct {
	Field string
	Rule  string
}

func (v Violation) String() string {
	return v.Field + ": " + v.Rule
}

// Violations collects every broken rule of a record. A nil value means the
// record is valid.
type Violations []Violation

func (vs Violations) Error() string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return "invalid record: " + strings.Join(parts, "; ")
}

func (vs Violations) orNil() error {
	if len(vs) == 0 {
		return nil
	}
	return vs
}

type checker struct {
	out Violations
}

func (c *checker) fail(field, rule string, args ...any) {
	if len(args) > 0 {
		rule = fmt.Sprintf(rule, args...)
	}
	c.out = append(c.out, Violation{Field: field, Rule: rule})
}

func (c *checker) prefix(field, id, prefix string) {
	if !HasPrefix(id, prefix) {
		c.fail(field, "must start with %q", prefix)
	}
}

func (c *checker) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.fail(field, "is required")
	}
}

func (c *checker) digits(field, value string, minLen, maxLen int) {
	if !isDigits(value) {
		c.fail(field, "must contain digits only")
		return
	}

	n := len(value)
	switch {
	case minLen == maxLen && n != minLen:
		c.fail(field, "must have exactly %d digits", minLen)
	case n < minLen || n > maxLen:
		c.fail(field, "must have %d to %d digits", minLen, maxLen)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func ValidateClientType(ct *ClientType) error {
	var c checker
	if ct.IDTypeClient < MinClientTypeID || ct.IDTypeClient > MaxClientTypeID {
		c.fail("id_type_client", "must be between %d and %d", MinClientTypeID, MaxClientTypeID)
	}
	return c.out.orNil()
}

// party holds the fields Client and Executor share, keyed by column name.
type party struct {
	suffix                         string
	inn, ogrn                      string
	kpp                            *string
	cor, acc, bik                  string
	name, adress, bank             string
	contact, mail, tel, messengers string
}

func (p party) check(c *checker) {
	col := func(attr string) string { return attr + "_" + p.suffix }

	c.digits(col("inn"), p.inn, InnMinLength, InnMaxLength)
	c.digits(col("ogrn"), p.ogrn, OgrnMinLength, OgrnMaxLength)
	if p.kpp != nil {
		c.digits(col("kpp"), *p.kpp, KppLength, KppLength)
	}
	c.digits(col("cor_bank"), p.cor, AccountLength, AccountLength)
	c.digits(col("acc_bank"), p.acc, AccountLength, AccountLength)
	c.digits(col("bik_bank"), p.bik, BikLength, BikLength)

	c.required(col("name"), p.name)
	c.required(col("adress"), p.adress)
	c.required(col("bank"), p.bank)
	c.required(col("contact_name"), p.contact)
	c.required(col("mail"), p.mail)
	c.required(col("tel"), p.tel)
	c.required(col("mess"), p.messengers)
}

func ValidateClient(cl *Client) error {
	var c checker
	c.prefix("id_client", cl.IDClient, PrefixClient)
	party{
		suffix: "client",
		inn:    cl.InnClient, ogrn: cl.OgrnClient, kpp: cl.KppClient,
		cor: cl.CorBankClient, acc: cl.AccBankClient, bik: cl.BikBankClient,
		name: cl.NameClient, adress: cl.AdressClient, bank: cl.BankClient,
		contact: cl.ContactNameClient, mail: cl.MailClient, tel: cl.TelClient, messengers: cl.MessClient,
	}.check(&c)
	return c.out.orNil()
}

func ValidateExecutor(ex *Executor) error {
	var c checker
	c.prefix("id_executor", ex.IDExecutor, PrefixExecutor)
	party{
		suffix: "executor",
		inn:    ex.InnExecutor, ogrn: ex.OgrnExecutor, kpp: ex.KppExecutor,
		cor: ex.CorBankExecutor, acc: ex.AccBankExecutor, bik: ex.BikBankExecutor,
		name: ex.NameExecutor, adress: ex.AdressExecutor, bank: ex.BankExecutor,
		contact: ex.ContactNameExecutor, mail: ex.MailExecutor, tel: ex.TelExecutor, messengers: ex.MessExecutor,
	}.check(&c)
	return c.out.orNil()
}

func ValidateSampleContract(sc *SampleContract) error {
	var c checker
	c.prefix("id_sample_contract", sc.IDSampleContract, PrefixSampleContract)
	c.required("name_sample_contract", sc.NameSampleContract)
	c.required("path_sample_contract", sc.PathSampleContract)
	return c.out.orNil()
}

func ValidateSampleAttach(sa *SampleAttach) error {
	var c checker
	c.prefix("id_sample_attach", sa.IDSampleAttach, PrefixSampleAttach)
	c.prefix("id_sample_contract", sa.IDSampleContract, PrefixSampleContract)
	c.required("name_sample_attach", sa.NameSampleAttach)
	c.required("path_sample_attach", sa.PathSampleAttach)
	return c.out.orNil()
}

func ValidateService(s *Service) error {
	var c checker
	c.prefix("id_service", s.IDService, PrefixService)
	c.prefix("id_sample_contract", s.IDSampleContract, PrefixSampleContract)
	c.required("name_service", s.NameService)
	return c.out.orNil()
}

func ValidateDeal(d *Deal) error {
	var c checker
	c.prefix("id_deal", d.IDDeal, PrefixDeal)
	c.prefix("id_client", d.IDClient, PrefixClient)
	c.prefix("id_executor", d.IDExecutor, PrefixExecutor)
	if !isDigits(d.NumberDeal) {
		c.fail("number_deal", "must contain digits only")
	}
	if d.DateDeal.IsZero() {
		c.fail("date_deal", "is required")
	}
	return c.out.orNil()
}

// MaxPriceScale is the number of fraction digits a price may carry.
const MaxPriceScale = 2

func ValidateAttachment(a *Attachment) error {
	var c checker
	c.prefix("id_attachment", a.IDAttachment, PrefixAttachment)
	c.prefix("id_deal", a.IDDeal, PrefixDeal)
	c.prefix("id_service", a.IDService, PrefixService)
	c.required("place_attachment", a.PlaceAttachment)

	if a.DateStartAttachment.IsZero() {
		c.fail("date_start_attachment", "is required")
	}
	if a.DateEndAttachment.IsZero() {
		c.fail("date_end_attachment", "is required")
	}
	if a.DateEndAttachment.Before(a.DateStartAttachment) {
		c.fail("date_end_attachment", "must not be earlier than date_start_attachment")
	}

	if a.PriceAttachment.Valid {
		price := a.PriceAttachment.Decimal
		if price.IsNegative() {
			c.fail("price_attachment", "must not be negative")
		}
		if -price.Exponent() > MaxPriceScale && !price.Equal(price.Truncate(MaxPriceScale)) {
			c.fail("price_attachment", "must have at most %d decimal places", MaxPriceScale)
		}
	}
	return c.out.orNil()
}
