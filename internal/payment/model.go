package payment

import "grocer-be/internal/utils"

type Method string

const (
	MethodCard           Method = "card"
	MethodMobileMoney    Method = "momo"
	MethodCashOnDelivery Method = "cod"
)

// Info is the payment part of an order. Details is empty for cash on delivery.
type Info struct {
	Method  Method            `json:"method"`
	Details map[string]string `json:"details"`
}

// detailFields are the detail forms of each method. Keys are derived from the
// labels with utils.FieldKey at init.
var detailFields = map[Method][]utils.FieldRule{
	MethodCard: {
		{Label: "Card Number", Rule: "required,credit_card"},
		{Label: "Expiry Date", Rule: "required,expiry"},
		{Label: "CVV", Rule: "required,numeric,min=3,max=4"},
	},
	MethodMobileMoney: {
		{Label: "Mobile Number", Rule: "required,numeric,len=10"},
		{Label: "Network", Rule: "required,oneof=mtn telecel airteltigo"},
	},
	MethodCashOnDelivery: nil,
}

func init() {
	for _, rules := range detailFields {
		for i := range rules {
			rules[i].Key = utils.FieldKey(rules[i].Label)
		}
	}
}

// Methods lists the selectable methods in display order.
func Methods() []Method {
	return []Method{MethodCard, MethodMobileMoney, MethodCashOnDelivery}
}

func (m Method) Valid() bool {
	_, ok := detailFields[m]
	return ok
}

// Fields returns the detail fields the method requires, nil for none.
func (m Method) Fields() []utils.FieldRule {
	return detailFields[m]
}

func (m Method) RequiresDetails() bool {
	return len(detailFields[m]) > 0
}

func (m Method) Label() string {
	switch m {
	case MethodCard:
		return "Credit / Debit Card"
	case MethodMobileMoney:
		return "Mobile Money"
	case MethodCashOnDelivery:
		return "Cash on Delivery"
	default:
		return string(m)
	}
}
