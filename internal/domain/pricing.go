package domain

import "fmt"

type OptionType string

const (
	OptionHammam          OptionType = "hammam"
	OptionMedinaTour      OptionType = "medina_tour"
	OptionSurfTrip        OptionType = "surf_trip"
	OptionAirportTransfer OptionType = "airport_transfer"
	OptionSpaEvening      OptionType = "spa_evening"
)

// Fixed prices in euros.
const (
	BasePrice            = 600
	PrivateDoubleUpgrade = 90
	DepositAmount        = 200
)

var optionPrices = map[OptionType]int{
	OptionHammam:          25,
	OptionMedinaTour:      30,
	OptionSurfTrip:        55,
	OptionAirportTransfer: 20,
	OptionSpaEvening:      35,
}

// OptionPrice returns the fixed price for an add-on type.
func OptionPrice(t OptionType) (int, error) {
	price, ok := optionPrices[t]
	if !ok {
		return 0, fmt.Errorf("unknown option type %q", t)
	}
	return price, nil
}

type Quote struct {
	BasePrice      int `json:"base_price"`
	BedroomUpgrade int `json:"bedroom_upgrade"`
	OptionsTotal   int `json:"options_total"`
	Total          int `json:"total"`
	AmountDue      int `json:"amount_due"`
}

// PriceRegistration is a pure function of bedroom type, selected options
// and payment type. Deposit-mode amount due is always exactly
// DepositAmount regardless of options.
func PriceRegistration(bedroom BedroomType, options []RegistrationOption, paymentType PaymentType) Quote {
	q := Quote{
		BasePrice: BasePrice,
	}

	if bedroom == BedroomPrivateDouble {
		q.BedroomUpgrade = PrivateDoubleUpgrade
	}

	for _, opt := range options {
		q.OptionsTotal += opt.Price
	}

	q.Total = q.BasePrice + q.BedroomUpgrade + q.OptionsTotal

	if paymentType == PaymentTypeDeposit {
		q.AmountDue = DepositAmount
	} else {
		q.AmountDue = q.Total
	}

	return q
}
