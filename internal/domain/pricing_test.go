package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceRegistration_SharedNoOptions(t *testing.T) {
	q := PriceRegistration(BedroomShared, nil, PaymentTypeFull)

	assert.Equal(t, 600, q.BasePrice)
	assert.Equal(t, 0, q.BedroomUpgrade)
	assert.Equal(t, 0, q.OptionsTotal)
	assert.Equal(t, 600, q.Total)
	assert.Equal(t, 600, q.AmountDue)
}

func TestPriceRegistration_PrivateDoubleUpgrade(t *testing.T) {
	q := PriceRegistration(BedroomPrivateDouble, nil, PaymentTypeFull)

	assert.Equal(t, 90, q.BedroomUpgrade)
	assert.Equal(t, 690, q.Total)
	assert.Equal(t, 690, q.AmountDue)
}

func TestPriceRegistration_SharedWithOptions(t *testing.T) {
	options := []RegistrationOption{
		{Type: OptionHammam, Price: 25},
		{Type: OptionMedinaTour, Price: 30},
	}

	q := PriceRegistration(BedroomShared, options, PaymentTypeFull)

	assert.Equal(t, 55, q.OptionsTotal)
	assert.Equal(t, 655, q.Total)
	assert.Equal(t, 655, q.AmountDue)
}

func TestPriceRegistration_DepositIgnoresOptions(t *testing.T) {
	options := []RegistrationOption{
		{Type: OptionSurfTrip, Price: 55},
		{Type: OptionSpaEvening, Price: 35},
	}

	q := PriceRegistration(BedroomPrivateDouble, options, PaymentTypeDeposit)

	// Deposit is a fixed amount; the full total is still quoted.
	assert.Equal(t, 780, q.Total)
	assert.Equal(t, 200, q.AmountDue)
}

func TestOptionPrice(t *testing.T) {
	price, err := OptionPrice(OptionAirportTransfer)
	require.NoError(t, err)
	assert.Equal(t, 20, price)

	_, err = OptionPrice(OptionType("helicopter_tour"))
	assert.Error(t, err)
}
