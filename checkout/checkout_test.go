package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrsteele09/go-storefront-client/catalog"
	"github.com/jrsteele09/go-storefront-client/checkout"
	"github.com/jrsteele09/go-storefront-client/session"
)

func testProfile() *session.Profile {
	return &session.Profile{
		ID:              "profile-1",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		ShippingAddress: "1 Analytical Way, London, LDN, E1 6AN, UK",
		BillingAddress:  "2 Engine Court, London, LDN, E1 6AN, UK",
	}
}

func testCart() catalog.Cart {
	return catalog.Cart{
		ID: "cart-1",
		Items: []catalog.CartItem{
			{ID: "ci-1", ProductID: "p1", Quantity: 2, Color: "black", Size: "256GB"},
			{ID: "ci-2", ProductID: "p2", Quantity: 1},
		},
		TotalPrice: 450.00,
	}
}

func cardDetails() checkout.Details {
	return checkout.Details{
		ShippingOption: checkout.AddressSaved,
		BillingOption:  checkout.AddressSaved,
		Payment:        checkout.PaymentCard,
		Card: checkout.Card{
			Number: "4111 1111 1111 1234",
			Expiry: "12/27",
			CVV:    "123",
		},
	}
}

func TestValidateSavedAddressesWithCard(t *testing.T) {
	require.NoError(t, cardDetails().Validate(testProfile()))
}

func TestValidateSavedAddressRequiresProfile(t *testing.T) {
	err := cardDetails().Validate(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "shipping address")
}

func TestValidateNewAddressMustBeComplete(t *testing.T) {
	details := cardDetails()
	details.ShippingOption = checkout.AddressNew
	details.ShippingNew = checkout.Address{AddressLine1: "5 High St", City: "Leeds"}

	err := details.Validate(testProfile())
	require.Error(t, err)
	require.Contains(t, err.Error(), "incomplete")
}

func TestValidateCardFieldsRequired(t *testing.T) {
	details := cardDetails()
	details.Card.CVV = ""

	err := details.Validate(testProfile())
	require.Error(t, err)
	require.Contains(t, err.Error(), "card details")
}

func TestValidateDeliveryNeedsNoCard(t *testing.T) {
	details := cardDetails()
	details.Payment = checkout.PaymentDelivery
	details.Card = checkout.Card{}

	require.NoError(t, details.Validate(testProfile()))
}

func TestValidateRejectsUnknownPaymentMethod(t *testing.T) {
	details := cardDetails()
	details.Payment = "iou"

	require.Error(t, details.Validate(testProfile()))
}

func TestMaskedNumberKeepsLastFourDigits(t *testing.T) {
	card := checkout.Card{Number: "4111 1111 1111 1234"}
	require.Equal(t, "1234", card.MaskedNumber())

	short := checkout.Card{Number: "99"}
	require.Equal(t, "99", short.MaskedNumber())
}

func TestAddressStringJoinsFields(t *testing.T) {
	addr := checkout.Address{
		AddressLine1: "5 High St",
		City:         "Leeds",
		State:        "WY",
		PostalCode:   "LS1 1AA",
		Country:      "UK",
	}
	require.Equal(t, "5 High St, Leeds, WY, LS1 1AA, UK", addr.String())
}

func TestBuildOrderPayloadWithCard(t *testing.T) {
	user := &session.User{ID: "u1", Email: "ada@example.com", Username: "ada"}

	payload, err := checkout.BuildOrderPayload(user, testProfile(), testCart(), cardDetails())
	require.NoError(t, err)

	require.Equal(t, "u1", payload.UserID)
	require.Equal(t, "card", payload.PaymentMethod)
	require.Equal(t, testProfile().ShippingAddress, payload.ShippingAddress)
	require.Equal(t, testProfile().BillingAddress, payload.BillingAddress)
	require.Equal(t, "1234", payload.CardLast4)
	require.Equal(t, "12/27", payload.CardExpiry)

	require.Len(t, payload.Items, 2)
	require.Equal(t, "p1", payload.Items[0].ProductID)
	require.Equal(t, 2, payload.Items[0].Quantity)
	require.Equal(t, "black", payload.Items[0].Color)
}

func TestBuildOrderPayloadDeliveryOmitsCard(t *testing.T) {
	user := &session.User{ID: "u1"}
	details := cardDetails()
	details.Payment = checkout.PaymentDelivery
	details.Card = checkout.Card{}

	payload, err := checkout.BuildOrderPayload(user, testProfile(), testCart(), details)
	require.NoError(t, err)
	require.Equal(t, "delivery", payload.PaymentMethod)
	require.Empty(t, payload.CardLast4)
	require.Empty(t, payload.CardExpiry)
}

func TestBuildOrderPayloadNewAddresses(t *testing.T) {
	user := &session.User{ID: "u1"}
	details := cardDetails()
	details.ShippingOption = checkout.AddressNew
	details.ShippingNew = checkout.Address{
		AddressLine1: "5 High St", City: "Leeds", State: "WY", PostalCode: "LS1 1AA", Country: "UK",
	}

	payload, err := checkout.BuildOrderPayload(user, testProfile(), testCart(), details)
	require.NoError(t, err)
	require.Equal(t, "5 High St, Leeds, WY, LS1 1AA, UK", payload.ShippingAddress)
	require.Equal(t, testProfile().BillingAddress, payload.BillingAddress)
}

func TestBuildOrderPayloadRequiresUser(t *testing.T) {
	_, err := checkout.BuildOrderPayload(nil, testProfile(), testCart(), cardDetails())
	require.Error(t, err)
}

func TestBuildOrderPayloadRequiresNonEmptyCart(t *testing.T) {
	user := &session.User{ID: "u1"}
	_, err := checkout.BuildOrderPayload(user, testProfile(), catalog.Cart{}, cardDetails())
	require.Error(t, err)
	require.Contains(t, err.Error(), "cart is empty")
}
