package pix

import (
	"strconv"
	"strings"
)

// PaymentParams are the high-level inputs for a merchant presentment.
// Key, MerchantName and MerchantCity are mandatory; the rest are
// optional and omitted from the payload when empty.
type PaymentParams struct {
	Key           string
	MerchantName  string
	MerchantCity  string
	Amount        string
	TransactionID string
	Description   string
}

// CreatePayment assembles the canonical field tree for the given
// parameters. The layout is fixed: payload format, merchant account info
// (GUI + key), category code, currency, the optional amount, then
// country, merchant name and city (both uppercased), and finally the
// additional-data template when a transaction id or description is set.
//
// The key is carried verbatim; only name and city are uppercased. The
// returned document still needs Encode to become a wire string.
func CreatePayment(params PaymentParams) (*PaymentDocument, error) {
	switch {
	case params.Key == "":
		return nil, &ParameterError{Name: "key", Err: ErrMissingParameter}
	case params.MerchantName == "":
		return nil, &ParameterError{Name: "merchantName", Err: ErrMissingParameter}
	case params.MerchantCity == "":
		return nil, &ParameterError{Name: "merchantCity", Err: ErrMissingParameter}
	}

	fields := []Field{
		{ID: IDPayloadFormat, Value: PayloadFormatVersion},
		{ID: IDMerchantAccountInfo, Subfields: []Field{
			{ID: SubIDGUI, Value: PixGUI},
			{ID: SubIDKey, Value: params.Key},
		}},
		{ID: IDMerchantCategory, Value: MerchantCategoryNone},
		{ID: IDCurrency, Value: CurrencyBRL},
	}

	// The amount slots in right before the fixed country/name/city tail.
	if params.Amount != "" {
		amount, err := formatAmount(params.Amount)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{ID: IDAmount, Value: amount})
	}

	fields = append(fields,
		Field{ID: IDCountryCode, Value: CountryBrazil},
		Field{ID: IDMerchantName, Value: strings.ToUpper(params.MerchantName)},
		Field{ID: IDMerchantCity, Value: strings.ToUpper(params.MerchantCity)},
	)

	if params.TransactionID != "" || params.Description != "" {
		fields = append(fields, additionalDataField(params))
	}

	return &PaymentDocument{Fields: fields}, nil
}

// additionalDataField builds template 62: the optional transaction id and
// description, plus the always-present payment-system sub-template that
// identifies the BR Code arrangement and version.
func additionalDataField(params PaymentParams) Field {
	var sub []Field
	if params.TransactionID != "" {
		sub = append(sub, Field{ID: SubIDTransactionID, Value: params.TransactionID})
	}
	if params.Description != "" {
		sub = append(sub, Field{ID: SubIDDescription, Value: params.Description})
	}
	sub = append(sub, Field{ID: SubIDPaymentSystem, Subfields: []Field{
		{ID: SubIDGUI, Value: BRCodeGUI},
		{ID: SubIDVersion, Value: BRCodeVersion},
	}})
	return Field{ID: IDAdditionalData, Subfields: sub}
}

// formatAmount normalizes a decimal amount to exactly two fraction
// digits, e.g. "123.4" becomes "123.40".
func formatAmount(raw string) (string, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", &ParameterError{Name: "amount", Err: ErrInvalidAmount}
	}
	return strconv.FormatFloat(v, 'f', 2, 64), nil
}
