package pix

// Top-level field ids defined by the BR Code merchant presentment layout.
const (
	IDPayloadFormat       = "00" // Payload Format Indicator, always "01"
	IDMerchantAccountInfo = "26" // Merchant Account Information (composite)
	IDMerchantCategory    = "52" // Merchant Category Code
	IDCurrency            = "53" // Transaction Currency (ISO 4217 numeric)
	IDAmount              = "54" // Transaction Amount
	IDCountryCode         = "58" // Country Code
	IDMerchantName        = "59" // Merchant Name
	IDMerchantCity        = "60" // Merchant City
	IDAdditionalData      = "62" // Additional Data Field Template (composite)
	IDCRC16               = "63" // CRC-16/CCITT-FALSE of the whole payload
)

// Subfield ids inside the composite templates.
const (
	SubIDGUI           = "00" // 26.00 and 62.50.00: Globally Unique Identifier
	SubIDKey           = "01" // 26.01: the PIX key
	SubIDDescription   = "02" // 62.02: free-form payment description
	SubIDTransactionID = "05" // 62.05: transaction reference
	SubIDPaymentSystem = "50" // 62.50: payment-system-specific template
	SubIDVersion       = "01" // 62.50.01: template version
)

// Canonical values fixed by the PIX arrangement.
const (
	PayloadFormatVersion  = "01"
	PixGUI                = "BR.GOV.BCB.PIX"
	BRCodeGUI             = "BR.GOV.BCB.BRCODE"
	BRCodeVersion         = "1.0.0"
	MerchantCategoryNone  = "0000"
	CurrencyBRL           = "986"
	CountryBrazil         = "BR"
	crcFieldPrefix        = "6304" // id + fixed length of the trailing CRC tuple
	crcValueLen           = 4
)

// MaxValueLen is the hard ceiling on an encoded value: the length slot is
// two decimal digits, so the format cannot express anything longer. The
// encoder does not reject longer values; it emits a wrong length instead,
// because the format itself has no escape hatch. Callers own the ceiling.
const MaxValueLen = 99

// Only these two ids carry nested tuples during decoding. 62.50 is itself
// nested on the encode side, but the decoder leaves it flat: its parent is
// "50", which is not in this set.
var compositeIDs = map[string]bool{
	IDMerchantAccountInfo: true,
	IDAdditionalData:      true,
}

// fieldDescriptions labels the top-level ids the decoder recognizes.
var fieldDescriptions = map[string]string{
	IDPayloadFormat:       "Payload Format Indicator",
	IDMerchantAccountInfo: "Merchant Account Information",
	IDMerchantCategory:    "Merchant Category Code",
	IDCurrency:            "Transaction Currency",
	IDAmount:              "Transaction Amount",
	IDCountryCode:         "Country Code",
	IDMerchantName:        "Merchant Name",
	IDMerchantCity:        "Merchant City",
	IDAdditionalData:      "Additional Data Field Template",
	IDCRC16:               "CRC16",
}

// subfieldDescriptions labels known subfields, keyed by parent id then
// subfield id. Unlisted ids simply get no description.
var subfieldDescriptions = map[string]map[string]string{
	IDMerchantAccountInfo: {
		SubIDGUI: "Globally Unique Identifier",
		SubIDKey: "Pix Key",
	},
	IDAdditionalData: {
		SubIDTransactionID: "Transaction ID",
		SubIDPaymentSystem: "Payment System Specific Template",
	},
}
