package pix

import "sync"

// Builder pool for reuse across encode-heavy call sites.
var builderPool = sync.Pool{
	New: func() interface{} {
		return &PaymentBuilder{}
	},
}

// PaymentBuilder is a fluent front end over CreatePayment. Setters never
// fail; validation happens once, in Build.
type PaymentBuilder struct {
	params PaymentParams
}

func NewPaymentBuilder() *PaymentBuilder {
	b := builderPool.Get().(*PaymentBuilder)
	b.params = PaymentParams{}
	return b
}

// Release returns the builder to the pool. The builder must not be used
// after Release is called.
func (b *PaymentBuilder) Release() {
	b.params = PaymentParams{}
	builderPool.Put(b)
}

func (b *PaymentBuilder) Key(key string) *PaymentBuilder {
	b.params.Key = key
	return b
}

func (b *PaymentBuilder) MerchantName(name string) *PaymentBuilder {
	b.params.MerchantName = name
	return b
}

func (b *PaymentBuilder) MerchantCity(city string) *PaymentBuilder {
	b.params.MerchantCity = city
	return b
}

func (b *PaymentBuilder) Amount(amount string) *PaymentBuilder {
	b.params.Amount = amount
	return b
}

func (b *PaymentBuilder) TransactionID(id string) *PaymentBuilder {
	b.params.TransactionID = id
	return b
}

func (b *PaymentBuilder) Description(text string) *PaymentBuilder {
	b.params.Description = text
	return b
}

// Build assembles the document via CreatePayment.
func (b *PaymentBuilder) Build() (*PaymentDocument, error) {
	return CreatePayment(b.params)
}

// MustBuild is Build for statically known-good parameters; it panics on
// validation failure.
func (b *PaymentBuilder) MustBuild() *PaymentDocument {
	doc, err := CreatePayment(b.params)
	if err != nil {
		panic(err)
	}
	return doc
}

// BuildString goes straight to the wire string.
func (b *PaymentBuilder) BuildString() (string, error) {
	doc, err := b.Build()
	if err != nil {
		return "", err
	}
	return Encode(doc)
}
