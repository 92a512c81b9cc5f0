package entity

// CheckoutSession is a provider-hosted payment page for a single charge.
type CheckoutSession struct {
	ID  string
	URL string
}

// ProviderError carries the provider's own error text. The message is passed
// through to the caller unchanged, matching the behavior payment clients
// already depend on.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}
