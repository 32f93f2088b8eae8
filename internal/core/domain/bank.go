package domain

// BankKeys holds a bank's RSA keypair in PEM form. The public key is used
// by counterparts to seal data addressed to this bank; the private key
// never leaves the bank's own record.
type BankKeys struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// User is an account holder at a bank.
type User struct {
	UserID        string  `json:"userId"`
	Name          string  `json:"name"`
	Balance       float64 `json:"balance"`
	AccountNumber string  `json:"accountNumber"`
	Phone         string  `json:"phone,omitempty"`
}

// Merchant is a payee registered at a bank, addressable by a scannable code.
type Merchant struct {
	MerchantID    string  `json:"merchantId"`
	Name          string  `json:"name"`
	Balance       float64 `json:"balance"`
	AccountNumber string  `json:"accountNumber"`
	QRCode        string  `json:"qrCode"`
}

// BankRecord is the durable per-bank state: identity, keypair and both
// balance collections. Exactly one record exists per supported country;
// the whole record is rewritten on every committed mutation.
type BankRecord struct {
	BankID    string     `json:"bankId"`
	Country   string     `json:"country"`
	Currency  string     `json:"currency"`
	BankKeys  BankKeys   `json:"bankKeys"`
	Users     []User     `json:"users"`
	Merchants []Merchant `json:"merchants"`
}

// FindUser returns the user with the given ID, or nil.
func (b *BankRecord) FindUser(userID string) *User {
	for i := range b.Users {
		if b.Users[i].UserID == userID {
			return &b.Users[i]
		}
	}
	return nil
}

// FindMerchant returns the merchant with the given ID, or nil.
func (b *BankRecord) FindMerchant(merchantID string) *Merchant {
	for i := range b.Merchants {
		if b.Merchants[i].MerchantID == merchantID {
			return &b.Merchants[i]
		}
	}
	return nil
}

// FindMerchantByQRCode returns the merchant with the given scannable code, or nil.
func (b *BankRecord) FindMerchantByQRCode(qrCode string) *Merchant {
	for i := range b.Merchants {
		if b.Merchants[i].QRCode == qrCode {
			return &b.Merchants[i]
		}
	}
	return nil
}
