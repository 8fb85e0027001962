package models

// BankAccountStatusActive -> hanya rekening ACTIVE yang boleh ditampilkan
// untuk transfer.
const BankAccountStatusActive = "ACTIVE"

// BankAccount dari GET /banks/active, dipakai halaman pembayaran transfer.
type BankAccount struct {
	ID             int    `json:"id" validate:"required"`
	BankName       string `json:"bankName" validate:"required"`
	AccountNumber  string `json:"accountNumber" validate:"required"`
	AccountHolder  string `json:"accountHolder"`
	QRCodeImageURL string `json:"qrCodeImageUrl"`
	Status         string `json:"status" validate:"required"`
}

// Active melaporkan apakah rekening bisa dipakai menerima transfer.
func (b *BankAccount) Active() bool {
	return b.Status == BankAccountStatusActive
}
