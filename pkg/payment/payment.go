package payment

import (
	"fmt"
	"net/url"

	"github.com/drinkshop/backend/internal/configs"
)

const (
	MethodBankTransfer = "Chuyển khoản ngân hàng"
	MethodMoMo         = "MoMo"

	vietQRBaseURL   = "https://img.vietqr.io/image"
	qrServerBaseURL = "https://api.qrserver.com/v1/create-qr-code/"
)

// BankConfig holds the merchant account details rendered into payment QR codes
type BankConfig struct {
	BankCode     string
	AccountNo    string
	AccountName  string
	Template     string
	MoMoPhone    string
	TransferNote string
}

// FromConfigs builds the bank configuration from app config
func FromConfigs(config configs.Configs) BankConfig {
	cfg := BankConfig{
		BankCode:     config.PaymentBankCode,
		AccountNo:    config.PaymentAccountNo,
		AccountName:  config.PaymentAccountName,
		Template:     config.PaymentQrTemplate,
		MoMoPhone:    config.PaymentMomoPhone,
		TransferNote: config.PaymentTransferNote,
	}
	if cfg.Template == "" {
		cfg.Template = "compact2"
	}
	if cfg.TransferNote == "" {
		cfg.TransferNote = "Thanh toan don hang DrinkShop"
	}
	return cfg
}

// VietQRURL builds the VietQR image URL carrying the transfer amount
func (b BankConfig) VietQRURL(amount int64) string {
	description := url.QueryEscape(b.TransferNote)
	return fmt.Sprintf("%s/%s-%s-%s.png?amount=%d&addInfo=%s&accountName=%s",
		vietQRBaseURL, b.BankCode, b.AccountNo, b.Template, amount, description, url.QueryEscape(b.AccountName))
}

// MoMoQRURL builds the MoMo transfer QR URL for the given amount
func (b BankConfig) MoMoQRURL(amount int64) string {
	data := fmt.Sprintf("2|99|%s|||0|0|%d|Thanh toan DrinkShop", b.MoMoPhone, amount)
	return fmt.Sprintf("%s?size=250x250&data=%s", qrServerBaseURL, url.QueryEscape(data))
}
