// Package pix builds static BR Code ("copia e cola") payloads.
//
// A payload is a flat list of EMV fields, each encoded as a two digit id, a two digit
// length and the value, terminated by a CRC16 field over everything before it.
package pix

import (
	"Scoops/pkg/utils"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	idPayloadFormat   = "00"
	idMerchantAccount = "26"
	idCategoryCode    = "52"
	idCurrency        = "53"
	idAmount          = "54"
	idCountry         = "58"
	idMerchantName    = "59"
	idMerchantCity    = "60"
	idAdditionalData  = "62"
	idCRC             = "63"

	gui         = "br.gov.bcb.pix"
	currencyBRL = "986"

	maxNameLen = 25
	maxCityLen = 15
	maxTxIDLen = 25
)

type Payload struct {
	Key          string
	MerchantName string
	City         string
	Amount       decimal.Decimal
	TxID         string
}

// String renders the payload, checksum included.
func (p Payload) String() string {
	txID := p.TxID
	if txID == "" {
		txID = "***"
	}

	var b strings.Builder
	b.WriteString(field(idPayloadFormat, "01"))
	b.WriteString(field(idMerchantAccount, field("00", gui)+field("01", p.Key)))
	b.WriteString(field(idCategoryCode, "0000"))
	b.WriteString(field(idCurrency, currencyBRL))
	b.WriteString(field(idAmount, p.Amount.StringFixed(2)))
	b.WriteString(field(idCountry, "BR"))
	b.WriteString(field(idMerchantName, utils.Truncate(utils.AsciiUpper(p.MerchantName), maxNameLen)))
	b.WriteString(field(idMerchantCity, utils.Truncate(utils.AsciiUpper(p.City), maxCityLen)))
	b.WriteString(field(idAdditionalData, field("05", utils.Truncate(txID, maxTxIDLen))))
	b.WriteString(idCRC + "04")

	s := b.String()
	return s + fmt.Sprintf("%04X", CRC16(s))
}

func field(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

// CRC16 is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF), the checksum BR Codes use.
func CRC16(s string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
