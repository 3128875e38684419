package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/shineart/studiopos/internal/document"
)

// Profile is the studio identity printed on documents, read from a YAML
// file:
//
//	name: Shine Art Studio
//	tagline: Photography Services
//	address: 12 Galle Road, Colombo 03
//	phone: 011 234 5678
//	logo: logo.png
//	currency:
//	  symbol: Rs.
//	  code: LKR
//	footers:
//	  receipt: Thank you! Come again.
//
// Every key may be overridden from the environment as STUDIO_<KEY>, for
// example STUDIO_CURRENCY_CODE.
type Profile struct {
	Name     string `mapstructure:"name"`
	Tagline  string `mapstructure:"tagline"`
	Address  string `mapstructure:"address"`
	Phone    string `mapstructure:"phone"`
	Logo     string `mapstructure:"logo"`
	Currency struct {
		Symbol string `mapstructure:"symbol"`
		Code   string `mapstructure:"code"`
	} `mapstructure:"currency"`
	Footers struct {
		Receipt string `mapstructure:"receipt"`
		Invoice string `mapstructure:"invoice"`
		Report  string `mapstructure:"report"`
	} `mapstructure:"footers"`
}

// LoadProfile reads the profile at path. A missing file yields the default
// studio profile. A relative logo path is resolved against the profile's
// directory.
func LoadProfile(path string) (*Profile, error) {
	def := document.DefaultLetterhead()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("STUDIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("name", def.Name)
	v.SetDefault("tagline", def.Tagline)
	v.SetDefault("address", "")
	v.SetDefault("phone", "")
	v.SetDefault("logo", "")
	v.SetDefault("currency.symbol", def.CurrencySymbol)
	v.SetDefault("currency.code", def.CurrencyCode)
	v.SetDefault("footers.receipt", def.ReceiptFooter)
	v.SetDefault("footers.invoice", def.InvoiceFooter)
	v.SetDefault("footers.report", def.ReportFooter)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)

			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading studio profile: %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading studio profile: %w", err)
		}
	}

	var p Profile
	if err := v.Unmarshal(&p); err != nil {
		return nil, fmt.Errorf("decoding studio profile: %w", err)
	}

	if p.Logo != "" && !filepath.IsAbs(p.Logo) && path != "" {
		p.Logo = filepath.Join(filepath.Dir(path), p.Logo)
	}

	return &p, nil
}

func (p *Profile) Letterhead() document.Letterhead {
	return document.Letterhead{
		Name:           p.Name,
		Tagline:        p.Tagline,
		Address:        p.Address,
		Phone:          p.Phone,
		LogoPath:       p.Logo,
		CurrencySymbol: p.Currency.Symbol,
		CurrencyCode:   p.Currency.Code,
		ReceiptFooter:  p.Footers.Receipt,
		InvoiceFooter:  p.Footers.Invoice,
		ReportFooter:   p.Footers.Report,
	}
}
