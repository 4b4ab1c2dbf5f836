package tenant

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Branding is the raw tenant profile returned by the order backend.
type Branding struct {
	Name       string
	LogoURL    string
	BannerURLs []string
	Socials    SocialLinks
	Colors     ThemeColors
}

type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	WhatsApp  string `json:"whatsapp,omitempty"`
}

type ThemeColors struct {
	Primary     string `json:"primary"`
	Secondary   string `json:"secondary"`
	CustomLight string `json:"customLight"`
	CustomDark  string `json:"customDark"`
	CustomHover string `json:"customHover"`
}

// WithDefaults fills every empty color from fallback.
func (c ThemeColors) WithDefaults(fallback ThemeColors) ThemeColors {
	pick := func(v, def string) string {
		if strings.TrimSpace(v) == "" {
			return def
		}
		return v
	}

	return ThemeColors{
		Primary:     pick(c.Primary, fallback.Primary),
		Secondary:   pick(c.Secondary, fallback.Secondary),
		CustomLight: pick(c.CustomLight, fallback.CustomLight),
		CustomDark:  pick(c.CustomDark, fallback.CustomDark),
		CustomHover: pick(c.CustomHover, fallback.CustomHover),
	}
}

type Page struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Establishment is the resolved tenant of a browsing session. It is immutable
// once loaded.
type Establishment struct {
	Slug        string      `json:"slug"`
	DisplayName string      `json:"displayName"`
	LogoRef     string      `json:"logoRef"`
	BannerRefs  []string    `json:"bannerRefs"`
	Socials     SocialLinks `json:"socials"`
	Theme       ThemeColors `json:"theme"`
	Page        Page        `json:"page"`
}

// NewEstablishment derives the session's tenant view from raw branding.
func NewEstablishment(slug string, b Branding, defaults ThemeColors) Establishment {
	name := TitleCase(b.Name)

	banners := make([]string, 0, len(b.BannerURLs))
	for _, u := range b.BannerURLs {
		if strings.TrimSpace(u) != "" {
			banners = append(banners, u)
		}
	}

	est := Establishment{
		Slug:        slug,
		DisplayName: name,
		LogoRef:     b.LogoURL,
		BannerRefs:  banners,
		Socials:     b.Socials,
		Theme:       b.Colors.WithDefaults(defaults),
	}

	if name != "" {
		est.Page = Page{
			Title:       fmt.Sprintf("Comercial %s", name),
			Description: fmt.Sprintf("Bienvenido a la linea de domicilios de %s", name),
		}
	}

	return est
}

// Fallback is the neutral shell rendered when branding could not be loaded.
func Fallback(slug string, defaults ThemeColors) Establishment {
	return Establishment{
		Slug:       slug,
		BannerRefs: []string{},
		Theme:      defaults,
	}
}

func (e Establishment) IsBranded() bool {
	return e.DisplayName != ""
}

// Copyright renders the footer line for the given year.
func (e Establishment) Copyright(year int) string {
	return fmt.Sprintf("© %d %s. Todos los derechos reservados.", year, TitleCase(e.Slug))
}

// TitleCase upper-cases the first letter of every whitespace-delimited token
// and leaves the rest of each token and the original spacing untouched.
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	atWordStart := true
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]

		if unicode.IsSpace(r) {
			atWordStart = true
			b.WriteRune(r)
			continue
		}

		if atWordStart {
			r = unicode.ToUpper(r)
			atWordStart = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Path builds a storefront route under the tenant, e.g. Path("acme", "cart").
func Path(slug string, elem ...string) string {
	p := "/" + url.PathEscape(slug)
	for _, e := range elem {
		p += "/" + e
	}
	return p
}
