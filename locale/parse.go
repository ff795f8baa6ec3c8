package locale

import (
	"errors"
	"fmt"
	"strings"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// ErrNotChinese is returned by Parse for language tags which do not denote
// a Chinese variant.
var ErrNotChinese = errors.New("locale: not a Chinese language tag")

var regions = map[string]Locale{
	"CN": ZhCN,
	"HK": ZhHK,
	"TW": ZhTW,
	"SG": ZhSG,
	"MY": ZhMY,
	"MO": ZhMO,
}

// Parse maps a language tag to a locale. It accepts the nine locale tokens
// in any letter case and with '_' instead of '-', as well as BCP 47 tags
// like "zh-Hant-TW" or "zh-Hans". An explicit region beats an explicit
// script; a plain "zh" maps to ZH.
func Parse(tag string) (Locale, error) {
	token := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(tag), "_", "-"))
	if l := Locale(token); l.Valid() {
		return l, nil
	}
	t, err := language.Parse(token)
	if err != nil {
		return ZH, fmt.Errorf("%w: %q", ErrNotChinese, tag)
	}
	base, _ := t.Base()
	if base.String() != "zh" {
		return ZH, fmt.Errorf("%w: %q", ErrNotChinese, tag)
	}
	script, sconf := t.Script()
	region, rconf := t.Region()
	if rconf == language.Exact {
		if l, ok := regions[region.String()]; ok {
			return l, nil
		}
		if sconf != language.No { // unknown region: go by (possibly inferred) script
			return fromScript(script), nil
		}
	}
	if sconf == language.Exact {
		return fromScript(script), nil
	}
	return ZH, nil
}

func fromScript(script language.Script) Locale {
	switch script.String() {
	case "Hant":
		return ZhHant
	case "Hans":
		return ZhHans
	}
	return ZH
}

// FromEnvironment returns the locale of the user's environment. If the
// environment does not carry a Chinese locale, ZH is returned, i.e. no
// conversion will take place.
func FromEnvironment() Locale {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Infof("cannot detect user locale: %v", err)
		return ZH
	}
	l, err := Parse(userLocale)
	if err != nil {
		tracer().Debugf("user locale %q is not a Chinese variant", userLocale)
		return ZH
	}
	tracer().Infof("detected user locale %v as %v", userLocale, l)
	return l
}
